package controllers

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminGetEmployeePerformance builds the per-employee performance table:
// assigned course count, fully completed count and the derived score.
func AdminGetEmployeePerformance(c *fiber.Ctx) error {
	var employees []models.User
	if err := database.Database.Db.Where("role = ? AND is_deleted = ?", "EMPLOYEE", false).Find(&employees).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch employees!", nil)
	}

	type EmployeePerformance struct {
		EmployeeID       uint    `json:"employee_id"`
		Name             string  `json:"name"`
		Email            string  `json:"email"`
		Designation      string  `json:"designation"`
		AssignedCourses  int64   `json:"assigned_courses"`
		CompletedCourses int64   `json:"completed_courses"`
		PerformanceScore float64 `json:"performance_score"`
	}

	result := make([]EmployeePerformance, len(employees))
	for i, employee := range employees {
		var assigned int64
		database.Database.Db.Model(&courseModels.CourseAssignment{}).
			Where("employee_id = ? AND is_deleted = ?", employee.ID, false).Count(&assigned)

		var completed int64
		database.Database.Db.Model(&courseModels.CourseProgress{}).
			Where("employee_id = ? AND completion_percentage >= ?", employee.ID, 100).Count(&completed)

		score, err := EmployeePerformanceScore(database.Database.Db, employee.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute performance!", nil)
		}

		result[i] = EmployeePerformance{
			EmployeeID:       employee.ID,
			Name:             employee.Name,
			Email:            employee.Email,
			Designation:      employee.Designation,
			AssignedCourses:  assigned,
			CompletedCourses: completed,
			PerformanceScore: score,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Performance data fetched successfully!", result)
}

// AdminGetCourseStats returns assignment and completion counts for a course
func AdminGetCourseStats(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var assignedCount int64
	database.Database.Db.Model(&courseModels.CourseAssignment{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&assignedCount)

	var completedCount int64
	database.Database.Db.Model(&courseModels.CourseProgress{}).
		Where("course_id = ? AND completion_percentage >= ?", courseID, 100).Count(&completedCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course stats fetched successfully!", fiber.Map{
		"course_id":       course.ID,
		"title":           course.Title,
		"assigned_count":  assignedCount,
		"completed_count": completedCount,
	})
}

// employeeCourseRow is the per-(employee, course) detail used by the
// employee report and the tag buckets.
type employeeCourseRow struct {
	CourseID             uint    `json:"course_id"`
	Title                string  `json:"title"`
	Tag                  string  `json:"tag"`
	TotalModules         int64   `json:"total_modules"`
	CompletedModules     int64   `json:"completed_modules"`
	Status               string  `json:"status"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

func employeeCourseRows(employeeID uint) ([]employeeCourseRow, error) {
	var assignments []courseModels.CourseAssignment
	if err := database.Database.Db.Where("employee_id = ? AND is_deleted = ?", employeeID, false).Find(&assignments).Error; err != nil {
		return nil, err
	}

	rows := make([]employeeCourseRow, 0, len(assignments))
	for _, a := range assignments {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", a.CourseID, false).First(&course).Error; err != nil {
			continue
		}

		var totalModules int64
		database.Database.Db.Model(&courseModels.CourseModule{}).
			Where("course_id = ? AND is_deleted = ?", a.CourseID, false).Count(&totalModules)

		var completedModules int64
		database.Database.Db.Model(&courseModels.ModuleProgress{}).
			Where("employee_id = ? AND course_id = ? AND is_completed = ?", employeeID, a.CourseID, true).Count(&completedModules)

		var progress courseModels.CourseProgress
		percentage := float64(0)
		if err := database.Database.Db.Where("employee_id = ? AND course_id = ?", employeeID, a.CourseID).First(&progress).Error; err == nil {
			percentage = progress.CompletionPercentage
		}

		rows = append(rows, employeeCourseRow{
			CourseID:             course.ID,
			Title:                course.Title,
			Tag:                  course.Tag,
			TotalModules:         totalModules,
			CompletedModules:     completedModules,
			Status:               CourseStatus(completedModules, totalModules),
			CompletionPercentage: percentage,
		})
	}

	return rows, nil
}

// AdminGetEmployeeCourseDetail returns per-course progress detail for one employee
func AdminGetEmployeeCourseDetail(c *fiber.Ctx) error {
	employeeID := c.Locals("employeeID").(int)

	var employee models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?", employeeID, "EMPLOYEE", false).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	rows, err := employeeCourseRows(uint(employeeID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course details!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Employee course details fetched successfully!", fiber.Map{
		"employee_id": employee.ID,
		"name":        employee.Name,
		"courses":     rows,
	})
}

// AdminGetTagPerformance buckets an employee's assigned courses by tag and
// reports the completed share per tag. Tags with no assigned courses report
// 0% rather than being omitted.
func AdminGetTagPerformance(c *fiber.Ctx) error {
	employeeID := c.Locals("employeeID").(int)

	var employee models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?", employeeID, "EMPLOYEE", false).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	rows, err := employeeCourseRows(uint(employeeID))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course details!", nil)
	}

	type TagPerformance struct {
		Tag              string  `json:"tag"`
		TotalCourses     int     `json:"total_courses"`
		CompletedCourses int     `json:"completed_courses"`
		Percentage       float64 `json:"percentage"`
	}

	result := make([]TagPerformance, len(courseModels.Tags))
	for i, tag := range courseModels.Tags {
		total := 0
		completed := 0
		for _, row := range rows {
			if row.Tag != tag {
				continue
			}
			total++
			if row.Status == "Completed" {
				completed++
			}
		}

		percentage := float64(0)
		if total > 0 {
			percentage = float64(completed) / float64(total) * 100
		}

		result[i] = TagPerformance{
			Tag:              tag,
			TotalCourses:     total,
			CompletedCourses: completed,
			Percentage:       percentage,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tag performance fetched successfully!", result)
}
