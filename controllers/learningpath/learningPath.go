package learningPathController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	lpModels "lms/models/learningpath"
	lpValidator "lms/validators/learningpath"

	"github.com/gofiber/fiber/v2"
)

// CreateLearningPath creates a learning path from a list of course IDs
func CreateLearningPath(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedLearningPath").(*lpValidator.CreateLearningPathRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// All referenced courses must exist
	var courseCount int64
	database.Database.Db.Model(&courseModels.Course{}).
		Where("id IN ? AND is_deleted = ?", reqData.CourseIDs, false).Count(&courseCount)
	if courseCount != int64(len(reqData.CourseIDs)) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "One or more courses not found!", nil)
	}

	path := lpModels.LearningPath{
		Title:        reqData.Title,
		Description:  reqData.Description,
		TotalCourses: len(reqData.CourseIDs),
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&path).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create learning path!", nil)
	}

	for _, courseID := range reqData.CourseIDs {
		link := lpModels.LearningPathCourse{
			LearningPathID: path.ID,
			CourseID:       courseID,
		}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create learning path!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Learning path created successfully!", path)
}

// GetLearningPaths lists all learning paths with their courses
func GetLearningPaths(c *fiber.Ctx) error {
	var paths []lpModels.LearningPath
	if err := database.Database.Db.Where("is_deleted = ?", false).Find(&paths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning paths!", nil)
	}

	type PathWithCourses struct {
		lpModels.LearningPath
		Courses []courseModels.Course `json:"courses"`
	}

	result := make([]PathWithCourses, len(paths))
	for i, path := range paths {
		result[i] = PathWithCourses{LearningPath: path}

		var links []lpModels.LearningPathCourse
		database.Database.Db.Where("learning_path_id = ?", path.ID).Find(&links)

		for _, link := range links {
			var course courseModels.Course
			if err := database.Database.Db.Where("id = ? AND is_deleted = ?", link.CourseID, false).First(&course).Error; err == nil {
				result[i].Courses = append(result[i].Courses, course)
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning paths fetched successfully!", result)
}

// AssignLearningPath assigns learning paths to employees. Idempotent: an
// existing (employee, path) pair is skipped, never duplicated.
func AssignLearningPath(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedPathAssign").(*lpValidator.AssignLearningPathRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var assignments []lpModels.EmployeeLearningPath
	for _, employeeID := range reqData.EmployeeIDs {
		for _, pathID := range reqData.LearningPathIDs {
			var existing lpModels.EmployeeLearningPath
			if err := database.Database.Db.
				Where("employee_id = ? AND learning_path_id = ? AND is_deleted = ?", employeeID, pathID, false).
				First(&existing).Error; err == nil {
				continue
			}
			assignments = append(assignments, lpModels.EmployeeLearningPath{
				EmployeeID:     employeeID,
				LearningPathID: pathID,
			})
		}
	}

	if len(assignments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "All learning paths are already assigned!", nil)
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&assignments).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign learning paths!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Learning paths assigned successfully!", assignments)
}

// GetEmployeeLearningPath returns the employee's learning paths with course
// progress computed on read from CourseProgress records
func GetEmployeeLearningPath(c *fiber.Ctx) error {
	employeeID := c.Locals("employeeID").(int)

	var employee models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", employeeID, false).First(&employee).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Employee not found!", nil)
	}

	var employeePaths []lpModels.EmployeeLearningPath
	if err := database.Database.Db.Where("employee_id = ? AND is_deleted = ?", employeeID, false).Find(&employeePaths).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch learning paths!", nil)
	}

	type PathCourse struct {
		Title                string  `json:"title"`
		Duration             int64   `json:"duration"`
		CompletionPercentage float64 `json:"completion_percentage"`
		Assigned             bool    `json:"assigned"`
	}

	type EmployeePath struct {
		LearningPathTitle string       `json:"learning_path_title"`
		Description       string       `json:"description"`
		Courses           []PathCourse `json:"courses"`
	}

	result := make([]EmployeePath, 0, len(employeePaths))
	for _, ep := range employeePaths {
		var path lpModels.LearningPath
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", ep.LearningPathID, false).First(&path).Error; err != nil {
			continue
		}

		var links []lpModels.LearningPathCourse
		database.Database.Db.Where("learning_path_id = ?", path.ID).Find(&links)

		courses := make([]PathCourse, 0, len(links))
		for _, link := range links {
			var course courseModels.Course
			if err := database.Database.Db.Where("id = ? AND is_deleted = ?", link.CourseID, false).First(&course).Error; err != nil {
				continue
			}

			var assignment courseModels.CourseAssignment
			assigned := database.Database.Db.
				Where("employee_id = ? AND course_id = ? AND is_deleted = ?", employeeID, course.ID, false).
				First(&assignment).Error == nil

			percentage := float64(0)
			if assigned {
				var progress courseModels.CourseProgress
				if err := database.Database.Db.Where("employee_id = ? AND course_id = ?", employeeID, course.ID).First(&progress).Error; err == nil {
					percentage = progress.CompletionPercentage
				}
			}

			courses = append(courses, PathCourse{
				Title:                course.Title,
				Duration:             course.Duration,
				CompletionPercentage: percentage,
				Assigned:             assigned,
			})
		}

		result = append(result, EmployeePath{
			LearningPathTitle: path.Title,
			Description:       path.Description,
			Courses:           courses,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Learning paths fetched successfully!", result)
}
