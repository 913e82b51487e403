package controllers

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// AssignCourse assigns a course to a list of employees. Assignment is
// idempotent: employees already holding an assignment are skipped, and if
// every supplied employee is already assigned the call is a no-op success.
func AssignCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedAssign").(*struct {
		EmployeeIDs []uint `json:"employee_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Existing assignments for the supplied employees
	var existing []courseModels.CourseAssignment
	if err := database.Database.Db.
		Where("course_id = ? AND employee_id IN ? AND is_deleted = ?", courseID, reqData.EmployeeIDs, false).
		Find(&existing).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}

	alreadyAssigned := make(map[uint]bool, len(existing))
	for _, a := range existing {
		alreadyAssigned[a.EmployeeID] = true
	}

	// Complement set; the map also swallows duplicates in the request list
	var assignments []courseModels.CourseAssignment
	for _, employeeID := range reqData.EmployeeIDs {
		if alreadyAssigned[employeeID] {
			continue
		}
		alreadyAssigned[employeeID] = true
		assignments = append(assignments, courseModels.CourseAssignment{
			EmployeeID: employeeID,
			CourseID:   uint(courseID),
			AssignedAt: time.Now(),
		})
	}

	if len(assignments) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "All employees are already assigned to this course!", nil)
	}

	// One transaction for the whole batch so a mid-batch failure leaves no
	// partial assignments behind
	tx := database.Database.Db.Begin()
	if err := tx.Create(&assignments).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course assigned successfully!", assignments)
}
