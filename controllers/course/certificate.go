package controllers

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetCertificate issues (or returns) the completion certificate for a course
// the employee has fully completed
func GetCertificate(c *fiber.Ctx) error {
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

	var progress courseModels.CourseProgress
	if err := database.Database.Db.Where("employee_id = ? AND course_id = ?", userID, courseID).First(&progress).Error; err != nil || progress.CompletionPercentage < 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please complete the course before requesting a certificate!", nil)
	}

	// Idempotent: re-requesting returns the existing certificate
	var existing courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", existing)
	}

	certificateNumber := uuid.NewString()
	issuedAt := time.Now()

	filePath, err := utils.RenderCertificate(certificateNumber, user.Name, course.Title, issuedAt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificate!", nil)
	}

	certificate := courseModels.Certificate{
		UserID:            userID,
		CourseID:          uint(courseID),
		CertificateNumber: certificateNumber,
		FilePath:          filePath,
		IssuedAt:          issuedAt,
	}

	if err := database.Database.Db.Create(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save certificate!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate generated successfully!", certificate)
}
