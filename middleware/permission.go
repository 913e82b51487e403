package middleware

import (
	"lms/database"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Capability names seeded per role at registration and checked by
// RequirePermission. Authorization is a capability lookup against the
// requested operation, not a role comparison in each handler.
const (
	PermManageCourses       = "manage-courses"
	PermAssignCourses       = "assign-courses"
	PermManageQuizzes       = "manage-quizzes"
	PermManageLearningPaths = "manage-learning-paths"
	PermViewReports         = "view-reports"

	PermViewCourses      = "view-courses"
	PermCompleteModules  = "complete-modules"
	PermTakeQuizzes      = "take-quizzes"
	PermViewCertificates = "view-certificates"
)

// DefaultPermissions returns the capability set granted to a role.
func DefaultPermissions(role string) []string {
	if role == "ADMIN" {
		return []string{
			PermManageCourses,
			PermAssignCourses,
			PermManageQuizzes,
			PermManageLearningPaths,
			PermViewReports,
		}
	}
	return []string{
		PermViewCourses,
		PermCompleteModules,
		PermTakeQuizzes,
		PermViewCertificates,
	}
}

// RequirePermission returns a middleware that checks if the user has the required permission
func RequirePermission(requiredPermission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: User ID not found",
				"data":    nil,
			})
		}

		var permission models.Permission
		err := database.Database.Db.Where("user_id = ? AND permission = ? AND is_deleted = false",
			userID, requiredPermission).First(&permission).Error

		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"status":  false,
					"message": "You do not have permission to access this resource!",
					"data":    nil,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking permissions!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}
