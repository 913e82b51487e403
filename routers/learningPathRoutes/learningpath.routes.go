package learningPathRoutes

import (
	learningPathController "lms/controllers/learningpath"
	"lms/middleware"
	learningPathValidator "lms/validators/learningpath"

	"github.com/gofiber/fiber/v2"
)

// SetupLearningPathRoutes sets up learning path management routes
func SetupLearningPathRoutes(app *fiber.App) {
	lpGroup := app.Group("/learningpath")

	lpGroup.Post("/create-learningpath", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermManageLearningPaths), learningPathValidator.CreateLearningPath(), learningPathController.CreateLearningPath)
	lpGroup.Get("/get-learningpath", middleware.JWTMiddleware, learningPathController.GetLearningPaths)
	lpGroup.Post("/assign-learningpath", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermManageLearningPaths), learningPathValidator.AssignLearningPath(), learningPathController.AssignLearningPath)
	lpGroup.Get("/:employeeId/get-learningpath", middleware.JWTMiddleware, learningPathValidator.EmployeeIDParam(), learningPathController.GetEmployeeLearningPath)
}
