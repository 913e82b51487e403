package userRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up all employee-facing course routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	// Assigned courses and progress
	userGroup.Get("/get-courses", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermViewCourses), controllers.GetAssignedCourses)
	userGroup.Get("/courses/:courseId", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermViewCourses), courseValidator.CourseIDParam(), controllers.GetCourseDetails)
	userGroup.Patch("/courses/:courseId/modules/:moduleId", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermCompleteModules), courseValidator.MarkModule(), controllers.MarkModuleCompleted)
	userGroup.Get("/stats/completion", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermViewCourses), controllers.GetCompletionStats)

	// Quizzes
	userGroup.Get("/quiz/:courseId", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermTakeQuizzes), courseValidator.CourseIDParam(), controllers.GetQuiz)
	userGroup.Post("/submit-quiz/:courseId", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermTakeQuizzes), courseValidator.SubmitQuiz(), controllers.SubmitQuiz)

	// Certificates
	userGroup.Get("/certificate/:courseId", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermViewCertificates), courseValidator.CourseIDParam(), controllers.GetCertificate)
}
