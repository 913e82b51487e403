package adminRoutes

import (
	authController "lms/controllers/auth"
	controllers "lms/controllers/course"
	"lms/middleware"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin course management and reporting routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	// Employee listing
	adminGroup.Get("/get-employees", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermAssignCourses), authController.GetAllEmployees)

	// Course management
	adminGroup.Post("/create-courses", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermManageCourses), courseValidator.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Get("/get-courses", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermManageCourses), controllers.AdminGetAllCourses)
	adminGroup.Post("/courses/:courseId/add-modules", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermManageCourses), courseValidator.AddModule(), controllers.AdminAddModule)
	adminGroup.Put("/courses/:courseId/update-details", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermManageCourses), courseValidator.CourseIDParam(), controllers.AdminUpdateCourseDetails)

	// Assignment
	adminGroup.Post("/courses/:courseId/assign", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermAssignCourses), courseValidator.AssignCourse(), controllers.AssignCourse)

	// Quiz management
	adminGroup.Post("/courses/:courseId/quiz", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermManageQuizzes), courseValidator.CreateQuiz(), controllers.AdminCreateQuiz)

	// Reporting
	adminGroup.Get("/performance", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermViewReports), controllers.AdminGetEmployeePerformance)
	adminGroup.Get("/course/:courseId/stats", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermViewReports), courseValidator.CourseIDParam(), controllers.AdminGetCourseStats)
	adminGroup.Get("/employee/:employeeId/courses", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermViewReports), courseValidator.EmployeeIDParam(), controllers.AdminGetEmployeeCourseDetail)
	adminGroup.Get("/employee/:employeeId/tag-performance", middleware.JWTMiddleware, middleware.RequirePermission(middleware.PermViewReports), courseValidator.EmployeeIDParam(), controllers.AdminGetTagPerformance)
}
