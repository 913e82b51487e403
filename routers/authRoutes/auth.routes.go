package authRoutes

import (
	authController "lms/controllers/auth"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and login routes
func SetupAuthRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Post("/register", authValidator.Register(), authController.Register)
	userGroup.Post("/login", authValidator.Login(), authController.Login)
}
