package authRoutes

import (
	authController "educareer/controllers/auth"
	"educareer/middleware"
	authValidator "educareer/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration and session routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/forgot-password", authValidator.ForgotPassword(), authController.ForgotPassword)
	authGroup.Post("/reset-password", authValidator.ResetPassword(), authController.ResetPassword)
	authGroup.Get("/check-session", middleware.JWTMiddleware, authController.CheckSession)
	authGroup.Post("/logout", middleware.JWTMiddleware, authController.Logout)
}
