package userRoutes

import (
	"educareer/controllers/userControllers"
	"educareer/middleware"
	"educareer/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile and account routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", userControllers.GetProfile)
	userGroup.Put("/profile", userValidator.ProfileUpdate(), userControllers.UpdateProfile)
	userGroup.Post("/profile/image", userControllers.UploadProfileImage)
	userGroup.Post("/change-password", userValidator.ChangePassword(), userControllers.ChangePassword)
	userGroup.Delete("/account", userControllers.DeleteAccount)
}
