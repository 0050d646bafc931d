package adminRoutes

import (
	adminController "educareer/controllers/admin"
	controllers "educareer/controllers/course"
	feedbackController "educareer/controllers/feedback"
	"educareer/middleware"
	adminValidator "educareer/validators/admin"
	courseValidator "educareer/validators/course"
	feedbackValidator "educareer/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin panel routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRoles("admin"))

	// Generic table grid
	adminGroup.Get("/table-grid", adminValidator.TableGrid(), adminController.GetTableGrid)
	adminGroup.Put("/table-grid", adminValidator.TableUpdate(), adminController.UpdateTableRow)

	// Accounts
	adminGroup.Post("/create", adminValidator.CreateAdmin(), adminController.CreateAdmin)
	adminGroup.Get("/user/list", adminValidator.UserList(), adminController.UserList)

	// Raw module progress management
	adminGroup.Get("/enrollment/:id/progress", courseValidator.EnrollmentID(), controllers.ListModuleProgress)
	adminGroup.Post("/enrollment/:id/progress", courseValidator.SetModuleProgress(), controllers.SetModuleProgress)
	adminGroup.Get("/enrollment/:enrollment_id/module/:module_id/progress", courseValidator.EnrollmentModule(), controllers.GetModuleProgress)
	adminGroup.Delete("/enrollment/:enrollment_id/module/:module_id/progress", courseValidator.EnrollmentModule(), controllers.DeleteModuleProgress)

	// Contact feedback
	adminGroup.Get("/feedback", feedbackController.ListFeedback)
	adminGroup.Post("/feedback/:id/resolve", feedbackValidator.FeedbackID(), feedbackController.ResolveFeedback)
}
