package feedbackRoutes

import (
	feedbackController "educareer/controllers/feedback"
	feedbackValidator "educareer/validators/feedback"

	"github.com/gofiber/fiber/v2"
)

// SetupFeedbackRoutes sets up the public contact-us route
func SetupFeedbackRoutes(app *fiber.App) {
	app.Post("/feedback", feedbackValidator.SubmitFeedback(), feedbackController.SubmitFeedback)
}
