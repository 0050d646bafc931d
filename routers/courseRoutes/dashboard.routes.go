package courseRoutes

import (
	controllers "educareer/controllers/course"
	"educareer/middleware"
	validators "educareer/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the learner dashboard and certificate routes
func SetupDashboardRoutes(app *fiber.App) {
	dashGroup := app.Group("/dashboard", middleware.JWTMiddleware)

	dashGroup.Get("/", controllers.GetLearnerDashboard)
	dashGroup.Get("/enrollments", controllers.GetUserEnrollments)
	dashGroup.Get("/enrollment/:id", validators.EnrollmentID(), controllers.GetEnrollmentById)
	dashGroup.Delete("/enrollment/:id", validators.EnrollmentID(), controllers.DeleteEnrollment)
	dashGroup.Get("/enrollment/:id/modules", validators.EnrollmentID(), controllers.GetEnrollmentModules)
	dashGroup.Post("/enrollment/:enrollment_id/module/:module_id/complete", validators.EnrollmentModule(), controllers.CompleteModule)

	// Certificates
	dashGroup.Post("/enrollment/:id/certificate", validators.EnrollmentID(), controllers.IssueCertificate)
	dashGroup.Get("/certificates", controllers.GetUserCertificates)

	// Public verification by serial number
	app.Get("/certificate/verify/:certificateNumber", controllers.VerifyCertificate)
}
