package courseRoutes

import (
	controllers "educareer/controllers/course"
	"educareer/middleware"
	validators "educareer/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupProviderCourseRoutes sets up course management routes for training providers
func SetupProviderCourseRoutes(app *fiber.App) {
	providerGroup := app.Group("/provider/course", middleware.JWTMiddleware, middleware.RequireRoles("provider", "admin"))

	// Course CRUD
	providerGroup.Post("/create", validators.CreateCourse(), controllers.CreateCourse)
	providerGroup.Get("/list", controllers.GetMyCourses)
	providerGroup.Put("/:id", validators.UpdateCourse(), controllers.UpdateCourse)
	providerGroup.Delete("/:id", validators.CourseID(), controllers.DeleteCourse)
	providerGroup.Post("/:id/tile-image", validators.CourseID(), controllers.UploadTileImage)

	// Module management
	providerGroup.Post("/:id/module", validators.CreateModule(), controllers.CreateModule)
	providerGroup.Put("/:course_id/module/:module_id", validators.UpdateModule(), controllers.UpdateModule)
	providerGroup.Delete("/:course_id/module/:module_id", validators.ModuleID(), controllers.DeleteModule)

	// Enrollment management
	providerGroup.Get("/:id/enrollments", validators.CourseID(), controllers.GetCourseEnrollments)
	providerGroup.Put("/enrollment/:id", validators.EnrollmentUpdate(), controllers.UpdateEnrollment)
}
