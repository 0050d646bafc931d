package courseRoutes

import (
	controllers "educareer/controllers/course"
	"educareer/middleware"
	validators "educareer/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog and review routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog browsing is open to visitors
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Get("/:id/reviews", validators.CourseID(), controllers.GetCourseReviews)

	// Enrollment
	courseGroup.Post("/enroll", middleware.JWTMiddleware, validators.Enroll(), controllers.EnrollInCourse)
	courseGroup.Get("/:id/enrollment", middleware.JWTMiddleware, validators.CourseID(), controllers.CheckUserEnrollment)

	// Reviews
	reviewGroup := app.Group("/review")
	reviewGroup.Post("/", middleware.JWTMiddleware, validators.CreateReview(), controllers.CreateReview)
	reviewGroup.Get("/external/:referenceNumber", controllers.GetExternalCourseReviews)
	reviewGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateReview(), controllers.UpdateReview)
	reviewGroup.Delete("/:id", middleware.JWTMiddleware, validators.ReviewID(), controllers.DeleteReview)
}
