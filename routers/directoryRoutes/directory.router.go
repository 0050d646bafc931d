package directoryRoutes

import (
	directoryController "educareer/controllers/directory"
	"educareer/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupDirectoryRoutes sets up the external course directory routes
func SetupDirectoryRoutes(app *fiber.App) {
	directoryGroup := app.Group("/skillsfuture")

	directoryGroup.Get("/courses", directoryController.SearchCourses)
	directoryGroup.Get("/tags", directoryController.GetCourseTags)
	directoryGroup.Get("/token", middleware.JWTMiddleware, middleware.RequireRoles("admin"), directoryController.GetDirectoryToken)
}
