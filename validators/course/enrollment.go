package courseValidator

import (
	"educareer/middleware"
	courseModels "educareer/models/course"

	"github.com/gofiber/fiber/v2"
)

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"course_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"course_id": "Course ID is required!"})
		}

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := idParam(c, "id", "Enrollment ID")
		if !ok {
			return nil
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}

func EnrollmentUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := idParam(c, "id", "Enrollment ID")
		if !ok {
			return nil
		}

		reqData := new(struct {
			IsKicked *bool `json:"is_kicked"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.IsKicked == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"is_kicked": "is_kicked is required!"})
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("validatedEnrollmentUpdate", reqData)
		return c.Next()
	}
}

// EnrollmentModule parses the enrollment/module route parameter pair
func EnrollmentModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := idParam(c, "enrollment_id", "Enrollment ID")
		if !ok {
			return nil
		}
		moduleID, ok := idParam(c, "module_id", "Module ID")
		if !ok {
			return nil
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

func SetModuleProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, ok := idParam(c, "id", "Enrollment ID")
		if !ok {
			return nil
		}

		reqData := new(struct {
			ModuleID uint   `json:"module_id"`
			Status   string `json:"status"`
			Progress int    `json:"progress"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ModuleID == 0 {
			errors["module_id"] = "Module ID is required!"
		}
		switch reqData.Status {
		case courseModels.ProgressNotStarted, courseModels.ProgressInProgress, courseModels.ProgressCompleted:
		default:
			errors["status"] = "Invalid progress status!"
		}
		if reqData.Progress < 0 || reqData.Progress > 100 {
			errors["progress"] = "Progress must be between 0 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("enrollmentID", enrollmentID)
		c.Locals("validatedModuleProgress", reqData)
		return c.Next()
	}
}
