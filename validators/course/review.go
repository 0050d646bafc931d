package courseValidator

import (
	"strings"

	"educareer/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID                *uint  `json:"course_id"`
			ExternalReferenceNumber string `json:"external_reference_number"`
			Rating                  int    `json:"rating"`
			Comment                 string `json:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		hasCourseID := reqData.CourseID != nil && *reqData.CourseID > 0
		hasReference := strings.TrimSpace(reqData.ExternalReferenceNumber) != ""
		if hasCourseID == hasReference {
			errors["course_id"] = "Provide exactly one of course_id or external_reference_number!"
		}

		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reviewID, ok := idParam(c, "id", "Review ID")
		if !ok {
			return nil
		}

		reqData := new(struct {
			Rating  *int   `json:"rating"`
			Comment string `json:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Rating != nil && (*reqData.Rating < 1 || *reqData.Rating > 5) {
			return middleware.ValidationErrorResponse(c, map[string]string{"rating": "Rating must be between 1 and 5!"})
		}

		c.Locals("reviewID", reviewID)
		c.Locals("validatedReviewUpdate", reqData)
		return c.Next()
	}
}

func ReviewID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reviewID, ok := idParam(c, "id", "Review ID")
		if !ok {
			return nil
		}

		c.Locals("reviewID", reviewID)
		return c.Next()
	}
}
