package feedbackValidator

import (
	"strconv"
	"strings"

	"educareer/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func SubmitFeedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Subject string `json:"subject"`
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if validate.Var(strings.TrimSpace(reqData.Email), "required,email") != nil {
			errors["email"] = "A valid email is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		} else if len(reqData.Message) > 5000 {
			errors["message"] = "Message is too long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFeedback", reqData)
		return c.Next()
	}
}

func FeedbackID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		feedbackID, err := strconv.Atoi(raw)
		if err != nil || feedbackID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Feedback ID!", nil)
		}

		c.Locals("feedbackID", feedbackID)
		return c.Next()
	}
}
