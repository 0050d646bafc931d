package userValidator

import (
	"educareer/middleware"

	"github.com/gofiber/fiber/v2"
)

func ProfileUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			FirstName        string `json:"first_name"`
			LastName         string `json:"last_name"`
			PhoneNumber      string `json:"phone_number"`
			Occupation       string `json:"occupation"`
			CompanyName      string `json:"company_name"`
			AboutMyself      string `json:"about_myself"`
			OrganizationName string `json:"organization_name"`
			Address          string `json:"address"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.AboutMyself) > 5000 {
			return middleware.ValidationErrorResponse(c, map[string]string{"about_myself": "About section is too long!"})
		}

		c.Locals("validatedProfileUpdate", reqData)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OldPassword string `json:"old_password"`
			NewPassword string `json:"new_password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.OldPassword == "" {
			errors["old_password"] = "Current password is required!"
		}
		if len(reqData.NewPassword) < 8 {
			errors["new_password"] = "New password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}
