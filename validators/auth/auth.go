package authValidator

import (
	"strings"

	"educareer/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var allowedRoles = map[string]bool{
	"learner":  true,
	"provider": true,
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username         string `json:"username"`
			Email            string `json:"email"`
			Password         string `json:"password"`
			Role             string `json:"role"`
			FirstName        string `json:"first_name"`
			LastName         string `json:"last_name"`
			PhoneNumber      string `json:"phone_number"`
			OrganizationName string `json:"organization_name"`
			Address          string `json:"address"`
			Occupation       string `json:"occupation"`
			CompanyName      string `json:"company_name"`
			AboutMyself      string `json:"about_myself"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Username = strings.TrimSpace(reqData.Username)
		if reqData.Username == "" {
			errors["username"] = "Username is required!"
		} else if len(reqData.Username) < 3 {
			errors["username"] = "Username must be at least 3 characters long!"
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if validate.Var(reqData.Email, "email") != nil {
			errors["email"] = "Invalid email address!"
		}

		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		} else if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if reqData.Role == "" {
			reqData.Role = "learner"
		}
		if !allowedRoles[reqData.Role] {
			errors["role"] = "Role must be learner or provider!"
		}

		if reqData.Role == "provider" && strings.TrimSpace(reqData.OrganizationName) == "" {
			errors["organization_name"] = "Organization name is required for providers!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username   string `json:"username"`
			Password   string `json:"password"`
			RememberMe bool   `json:"remember_me"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Username = strings.TrimSpace(reqData.Username)
		if reqData.Username == "" {
			errors["username"] = "Username or email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func ForgotPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email string `json:"email"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if validate.Var(reqData.Email, "required,email") != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"email": "A valid email is required!"})
		}

		c.Locals("validatedForgotPassword", reqData)
		return c.Next()
	}
}

func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email           string `json:"email"`
			CurrentPassword string `json:"current_password"`
			NewPassword     string `json:"new_password"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(reqData.Email)
		if validate.Var(reqData.Email, "required,email") != nil {
			errors["email"] = "A valid email is required!"
		}
		if reqData.CurrentPassword == "" {
			errors["current_password"] = "Current password is required!"
		}
		if len(reqData.NewPassword) < 8 {
			errors["new_password"] = "New password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResetPassword", reqData)
		return c.Next()
	}
}
