package adminValidator

import (
	"strings"

	"educareer/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func TableGrid() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Table string `json:"table" query:"table"`
			Page  *int   `json:"page" query:"page"`
			Limit *int   `json:"limit" query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if strings.TrimSpace(reqData.Table) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"table": "Table is required!"})
		}

		defaultPage := 1
		defaultLimit := 25
		if reqData.Page == nil || *reqData.Page < 1 {
			reqData.Page = &defaultPage
		}
		if reqData.Limit == nil || *reqData.Limit < 1 || *reqData.Limit > 200 {
			reqData.Limit = &defaultLimit
		}

		c.Locals("validatedTableGrid", reqData)
		return c.Next()
	}
}

func TableUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Table  string                 `json:"table"`
			RowID  uint                   `json:"row_id"`
			Values map[string]interface{} `json:"values"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Table) == "" {
			errors["table"] = "Table is required!"
		}
		if reqData.RowID == 0 {
			errors["row_id"] = "Row ID is required!"
		}
		if len(reqData.Values) == 0 {
			errors["values"] = "At least one column value is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTableUpdate", reqData)
		return c.Next()
	}
}

func CreateAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username    string `json:"username"`
			Email       string `json:"email"`
			Password    string `json:"password"`
			FirstName   string `json:"first_name"`
			LastName    string `json:"last_name"`
			PhoneNumber string `json:"phone_number"`
			Role        string `json:"role"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Username = strings.TrimSpace(reqData.Username)
		if len(reqData.Username) < 3 {
			errors["username"] = "Username must be at least 3 characters long!"
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if validate.Var(reqData.Email, "required,email") != nil {
			errors["email"] = "A valid email is required!"
		}

		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

func UserList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page" query:"page"`
			Limit *int `json:"limit" query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		defaultPage := 1
		defaultLimit := 25
		if reqData.Page == nil || *reqData.Page < 1 {
			reqData.Page = &defaultPage
		}
		if reqData.Limit == nil || *reqData.Limit < 1 || *reqData.Limit > 200 {
			reqData.Limit = &defaultLimit
		}

		c.Locals("validatedUserList", reqData)
		return c.Next()
	}
}
