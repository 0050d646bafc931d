package courseValidator

import (
	"strconv"
	"strings"

	"educareer/middleware"

	"github.com/gofiber/fiber/v2"
)

// idParam parses a positive integer route parameter. When ok is false the
// error response has already been written.
func idParam(c *fiber.Ctx, param, label string) (int, bool) {
	raw := strings.TrimSpace(c.Params(param))
	if raw == "" {
		_ = middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		_ = middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		return 0, false
	}
	return id, true
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page" query:"page"`
			Limit *int `json:"limit" query:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		defaultPage := 1
		defaultLimit := 12
		if reqData.Page == nil || *reqData.Page < 1 {
			reqData.Page = &defaultPage
		}
		if reqData.Limit == nil || *reqData.Limit < 1 || *reqData.Limit > 100 {
			reqData.Limit = &defaultLimit
		}

		c.Locals("validatedCourseList", reqData)
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := idParam(c, "id", "Course ID")
		if !ok {
			return nil
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name                    string  `json:"name"`
			Description             string  `json:"description"`
			Price                   float64 `json:"price"`
			MaxCapacity             int     `json:"max_capacity"`
			Category                string  `json:"category"`
			Source                  string  `json:"source"`
			ExternalReferenceNumber string  `json:"external_reference_number"`
			TrainingProviderAlias   string  `json:"training_provider_alias"`
			TotalTrainingHours      float64 `json:"total_training_hours"`
			TotalCost               float64 `json:"total_cost"`
			TileImageURL            string  `json:"tile_image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.MaxCapacity < 0 {
			errors["max_capacity"] = "Max capacity cannot be negative!"
		}

		if reqData.Source != "" && reqData.Source != "internal" && reqData.Source != "external" {
			errors["source"] = "Source must be internal or external!"
		}
		if reqData.Source == "external" && strings.TrimSpace(reqData.ExternalReferenceNumber) == "" {
			errors["external_reference_number"] = "Reference number is required for external courses!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := idParam(c, "id", "Course ID")
		if !ok {
			return nil
		}

		reqData := new(struct {
			Name               string   `json:"name"`
			Description        string   `json:"description"`
			Price              *float64 `json:"price"`
			MaxCapacity        *int     `json:"max_capacity"`
			Category           string   `json:"category"`
			TotalTrainingHours *float64 `json:"total_training_hours"`
			TotalCost          *float64 `json:"total_cost"`
			TileImageURL       string   `json:"tile_image_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.MaxCapacity != nil && *reqData.MaxCapacity < 0 {
			errors["max_capacity"] = "Max capacity cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := idParam(c, "id", "Course ID")
		if !ok {
			return nil
		}

		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			ModuleOrder int    `json:"module_order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.ModuleOrder < 0 {
			errors["module_order"] = "Module order cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

func UpdateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := idParam(c, "course_id", "Course ID")
		if !ok {
			return nil
		}
		moduleID, ok := idParam(c, "module_id", "Module ID")
		if !ok {
			return nil
		}

		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			ModuleOrder *int   `json:"module_order"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.ModuleOrder != nil && *reqData.ModuleOrder < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"module_order": "Module order cannot be negative!"})
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		c.Locals("validatedModuleUpdate", reqData)
		return c.Next()
	}
}

func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, ok := idParam(c, "course_id", "Course ID")
		if !ok {
			return nil
		}
		moduleID, ok := idParam(c, "module_id", "Module ID")
		if !ok {
			return nil
		}

		c.Locals("courseID", courseID)
		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}
