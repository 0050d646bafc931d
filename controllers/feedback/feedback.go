package feedbackController

import (
	"educareer/database"
	"educareer/middleware"
	"educareer/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitFeedback stores a contact-us message. No login required.
func SubmitFeedback(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFeedback").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	feedback := models.ContactFeedback{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thank you for your feedback!", nil)
}

// ListFeedback returns feedback messages for admins, unresolved first
func ListFeedback(c *fiber.Ctx) error {
	var feedback []models.ContactFeedback
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("is_resolved asc, created_at desc").
		Find(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback fetched successfully!", feedback)
}

// ResolveFeedback marks a feedback message as handled
func ResolveFeedback(c *fiber.Ctx) error {
	feedbackID := c.Locals("feedbackID").(int)

	var feedback models.ContactFeedback
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", feedbackID, false).First(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Feedback not found!", nil)
	}

	feedback.IsResolved = true
	if err := database.Database.Db.Save(&feedback).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update feedback!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Feedback marked as resolved.", nil)
}
