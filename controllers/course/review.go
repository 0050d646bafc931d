package controllers

import (
	"educareer/database"
	"educareer/middleware"
	courseModels "educareer/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateReview stores a learner's rating for a marketplace or external course
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*struct {
		CourseID                *uint  `json:"course_id"`
		ExternalReferenceNumber string `json:"external_reference_number"`
		Rating                  int    `json:"rating"`
		Comment                 string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review := courseModels.CourseReview{
		UserID:  userID,
		Rating:  reqData.Rating,
		Comment: reqData.Comment,
	}

	if reqData.CourseID != nil {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.CourseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		// Only enrolled learners can review a marketplace course
		var enrolled int64
		database.Database.Db.Model(&courseModels.Enrollment{}).
			Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).
			Count(&enrolled)
		if enrolled == 0 {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled to review this course!", nil)
		}

		var existing int64
		database.Database.Db.Model(&courseModels.CourseReview{}).
			Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).
			Count(&existing)
		if existing > 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already reviewed this course!", nil)
		}

		review.CourseID = &course.ID
	} else {
		var existing int64
		database.Database.Db.Model(&courseModels.CourseReview{}).
			Where("user_id = ? AND external_reference_number = ? AND is_deleted = ?", userID, reqData.ExternalReferenceNumber, false).
			Count(&existing)
		if existing > 0 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "You already reviewed this course!", nil)
		}

		review.ExternalReferenceNumber = reqData.ExternalReferenceNumber
	}

	if err := database.Database.Db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review saved successfully!", review)
}

// GetCourseReviews lists reviews for a marketplace course
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var reviews []courseModels.CourseReview
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}

// GetExternalCourseReviews lists reviews for a directory course by its reference number
func GetExternalCourseReviews(c *fiber.Ctx) error {
	referenceNumber := c.Params("referenceNumber")
	if referenceNumber == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Reference number is required!", nil)
	}

	var reviews []courseModels.CourseReview
	if err := database.Database.Db.
		Where("external_reference_number = ? AND is_deleted = ?", referenceNumber, false).
		Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}

// UpdateReview lets a learner edit their own rating or comment
func UpdateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID := c.Locals("reviewID").(int)

	reqData, ok := c.Locals("validatedReviewUpdate").(*struct {
		Rating  *int   `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var review courseModels.CourseReview
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reviewID, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if review.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot edit this review!", nil)
	}

	if reqData.Rating != nil {
		review.Rating = *reqData.Rating
	}
	if reqData.Comment != "" {
		review.Comment = reqData.Comment
	}

	if err := database.Database.Db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}

// DeleteReview soft deletes a learner's own review
func DeleteReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID := c.Locals("reviewID").(int)

	var review courseModels.CourseReview
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reviewID, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	role, _ := c.Locals("userRole").(string)
	if review.UserID != userID && role != "admin" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot delete this review!", nil)
	}

	review.IsDeleted = true
	if err := database.Database.Db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}
