package controllers

import (
	"educareer/database"
	"educareer/middleware"
	courseModels "educareer/models/course"
	"educareer/progress"

	"github.com/gofiber/fiber/v2"
)

// ListModuleProgress returns the raw progress rows of an enrollment for admins
func ListModuleProgress(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var rows []courseModels.ModuleProgress
	if err := database.Database.Db.
		Where("enrollment_id = ?", enrollment.ID).
		Order("module_id asc").Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress rows!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress rows fetched successfully!", rows)
}

// GetModuleProgress returns one progress row by enrollment and module
func GetModuleProgress(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)
	moduleID := c.Locals("moduleID").(int)

	var row courseModels.ModuleProgress
	if err := database.Database.Db.
		Where("enrollment_id = ? AND module_id = ?", enrollmentID, moduleID).
		First(&row).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress row not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress row fetched successfully!", row)
}

// SetModuleProgress lets an admin set a progress row directly, then refreshes
// the enrollment's stored percentage
func SetModuleProgress(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	reqData, ok := c.Locals("validatedModuleProgress").(*struct {
		ModuleID uint   `json:"module_id"`
		Status   string `json:"status"`
		Progress int    `json:"progress"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("id = ?", enrollmentID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var module courseModels.CourseModule
	if err := database.Database.Db.
		Where("id = ? AND course_id = ?", reqData.ModuleID, enrollment.CourseID).
		First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found in this course!", nil)
	}

	var row courseModels.ModuleProgress
	err := database.Database.Db.
		Where("enrollment_id = ? AND module_id = ?", enrollment.ID, module.ID).
		First(&row).Error
	if err != nil {
		row = courseModels.ModuleProgress{
			EnrollmentID: enrollment.ID,
			ModuleID:     module.ID,
		}
	}
	row.Status = reqData.Status
	row.Progress = reqData.Progress

	if err := database.Database.Db.Save(&row).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save progress row!", nil)
	}

	engine := progress.NewEngine(progress.NewGormStore(database.Database.Db))
	if _, err := engine.RecalculateEnrollmentCompletion(enrollment.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Progress saved but percentage refresh failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress row saved successfully!", row)
}

// DeleteModuleProgress removes a progress row and refreshes the percentage
func DeleteModuleProgress(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)
	moduleID := c.Locals("moduleID").(int)

	var row courseModels.ModuleProgress
	if err := database.Database.Db.
		Where("enrollment_id = ? AND module_id = ?", enrollmentID, moduleID).
		First(&row).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress row not found!", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(&row).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete progress row!", nil)
	}

	engine := progress.NewEngine(progress.NewGormStore(database.Database.Db))
	if _, err := engine.RecalculateEnrollmentCompletion(uint(enrollmentID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Row deleted but percentage refresh failed!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress row deleted successfully!", nil)
}
