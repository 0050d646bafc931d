package controllers

import (
	"errors"

	"educareer/database"
	"educareer/middleware"
	courseModels "educareer/models/course"
	"educareer/progress"

	"github.com/gofiber/fiber/v2"
)

// learnerEnrollment loads an enrollment and verifies it belongs to the caller.
// When ok is false the error response has already been written.
func learnerEnrollment(c *fiber.Ctx, enrollmentID int) (*courseModels.Enrollment, bool) {
	userID, userOk := c.Locals("userId").(uint)
	if !userOk {
		_ = middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		return nil, false
	}

	var enrollment courseModels.Enrollment
	err := database.Database.Db.
		Where("id = ? AND user_id = ? AND is_deleted = ?", enrollmentID, userID, false).
		First(&enrollment).Error
	if err != nil {
		_ = middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
		return nil, false
	}

	if enrollment.IsKicked {
		_ = middleware.JsonResponse(c, fiber.StatusForbidden, false, "You have been removed from this course!", nil)
		return nil, false
	}
	return &enrollment, true
}

// GetLearnerDashboard lists the learner's active enrollments with course details
// and the stored completion percentage
func GetLearnerDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ? AND is_kicked = ?", userID, false, false).
		Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	type dashboardEntry struct {
		EnrollmentID         uint               `json:"enrollment_id"`
		CompletionPercentage int                `json:"completion_percentage"`
		Course               courseModels.Course `json:"course"`
	}

	entries := make([]dashboardEntry, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course courseModels.Course
		if err := database.Database.Db.
			Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).
			First(&course).Error; err != nil {
			continue
		}
		entries = append(entries, dashboardEntry{
			EnrollmentID:         enrollment.ID,
			CompletionPercentage: enrollment.CompletionPercentage,
			Course:               course,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", entries)
}

// GetEnrollmentModules lists the enrollment's course modules in display order.
// Modules the learner has not touched yet carry a synthetic not_started record.
func GetEnrollmentModules(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	enrollment, ok := learnerEnrollment(c, enrollmentID)
	if !ok {
		return nil
	}

	var modules []courseModels.CourseModule
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", enrollment.CourseID, false).
		Order("module_order asc, id asc").Find(&modules).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	var progressRows []courseModels.ModuleProgress
	if err := database.Database.Db.
		Where("enrollment_id = ?", enrollment.ID).
		Find(&progressRows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	progressByModule := make(map[uint]courseModels.ModuleProgress, len(progressRows))
	for _, row := range progressRows {
		progressByModule[row.ModuleID] = row
	}

	type moduleWithProgress struct {
		Module   courseModels.CourseModule `json:"module"`
		Status   string                    `json:"status"`
		Progress int                       `json:"progress"`
	}

	result := make([]moduleWithProgress, 0, len(modules))
	for _, module := range modules {
		entry := moduleWithProgress{
			Module:   module,
			Status:   courseModels.ProgressNotStarted,
			Progress: 0,
		}
		if row, found := progressByModule[module.ID]; found {
			entry.Status = row.Status
			entry.Progress = row.Progress
		}
		result = append(result, entry)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"modules":    result,
	})
}

// CompleteModule marks a module completed for the learner's enrollment and
// refreshes the stored completion percentage
func CompleteModule(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)
	moduleID := c.Locals("moduleID").(int)

	enrollment, ok := learnerEnrollment(c, enrollmentID)
	if !ok {
		return nil
	}

	// The module must belong to the enrollment's course
	var module courseModels.CourseModule
	if err := database.Database.Db.
		Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, enrollment.CourseID, false).
		First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found in this course!", nil)
	}

	engine := progress.NewEngine(progress.NewGormStore(database.Database.Db))

	if err := engine.CompleteModule(enrollment.ID, module.ID); err != nil {
		if errors.Is(err, progress.ErrStaleProgress) {
			// The module record is saved but the percentage could not be
			// refreshed. A later completion or the nightly reconciler will
			// bring it up to date.
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Module completed, progress refresh pending.", fiber.Map{
				"completion_percentage": enrollment.CompletionPercentage,
				"stale":                 true,
			})
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete module!", nil)
	}

	var refreshed courseModels.Enrollment
	if err := database.Database.Db.Where("id = ?", enrollment.ID).First(&refreshed).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reload enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module completed successfully!", fiber.Map{
		"completion_percentage": refreshed.CompletionPercentage,
		"stale":                 false,
	})
}
