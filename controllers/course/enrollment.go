package controllers

import (
	"log"
	"time"

	"educareer/database"
	"educareer/middleware"
	"educareer/models"
	courseModels "educareer/models/course"
	"educareer/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls the logged in learner into a course
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollment").(*struct {
		CourseID uint `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Reject duplicate enrollment
	var existing int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, course.ID, false).
		Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	if course.MaxCapacity > 0 {
		var enrolled int64
		database.Database.Db.Model(&courseModels.Enrollment{}).
			Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Count(&enrolled)
		if enrolled >= int64(course.MaxCapacity) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is full!", nil)
		}
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   course.ID,
		EnrolledAt: time.Now(),
	}
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}

	var user models.UserAccount
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err == nil {
		utils.SendEnrollmentReceipt(user.Email, user.FirstName, course.Name, course.Price)
	} else {
		log.Println("Failed to load user for enrollment receipt:", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

// CheckUserEnrollment reports whether the learner is enrolled in a course
func CheckUserEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		First(&enrollment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
			"enrolled": false,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
		"enrolled":   true,
		"enrollment": enrollment,
	})
}

// GetUserEnrollments lists the learner's enrollments with their courses
func GetUserEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type enrollmentWithCourse struct {
		Enrollment courseModels.Enrollment `json:"enrollment"`
		Course     courseModels.Course     `json:"course"`
	}

	result := make([]enrollmentWithCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
			continue
		}
		result = append(result, enrollmentWithCourse{Enrollment: enrollment, Course: course})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", result)
}

// GetEnrollmentById returns a single enrollment, visible to its learner or the course creator
func GetEnrollmentById(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	role, _ := c.Locals("userRole").(string)
	if enrollment.UserID != userID && course.CreatorID != userID && role != "admin" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You cannot view this enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"course":     course,
	})
}

// GetCourseEnrollments lists enrollments of a course for its creator
func GetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, ok := ownedCourse(c, courseID)
	if !ok {
		return nil
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// UpdateEnrollment lets the course creator kick or reinstate a learner
func UpdateEnrollment(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	reqData, ok := c.Locals("validatedEnrollmentUpdate").(*struct {
		IsKicked *bool `json:"is_kicked"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if _, ok := ownedCourse(c, int(enrollment.CourseID)); !ok {
		return nil
	}

	if reqData.IsKicked != nil {
		enrollment.IsKicked = *reqData.IsKicked
	}

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", enrollment)
}

// DeleteEnrollment soft deletes an enrollment, by its learner or the course creator
func DeleteEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID := c.Locals("enrollmentID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", enrollmentID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.UserID != userID {
		if _, ok := ownedCourse(c, int(enrollment.CourseID)); !ok {
			return nil
		}
	}

	enrollment.IsDeleted = true
	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment deleted successfully!", nil)
}
