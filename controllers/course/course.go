package controllers

import (
	"educareer/database"
	"educareer/middleware"
	courseModels "educareer/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists catalog courses with optional keyword search
func GetAllCourses(c *fiber.Ctx) error {
	keyword := c.Query("keyword")

	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Page  *int `json:"page" query:"page"`
		Limit *int `json:"limit" query:"limit"`
	})

	page := 1
	limit := 12
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).Where("is_deleted = ?", false)
	if keyword != "" {
		like := "%" + keyword + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns one course with its enrollment count, ordered
// module list and reviews
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollmentCount int64
	database.Database.Db.Model(&courseModels.Enrollment{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Count(&enrollmentCount)

	// Order ties broken by id so repeated listings are stable
	var modules []courseModels.CourseModule
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("module_order asc, id asc").Find(&modules)

	var reviews []courseModels.CourseReview
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("created_at desc").Find(&reviews)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":           course,
		"enrollment_count": enrollmentCount,
		"modules":          modules,
		"reviews":          reviews,
	})
}
