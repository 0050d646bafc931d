package controllers

import (
	"educareer/config"
	"educareer/database"
	"educareer/middleware"
	"educareer/models"
	courseModels "educareer/models/course"
	"educareer/utils"

	"github.com/gofiber/fiber/v2"
)

// ownedCourse loads the course and verifies the caller owns it (or is admin).
// When ok is false the error response has already been written.
func ownedCourse(c *fiber.Ctx, courseID int) (*courseModels.Course, bool) {
	userID, userOk := c.Locals("userId").(uint)
	if !userOk {
		_ = middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		return nil, false
	}

	var user models.UserAccount
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		_ = middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		return nil, false
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		_ = middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		return nil, false
	}

	if course.CreatorID != userID && user.Role != "admin" {
		_ = middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this course!", nil)
		return nil, false
	}
	return &course, true
}

// CreateCourse creates a new marketplace course for the provider
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := courseModels.Course{
		CreatorID:               userID,
		Name:                    reqData.Name,
		Description:             reqData.Description,
		Price:                   reqData.Price,
		MaxCapacity:             reqData.MaxCapacity,
		Category:                reqData.Category,
		Source:                  reqData.Source,
		ExternalReferenceNumber: reqData.ExternalReferenceNumber,
		TrainingProviderAlias:   reqData.TrainingProviderAlias,
		TotalTrainingHours:      reqData.TotalTrainingHours,
		TotalCost:               reqData.TotalCost,
		TileImageURL:            reqData.TileImageURL,
	}
	if course.Source == "" {
		course.Source = "internal"
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse updates fields of an owned course
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, ok := ownedCourse(c, courseID)
	if !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Name               string   `json:"name"`
		Description        string   `json:"description"`
		Price              *float64 `json:"price"`
		MaxCapacity        *int     `json:"max_capacity"`
		Category           string   `json:"category"`
		TotalTrainingHours *float64 `json:"total_training_hours"`
		TotalCost          *float64 `json:"total_cost"`
		TileImageURL       string   `json:"tile_image_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Update only provided fields
	if reqData.Name != "" {
		course.Name = reqData.Name
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.MaxCapacity != nil {
		course.MaxCapacity = *reqData.MaxCapacity
	}
	if reqData.Category != "" {
		course.Category = reqData.Category
	}
	if reqData.TotalTrainingHours != nil {
		course.TotalTrainingHours = *reqData.TotalTrainingHours
	}
	if reqData.TotalCost != nil {
		course.TotalCost = *reqData.TotalCost
	}
	if reqData.TileImageURL != "" {
		course.TileImageURL = reqData.TileImageURL
	}

	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse soft deletes an owned course
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, ok := ownedCourse(c, courseID)
	if !ok {
		return nil
	}

	course.IsDeleted = true
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// UploadTileImage stores a tile image for an owned course
func UploadTileImage(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, ok := ownedCourse(c, courseID)
	if !ok {
		return nil
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
	}

	course.TileImageURL = utils.GetFileURL(filePath)
	if err := database.Database.Db.Save(course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tile image uploaded successfully!", fiber.Map{
		"tile_image_url": course.TileImageURL,
	})
}

// GetMyCourses lists courses created by the calling provider
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []courseModels.Course
	if err := database.Database.Db.Where("creator_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// CreateModule adds a module to an owned course
func CreateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	course, ok := ownedCourse(c, courseID)
	if !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedModule").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ModuleOrder int    `json:"module_order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := courseModels.CourseModule{
		CourseID:    course.ID,
		Name:        reqData.Name,
		Description: reqData.Description,
		ModuleOrder: reqData.ModuleOrder,
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule updates a module of an owned course
func UpdateModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	course, ok := ownedCourse(c, courseID)
	if !ok {
		return nil
	}

	var module courseModels.CourseModule
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, course.ID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModuleUpdate").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ModuleOrder *int   `json:"module_order"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Name != "" {
		module.Name = reqData.Name
	}
	if reqData.Description != "" {
		module.Description = reqData.Description
	}
	if reqData.ModuleOrder != nil {
		module.ModuleOrder = *reqData.ModuleOrder
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// DeleteModule soft deletes a module of an owned course
func DeleteModule(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	moduleID := c.Locals("moduleID").(int)

	course, ok := ownedCourse(c, courseID)
	if !ok {
		return nil
	}

	var module courseModels.CourseModule
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", moduleID, course.ID, false).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	module.IsDeleted = true
	if err := database.Database.Db.Save(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
