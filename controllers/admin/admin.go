package adminController

import (
	"log"

	"educareer/config"
	"educareer/database"
	"educareer/middleware"
	"educareer/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// gridTables whitelists the tables the admin grid may read, with the columns
// exposed per table. Requests naming anything else are rejected.
var gridTables = map[string][]string{
	"user_accounts":     {"id", "username", "email", "first_name", "last_name", "role", "is_email_verified", "is_deleted", "created_at"},
	"courses":           {"id", "creator_id", "name", "price", "max_capacity", "category", "source", "is_deleted", "created_at"},
	"course_modules":    {"id", "course_id", "name", "module_order", "is_deleted", "created_at"},
	"enrollments":       {"id", "user_id", "course_id", "completion_percentage", "is_kicked", "is_deleted", "enrolled_at"},
	"module_progresses": {"id", "enrollment_id", "module_id", "status", "progress", "updated_at"},
	"course_reviews":    {"id", "user_id", "course_id", "external_reference_number", "rating", "is_deleted", "created_at"},
	"certificates":      {"id", "user_id", "course_id", "enrollment_id", "certificate_number", "issued_at"},
	"contact_feedbacks": {"id", "name", "email", "message", "is_resolved", "created_at"},
}

// gridEditable whitelists the columns the admin grid may write per table
var gridEditable = map[string]map[string]bool{
	"user_accounts":     {"role": true, "is_email_verified": true, "is_deleted": true},
	"courses":           {"is_deleted": true, "max_capacity": true, "price": true},
	"course_modules":    {"is_deleted": true, "module_order": true},
	"enrollments":       {"is_kicked": true, "is_deleted": true},
	"course_reviews":    {"is_deleted": true},
	"contact_feedbacks": {"is_resolved": true},
}

// GetTableGrid returns rows of a whitelisted table for the admin panel
func GetTableGrid(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTableGrid").(*struct {
		Table string `json:"table" query:"table"`
		Page  *int   `json:"page" query:"page"`
		Limit *int   `json:"limit" query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	columns, allowed := gridTables[reqData.Table]
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown table!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	var rows []map[string]interface{}
	if err := database.Database.Db.
		Table(reqData.Table).
		Select(columns).
		Order("id desc").
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&rows).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rows!", nil)
	}

	var total int64
	database.Database.Db.Table(reqData.Table).Count(&total)

	response := map[string]interface{}{
		"columns": columns,
		"rows":    rows,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Table rows fetched.", response)
}

// UpdateTableRow updates whitelisted columns of a single row
func UpdateTableRow(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTableUpdate").(*struct {
		Table  string                 `json:"table"`
		RowID  uint                   `json:"row_id"`
		Values map[string]interface{} `json:"values"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	editable, allowed := gridEditable[reqData.Table]
	if !allowed {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Table is not editable!", nil)
	}

	updates := make(map[string]interface{}, len(reqData.Values))
	for column, value := range reqData.Values {
		if !editable[column] {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Column is not editable: "+column, nil)
		}
		updates[column] = value
	}
	if len(updates) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No editable columns provided!", nil)
	}

	result := database.Database.Db.
		Table(reqData.Table).
		Where("id = ?", reqData.RowID).
		Updates(updates)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update row!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Row not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Row updated successfully.", nil)
}

// CreateAdmin registers a new admin account
func CreateAdmin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		FirstName   string `json:"first_name"`
		LastName    string `json:"last_name"`
		PhoneNumber string `json:"phone_number"`
		Role        string `json:"role"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if err := db.Where("email = ?", reqData.Email).First(&models.UserAccount{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}
	if err := db.Where("username = ?", reqData.Username).First(&models.UserAccount{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newAdmin := models.UserAccount{
		Username:        reqData.Username,
		Email:           reqData.Email,
		Password:        string(hashedPassword),
		FirstName:       reqData.FirstName,
		LastName:        reqData.LastName,
		PhoneNumber:     reqData.PhoneNumber,
		Role:            "admin",
		IsEmailVerified: true,
	}

	if err := db.Create(&newAdmin).Error; err != nil {
		log.Printf("Error saving admin to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register admin!", nil)
	}

	newAdmin.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Admin registered successfully.", newAdmin)
}

// UserList returns the paginated user list for the admin panel
func UserList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUserList").(*struct {
		Page  *int `json:"page" query:"page"`
		Limit *int `json:"limit" query:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	var users []models.UserAccount
	var total int64

	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	database.Database.Db.
		Model(&models.UserAccount{}).
		Where("is_deleted = ?", false).
		Count(&total)

	response := map[string]interface{}{
		"users": users,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", response)
}
