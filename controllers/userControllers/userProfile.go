package userControllers

import (
	"log"

	"educareer/config"
	"educareer/database"
	"educareer/middleware"
	"educareer/models"
	"educareer/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetProfile returns the caller's account with the role-specific profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.UserAccount
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	response := fiber.Map{"user": user}

	switch user.Role {
	case "learner":
		var profile models.LearnerProfile
		if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err == nil {
			response["learner_profile"] = profile
		}
	case "provider":
		var profile models.ProviderProfile
		if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err == nil {
			response["provider_profile"] = profile
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", response)
}

// UpdateProfile updates account fields plus the role-specific profile
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfileUpdate").(*struct {
		FirstName        string `json:"first_name"`
		LastName         string `json:"last_name"`
		PhoneNumber      string `json:"phone_number"`
		Occupation       string `json:"occupation"`
		CompanyName      string `json:"company_name"`
		AboutMyself      string `json:"about_myself"`
		OrganizationName string `json:"organization_name"`
		Address          string `json:"address"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.UserAccount
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if reqData.FirstName != "" {
		user.FirstName = reqData.FirstName
	}
	if reqData.LastName != "" {
		user.LastName = reqData.LastName
	}
	if reqData.PhoneNumber != "" {
		user.PhoneNumber = reqData.PhoneNumber
	}
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	switch user.Role {
	case "learner":
		var profile models.LearnerProfile
		if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err == nil {
			if reqData.Occupation != "" {
				profile.Occupation = reqData.Occupation
			}
			if reqData.CompanyName != "" {
				profile.CompanyName = reqData.CompanyName
			}
			if reqData.AboutMyself != "" {
				profile.AboutMyself = reqData.AboutMyself
			}
			database.Database.Db.Save(&profile)
		}
	case "provider":
		var profile models.ProviderProfile
		if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err == nil {
			if reqData.OrganizationName != "" {
				profile.OrganizationName = reqData.OrganizationName
			}
			if reqData.PhoneNumber != "" {
				profile.PhoneNumber = reqData.PhoneNumber
			}
			if reqData.Address != "" {
				profile.Address = reqData.Address
			}
			database.Database.Db.Save(&profile)
		}
	}

	user.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// UploadProfileImage stores the learner's profile or cover image
func UploadProfileImage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var profile models.LearnerProfile
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Learner profile not found!", nil)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store image!", nil)
	}

	imageURL := utils.GetFileURL(filePath)
	if c.FormValue("type") == "cover" {
		profile.CoverImageURL = imageURL
	} else {
		profile.ProfileImageURL = imageURL
	}

	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded successfully!", fiber.Map{
		"image_url": imageURL,
	})
}

// DeleteAccount soft deletes the caller's account and its profile
func DeleteAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.UserAccount
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsDeleted = true
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete account!", nil)
	}

	switch user.Role {
	case "learner":
		database.Database.Db.Model(&models.LearnerProfile{}).
			Where("user_id = ?", userID).Update("is_deleted", true)
	case "provider":
		database.Database.Db.Model(&models.ProviderProfile{}).
			Where("user_id = ?", userID).Update("is_deleted", true)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account deleted successfully.", nil)
}

// ChangePassword verifies the current password and stores a new hash
func ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.UserAccount
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.OldPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	user.Password = string(hashedPassword)
	if err := database.Database.Db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to change password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully!", nil)
}
