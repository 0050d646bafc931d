package authController

import (
	"educareer/config"
	"educareer/database"
	"educareer/middleware"
	"educareer/models"
	"educareer/utils"
	"log"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a user account plus the role-specific profile
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*struct {
		Username         string `json:"username"`
		Email            string `json:"email"`
		Password         string `json:"password"`
		Role             string `json:"role"`
		FirstName        string `json:"first_name"`
		LastName         string `json:"last_name"`
		PhoneNumber      string `json:"phone_number"`
		OrganizationName string `json:"organization_name"`
		Address          string `json:"address"`
		Occupation       string `json:"occupation"`
		CompanyName      string `json:"company_name"`
		AboutMyself      string `json:"about_myself"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if username or email already exists
	if err := db.Where("username = ? AND is_deleted = ?", reqData.Username, false).First(&models.UserAccount{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username already exists.", nil)
	}
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&models.UserAccount{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already exists.", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.UserAccount{
		Username:    reqData.Username,
		Email:       reqData.Email,
		Password:    string(hashedPassword),
		FirstName:   reqData.FirstName,
		LastName:    reqData.LastName,
		PhoneNumber: reqData.PhoneNumber,
		Role:        reqData.Role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	// Role-specific profile
	switch reqData.Role {
	case "provider":
		profile := models.ProviderProfile{
			UserID:           newUser.ID,
			OrganizationName: reqData.OrganizationName,
			PhoneNumber:      reqData.PhoneNumber,
			Address:          reqData.Address,
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Printf("Error creating provider profile: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create provider profile!", nil)
		}
	case "learner":
		profile := models.LearnerProfile{
			UserID:      newUser.ID,
			Occupation:  reqData.Occupation,
			CompanyName: reqData.CompanyName,
			AboutMyself: reqData.AboutMyself,
		}
		if err := db.Create(&profile).Error; err != nil {
			log.Printf("Error creating learner profile: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create learner profile!", nil)
		}
	}

	utils.SendRegistrationVerificationEmail(newUser.Email, newUser.Username)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful! Verification email sent.", fiber.Map{
		"userId": newUser.ID,
	})
}

// Login verifies credentials, issues a JWT and records the session
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Username   string `json:"username"`
		Password   string `json:"password"`
		RememberMe bool   `json:"remember_me"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Username field accepts username or email
	var user models.UserAccount
	if err := db.Where("(username = ? OR email = ?) AND is_deleted = ?", reqData.Username, reqData.Username, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	token, tokenID, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email, reqData.RememberMe)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session!", nil)
	}

	session := models.SessionHistory{
		UserID:    user.ID,
		TokenID:   tokenID,
		IPAddress: c.IP(),
		Device:    c.Get("User-Agent"),
		LoginAt:   time.Now(),
	}
	if err := db.Create(&session).Error; err != nil {
		log.Printf("Error recording session history: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to associate session with user", nil)
	}

	db.Model(&user).Update("last_login", time.Now())

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// ForgotPassword generates a temporary password and emails it
func ForgotPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedForgotPassword").(*struct {
		Email string `json:"email"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.UserAccount
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Email not found", nil)
	}

	newPassword := generateRandomPassword(12)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing temporary password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Printf("Error updating password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	if err := utils.SendForgotPasswordEmail(user.Email, user.Username, newPassword); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send email", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "A new temporary password has been sent to your email.", nil)
}

// ResetPassword changes the password after verifying the current one
func ResetPassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResetPassword").(*struct {
		Email           string `json:"email"`
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.UserAccount
	if err := db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect.", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing new password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Printf("Error updating password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password has been reset successfully.", nil)
}

// CheckSession reports whether the presented token still maps to a live user
func CheckSession(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No active session", nil)
	}

	var user models.UserAccount
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No active session", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session active", fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
	})
}

// Logout stamps the session history row of the presented token. The token
// itself stays valid until expiry; clients drop it locally.
func Logout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "No active session", nil)
	}

	if tokenID, ok := c.Locals("tokenId").(string); ok && tokenID != "" {
		now := time.Now()
		database.Database.Db.Model(&models.SessionHistory{}).
			Where("user_id = ? AND token_id = ?", userID, tokenID).
			Update("logout_at", &now)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()"

func generateRandomPassword(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	password := make([]byte, length)
	for i := range password {
		password[i] = passwordCharset[rng.Intn(len(passwordCharset))]
	}
	return string(password)
}
