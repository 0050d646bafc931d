package controllers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"educareer/config"
	"educareer/database"
	"educareer/middleware"
	"educareer/models"
	courseModels "educareer/models/course"
	"educareer/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IssueCertificate renders and records a certificate for a fully completed enrollment
func IssueCertificate(c *fiber.Ctx) error {
	enrollmentID := c.Locals("enrollmentID").(int)

	enrollment, ok := learnerEnrollment(c, enrollmentID)
	if !ok {
		return nil
	}

	if enrollment.CompletionPercentage < 100 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course is not fully completed yet!", fiber.Map{
			"completion_percentage": enrollment.CompletionPercentage,
		})
	}

	// Re-issuing returns the existing certificate
	var existing courseModels.Certificate
	err := database.Database.Db.
		Where("enrollment_id = ? AND is_deleted = ?", enrollment.ID, false).
		First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate already issued!", existing)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var user models.UserAccount
	if err := database.Database.Db.Where("id = ?", enrollment.UserID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	displayName := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if displayName == "" {
		displayName = user.Username
	}

	issuedAt := time.Now()
	serial := fmt.Sprintf("EDU-%d-%s", issuedAt.Year(), strings.ToUpper(uuid.NewString()[:8]))

	artwork, err := utils.RenderCertificatePNG(utils.CertificateData{
		Name:         displayName,
		Course:       course.Name,
		Date:         issuedAt.Format("02 January 2006"),
		SerialNumber: serial,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render certificate!", nil)
	}

	filePath, err := utils.SaveBytes(artwork, config.AppConfig.UploadDir, serial+".png")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store certificate!", nil)
	}

	certificate := courseModels.Certificate{
		UserID:            enrollment.UserID,
		CourseID:          enrollment.CourseID,
		EnrollmentID:      enrollment.ID,
		CertificateNumber: serial,
		CertificateURL:    utils.GetFileURL(filePath),
		IssuedAt:          issuedAt,
	}
	if err := database.Database.Db.Create(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record certificate!", nil)
	}

	go func() {
		if err := utils.SendCertificateEmail(user.Email, displayName, course.Name, artwork); err != nil {
			log.Println("[CERTIFICATE] Failed to email certificate", serial, ":", err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", certificate)
}

// GetUserCertificates lists the certificates of the logged in learner
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certificates)
}

// VerifyCertificate looks up a certificate by its public serial number
func VerifyCertificate(c *fiber.Ctx) error {
	serial := c.Params("certificateNumber")
	if serial == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Certificate number is required!", nil)
	}

	var certificate courseModels.Certificate
	if err := database.Database.Db.
		Where("certificate_number = ? AND is_deleted = ?", serial, false).
		First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", certificate.CourseID).First(&course)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate is valid!", fiber.Map{
		"certificate": certificate,
		"course_name": course.Name,
	})
}
