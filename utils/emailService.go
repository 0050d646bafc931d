package utils

import (
	"educareer/config"
	"encoding/base64"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a single HTML email through SendGrid. When no API key is
// configured the send is skipped so local development works without outbound
// email.
func SendEmail(to, subject, htmlBody string) error {
	return sendMessage(to, subject, htmlBody, nil, "")
}

func sendMessage(to, subject, htmlBody string, attachment []byte, attachmentName string) error {
	if config.AppConfig.SendGridAPIKey == "" {
		log.Printf("Email disabled, skipping send to %s: %s", to, subject)
		return nil
	}

	from := mail.NewEmail(config.AppConfig.EmailName, config.AppConfig.EmailSender)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)

	if attachment != nil {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(attachment))
		att.SetType("image/png")
		att.SetFilename(attachmentName)
		att.SetDisposition("attachment")
		message.AddAttachment(att)
	}

	client := sendgrid.NewSendClient(config.AppConfig.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", to, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email to %s: %d %s", to, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid rejected email with status %d", resp.StatusCode)
	}
	return nil
}

// getEmailTemplate wraps body content in the EduCareer house layout
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B2A4A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B2A4A; line-height: 1.6; }
			.content h2 { color: #1B2A4A; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4A90D9; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EDUCAREER</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 EduCareer. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// SendRegistrationVerificationEmail welcomes a new account
func SendRegistrationVerificationEmail(email, username string) {
	subject := "Welcome to EduCareer"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Welcome to <strong>EduCareer</strong>! Your account has been created successfully.</p>
		<p>You can now browse the course catalog and enroll in courses that match your goals.</p>
	`, username)

	go SendEmail(email, subject, getEmailTemplate("Welcome Onboard!", body))
}

// SendForgotPasswordEmail delivers a temporary password. Sent synchronously so
// the caller can report delivery failure.
func SendForgotPasswordEmail(email, username, tempPassword string) error {
	subject := "Your EduCareer temporary password"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>A password reset was requested for your account. Use the temporary password below to log in, then change it immediately:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>If you did not request this, please contact support.</p>
	`, username, tempPassword)

	return SendEmail(email, subject, getEmailTemplate("Password Reset", body))
}

// SendEnrollmentReceipt confirms a course enrollment
func SendEnrollmentReceipt(email, username, courseName string, price float64) {
	subject := "Enrollment Confirmed: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">Amount charged: <strong>$%.2f</strong></div>
		<p>Head to your dashboard to start learning.</p>
	`, username, courseName, price)

	go SendEmail(email, subject, getEmailTemplate("Enrollment Receipt", body))
}

// SendCertificateEmail delivers the rendered certificate as an attachment
func SendCertificateEmail(email, username, courseName string, artwork []byte) error {
	subject := "Your Certificate of Completion: " + courseName
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<p>Your certificate is attached to this email.</p>
	`, username, courseName)

	return sendMessage(email, subject, getEmailTemplate("Congratulations!", body), artwork, "certificate.png")
}
