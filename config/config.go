package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	FrontendOrigin string // Allowed CORS origin for the SPA client

	SendGridAPIKey string
	EmailSender    string
	EmailName      string

	DirectoryTokenURL     string // OAuth token endpoint of the external course directory
	DirectoryAPIURL       string // Base URL of the external course directory API
	DirectoryClientID     string
	DirectoryClientSecret string

	UploadDir       string
	CertificateFont string // Optional TTF path for certificate artwork
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "5000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@educareer.io"),
		EmailName:      getEnv("EMAIL_SENDER_NAME", "EduCareer"),

		DirectoryTokenURL:     getEnv("DIRECTORY_TOKEN_URL", "https://public-api.ssg-wsg.sg/dp-oauth/oauth/token"),
		DirectoryAPIURL:       getEnv("DIRECTORY_API_URL", "https://public-api.ssg-wsg.sg"),
		DirectoryClientID:     getEnv("DIRECTORY_CLIENT_ID", ""),
		DirectoryClientSecret: getEnv("DIRECTORY_CLIENT_SECRET", ""),

		UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
		CertificateFont: getEnv("CERTIFICATE_FONT", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.SendGridAPIKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Outgoing email is disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
