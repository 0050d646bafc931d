package main

import (
	"log"

	"educareer/config"
	"educareer/database"
	"educareer/progress"
	adminRoutes "educareer/routers/adminRoutes"
	authRoutes "educareer/routers/authRoutes"
	courseRoutes "educareer/routers/courseRoutes"
	directoryRoutes "educareer/routers/directoryRoutes"
	feedbackRoutes "educareer/routers/feedbackRoutes"
	userRoutes "educareer/routers/userRoutes"
	"educareer/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.FrontendOrigin,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded images and certificates
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupProviderCourseRoutes(app)
	courseRoutes.SetupDashboardRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	userRoutes.SetupUserRoutes(app)
	feedbackRoutes.SetupFeedbackRoutes(app)
	directoryRoutes.SetupDirectoryRoutes(app)

	// Nightly completion percentage reconciliation
	engine := progress.NewEngine(progress.NewGormStore(database.Database.Db))
	reconciler := utils.InitializeProgressReconciler(engine)
	defer reconciler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
