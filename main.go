package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"pcl-backend/config"
	authController "pcl-backend/controllers/auth"
	courseController "pcl-backend/controllers/course"
	internshipController "pcl-backend/controllers/internship"
	leadController "pcl-backend/controllers/leads"
	projectController "pcl-backend/controllers/project"
	"pcl-backend/database"
	"pcl-backend/middleware"
	authRoutes "pcl-backend/routers/authRoutes"
	courseRoutes "pcl-backend/routers/courseRoutes"
	internshipRoutes "pcl-backend/routers/internshipRoutes"
	leadRoutes "pcl-backend/routers/leadRoutes"
	projectRoutes "pcl-backend/routers/projectRoutes"
	"pcl-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var mailer utils.EmailService
	if cfg.EmailSender != "" && cfg.EmailPassword != "" {
		mailer = utils.NewSMTPEmailService(cfg)
	} else {
		log.Println("Email credentials not configured; notifications go to the log.")
		mailer = &utils.ConsoleEmailService{}
	}

	files := utils.NewUploader(cfg.UploadDir)

	app := fiber.New(fiber.Config{
		// Uploads are capped at 5MB each; leave headroom for the rest of
		// the multipart body.
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	protected := middleware.Protected(cfg.JWTKey)

	authRoutes.SetupAuthRoutes(app, authController.NewController(db, cfg))
	courseRoutes.SetupCourseRoutes(app, courseController.NewController(db, cfg, files, mailer), protected)
	internshipRoutes.SetupInternshipRoutes(app, internshipController.NewController(db, cfg, files, mailer), protected)
	projectRoutes.SetupProjectRoutes(app, projectController.NewController(db, cfg, files, mailer), protected)
	leadRoutes.SetupLeadRoutes(app, leadController.NewController(db, cfg, files, mailer))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Static("/uploads", cfg.UploadDir)
	app.Static("/", cfg.StaticDir)

	// SPA fallback: unknown GET paths serve the frontend entry point.
	indexFile := filepath.Join(cfg.StaticDir, "index.html")
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet {
			if _, err := os.Stat(indexFile); err == nil {
				return c.SendFile(indexFile)
			}
		}
		return middleware.Error(c, fiber.StatusNotFound, "Frontend not found")
	})

	digest := utils.InitializeDigestScheduler(db, mailer)
	defer digest.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
