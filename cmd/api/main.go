package main

import (
	"context"
	"log"

	"github.com/hirestream/hirestream/internal/config"
	"github.com/hirestream/hirestream/internal/database"
	"github.com/hirestream/hirestream/internal/handlers"
	"github.com/hirestream/hirestream/internal/services"
	"github.com/hirestream/hirestream/internal/storage"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Environment & configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// 2. Database
	db := database.Connect(cfg.DatabaseURL)

	// 3. Core services
	userService := services.NewUserService(db)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db, cfg.ApplyRequiresVerified)
	interviewService := services.NewInterviewService(db)

	// 4. External collaborators: Gemini for resume parsing, Cloudinary for
	// resume storage. Both are optional at boot; the endpoints that need
	// them fail per-request when unconfigured.
	ctx := context.Background()
	var resumeService *services.ResumeService
	if cfg.GeminiAPIKey != "" {
		llmService, err := services.NewLLMService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("Failed to create Gemini client:", err)
		}
		resumeService = services.NewResumeService(llmService.Client)
		log.Println("Gemini client connected")
	} else {
		log.Println("GEMINI_API_KEY not set; resume parsing disabled")
	}

	var uploader storage.Uploader
	if cfg.CloudinaryURL != "" {
		cloudinaryUploader, err := storage.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			log.Fatal("Failed to create Cloudinary client:", err)
		}
		uploader = cloudinaryUploader
	} else {
		log.Println("CLOUDINARY_URL not set; resume uploads disabled")
	}

	// 5. Router
	r := handlers.NewRouter(handlers.Deps{
		Cfg:          cfg,
		Users:        userService,
		Jobs:         jobService,
		Applications: applicationService,
		Interviews:   interviewService,
		Resume:       resumeService,
		Uploader:     uploader,
	})

	log.Println("Server starting on", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
