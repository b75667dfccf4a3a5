package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"intervia-backend/cmd/internal/controller"
	"intervia-backend/internal/config"
	"intervia-backend/internal/db"
	"intervia-backend/internal/llm"
	"intervia-backend/internal/model"
	"intervia-backend/internal/repository"
	"intervia-backend/internal/service"
	"intervia-backend/pkg/logging"
	"intervia-backend/pkg/middleware"
	"intervia-backend/utilities"
)

func main() {
	printStartUpBanner()

	// .env first so ${VAR} references in the XML config can expand.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logging.Init(cfg.Context.LogDir, cfg.RequestDump)
	utilities.InitJWT(cfg.Authentication.AccessSecret, cfg.Authentication.RefreshSecret)

	// Initialize DB using the loaded config and run migrations.
	db.InitDBFromConfig(cfg)
	if err := db.GetDB().AutoMigrate(
		&model.User{},
		&model.ResumeAnalysis{},
		&model.Experience{},
		&model.Education{},
		&model.Project{},
		&model.Interview{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	llmClient, err := llm.NewClientFromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create LLM client: %v", err)
	}

	// Create repositories.
	userRepo := repository.NewUserRepository()
	resumeRepo := repository.NewResumeRepository()
	interviewRepo := repository.NewInterviewRepository()

	// Create services.
	userService := service.NewUserService(userRepo)
	resumeService := service.NewResumeService(resumeRepo, userRepo)
	interviewService := service.NewInterviewService(resumeRepo, llmClient, cfg)
	feedbackService := service.NewFeedbackService(interviewRepo, llmClient, cfg)
	extractionService := service.NewExtractionService(llmClient, cfg)

	// Fire-and-forget identity sync listeners.
	service.InitIdentityEventListeners(userService)

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Webhook-Secret"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	r.Use(utilities.AuthMiddleware())

	controller.RegisterRoutes(r, cfg,
		userService, resumeService, interviewService, feedbackService, extractionService,
		interviewRepo,
	)

	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("INTERVIA", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("INTERVIA API (v%s)\n\n", "1.0.0")
}
