package controller

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"intervia-backend/internal/config"
	"intervia-backend/internal/repository"
	"intervia-backend/internal/service"
	"intervia-backend/pkg/middleware"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	cfg *config.APIConfig,
	userService service.UserService,
	resumeService service.ResumeService,
	interviewService service.InterviewService,
	feedbackService service.FeedbackService,
	extractionService service.ExtractionService,
	interviewRepo repository.InterviewRepository,
) {
	// One LLM-backed call every few seconds per client is plenty.
	llmLimit := middleware.RateLimitMiddleware(rate.Limit(0.2), 2)

	authCtrl := NewAuthController(userService)
	auth := r.Group("/auth")
	{
		auth.POST("/token", authCtrl.IssueToken)
		auth.POST("/refresh", authCtrl.RefreshToken)
	}

	resumeCtrl := NewResumeController(resumeService, extractionService)
	resumes := r.Group("/resumes")
	{
		resumes.POST("", resumeCtrl.CreateResumeAnalysis)
		resumes.PUT("", resumeCtrl.UpdateResumeAnalysis)
		resumes.GET("", resumeCtrl.GetResumeAnalysis)
		resumes.GET("/exists", resumeCtrl.CheckResumeExists)
		resumes.POST("/extract", llmLimit, resumeCtrl.ExtractResume)
	}

	interviewCtrl := NewInterviewController(interviewService, feedbackService, interviewRepo)
	interviews := r.Group("/interviews")
	{
		interviews.POST("/generate", llmLimit, interviewCtrl.GenerateInterview)
		interviews.POST("/feedback", llmLimit, interviewCtrl.SubmitFeedback)
		interviews.POST("", interviewCtrl.CreateInterview)
		interviews.GET("", interviewCtrl.GetPastInterviews)
		interviews.GET("/:id/exists", interviewCtrl.CheckInterviewExists)
		interviews.GET("/:id/report.pdf", interviewCtrl.DownloadReport)
	}

	webhookCtrl := NewWebhookController(userService, cfg.Identity.WebhookSecret)
	r.POST("/webhooks/identity", webhookCtrl.HandleIdentityEvent)
}
