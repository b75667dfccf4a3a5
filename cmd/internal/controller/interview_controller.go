package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intervia-backend/internal/model"
	"intervia-backend/internal/repository"
	"intervia-backend/internal/service"
)

type InterviewController struct {
	InterviewService service.InterviewService
	FeedbackService  service.FeedbackService
	InterviewRepo    repository.InterviewRepository
}

func NewInterviewController(interviewService service.InterviewService, feedbackService service.FeedbackService, interviewRepo repository.InterviewRepository) *InterviewController {
	return &InterviewController{
		InterviewService: interviewService,
		FeedbackService:  feedbackService,
		InterviewRepo:    interviewRepo,
	}
}

// GenerateInterview handles POST /interviews/generate. The returned session
// is client-held; the server keeps nothing between generation and feedback
// submission.
func (ic *InterviewController) GenerateInterview(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	session, err := ic.InterviewService.GenerateInterview(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitFeedback handles POST /interviews/feedback
func (ic *InterviewController) SubmitFeedback(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var session model.InterviewSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session payload"})
		return
	}

	report, err := ic.FeedbackService.EvaluateInterview(c.Request.Context(), uid, &session)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateInterview handles POST /interviews. Normally the feedback flow
// persists the summary itself; this direct path exists for clients that
// compute reports elsewhere. Duplicate session ids conflict.
func (ic *InterviewController) CreateInterview(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		ID                     string   `json:"id" binding:"required"`
		OverallScorePercentage float64  `json:"overall_score_percentage"`
		Strengths              []string `json:"strengths"`
		Weaknesses             []string `json:"weaknesses"`
		StudyPlanSummary       string   `json:"study_plan_summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if req.OverallScorePercentage < 0 || req.OverallScorePercentage > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "overall_score_percentage must be between 0 and 100"})
		return
	}

	interview := &model.Interview{
		ID:                     req.ID,
		UserID:                 uid,
		OverallScorePercentage: req.OverallScorePercentage,
		Strengths:              req.Strengths,
		Weaknesses:             req.Weaknesses,
		StudyPlanSummary:       req.StudyPlanSummary,
	}
	if err := ic.InterviewRepo.SaveInterview(interview); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

// GetPastInterviews handles GET /interviews
func (ic *InterviewController) GetPastInterviews(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	interviews, err := ic.InterviewRepo.GetInterviewsByUser(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interview history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": interviews})
}

// CheckInterviewExists handles GET /interviews/:id/exists
func (ic *InterviewController) CheckInterviewExists(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	exists, err := ic.InterviewRepo.InterviewExists(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check interview"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// DownloadReport handles GET /interviews/:id/report.pdf
func (ic *InterviewController) DownloadReport(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	interview, err := ic.InterviewRepo.GetInterviewByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if interview.UserID != uid {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		return
	}

	pdfContent, err := service.RenderInterviewPDF(interview)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=interview_report_"+interview.ID+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdfContent)
}
