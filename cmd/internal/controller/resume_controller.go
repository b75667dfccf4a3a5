package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"intervia-backend/internal/model"
	"intervia-backend/internal/service"
)

// Uploads beyond this are rejected before extraction.
const maxResumeUploadBytes = 5 << 20

type ResumeController struct {
	ResumeService     service.ResumeService
	ExtractionService service.ExtractionService
}

func NewResumeController(resumeService service.ResumeService, extractionService service.ExtractionService) *ResumeController {
	return &ResumeController{
		ResumeService:     resumeService,
		ExtractionService: extractionService,
	}
}

// CreateResumeAnalysis handles POST /resumes
func (rc *ResumeController) CreateResumeAnalysis(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var analysis model.ResumeAnalysis
	if err := c.ShouldBindJSON(&analysis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	resumeID, err := rc.ResumeService.CreateResumeAnalysis(uid, &analysis)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"resume_id": resumeID,
		"message":   "Resume analysis created successfully",
	})
}

// UpdateResumeAnalysis handles PUT /resumes
func (rc *ResumeController) UpdateResumeAnalysis(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	var analysis model.ResumeAnalysis
	if err := c.ShouldBindJSON(&analysis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	resumeID, err := rc.ResumeService.UpdateResumeAnalysis(uid, &analysis)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"resume_id": resumeID,
		"message":   "Resume analysis updated successfully",
	})
}

// GetResumeAnalysis handles GET /resumes
func (rc *ResumeController) GetResumeAnalysis(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	analysis, err := rc.ResumeService.GetResumeAnalysis(uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// CheckResumeExists handles GET /resumes/exists
func (rc *ResumeController) CheckResumeExists(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		return
	}

	exists, resumeID, err := rc.ResumeService.CheckResumeExists(uid)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{"exists": exists}
	if exists {
		resp["resume_id"] = resumeID
	}
	c.JSON(http.StatusOK, resp)
}

// ExtractResume handles POST /resumes/extract. The uploaded file is turned
// into an analysis draft and returned unsaved; the client submits it
// through POST /resumes once reviewed.
func (rc *ResumeController) ExtractResume(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing resume file"})
		return
	}
	if fileHeader.Size > maxResumeUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read resume file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read resume file"})
		return
	}

	text, err := rc.ExtractionService.ExtractResumeText(fileHeader.Filename, data)
	if err != nil {
		respondError(c, err)
		return
	}

	draft, err := rc.ExtractionService.AnalyzeResumeText(c.Request.Context(), text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}
