package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"intervia-backend/internal/apperror"
	"intervia-backend/internal/config"
	"intervia-backend/internal/llm"
	"intervia-backend/internal/model"
	"intervia-backend/internal/prompts"
)

type ExtractionService interface {
	ExtractResumeText(filename string, data []byte) (string, error)
	AnalyzeResumeText(ctx context.Context, resumeText string) (*model.ResumeAnalysis, error)
}

type extractionService struct {
	llmClient   llm.Client
	temperature float64
}

func NewExtractionService(llmClient llm.Client, cfg *config.APIConfig) ExtractionService {
	return &extractionService{
		llmClient: llmClient,
		// structuring wants consistency, reuse the evaluation temperature
		temperature: cfg.LLM.EvaluationTemperature,
	}
}

// ExtractResumeText pulls plain text out of an uploaded resume file. The
// format is picked from the file extension.
func (s *extractionService) ExtractResumeText(filename string, data []byte) (string, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".txt"):
		return string(data), nil
	case strings.HasSuffix(lower, ".pdf"):
		return extractPDFText(data)
	case strings.HasSuffix(lower, ".docx"):
		return extractDocxText(data)
	default:
		return "", apperror.NewValidationError("unsupported resume file type: %s", filename)
	}
}

// AnalyzeResumeText asks the model to structure raw resume text into an
// analysis draft. The draft is returned to the caller unsaved; the client
// reviews it and submits it through the normal create path.
func (s *extractionService) AnalyzeResumeText(ctx context.Context, resumeText string) (*model.ResumeAnalysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, apperror.NewValidationError("resume text is empty")
	}

	prompt := prompts.BuildResumeExtractionPrompt(resumeText)
	raw, err := s.llmClient.Complete(ctx, prompt, s.temperature)
	if err != nil {
		return nil, fmt.Errorf("resume analysis call failed: %w", err)
	}

	var analysis model.ResumeAnalysis
	if err := json.Unmarshal([]byte(llm.CleanJSON(raw)), &analysis); err != nil {
		return nil, &apperror.SchemaValidationError{Stage: "parse", Err: err}
	}
	if analysis.Summary == "" && len(analysis.Skills) == 0 {
		return nil, &apperror.SchemaValidationError{Stage: "validate", Err: fmt.Errorf("analysis draft has no summary and no skills")}
	}
	return &analysis, nil
}

func extractPDFText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	doc, err := docx.ReadDocxFromMemory(reader, int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
