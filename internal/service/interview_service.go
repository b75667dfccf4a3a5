package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"intervia-backend/internal/apperror"
	"intervia-backend/internal/config"
	"intervia-backend/internal/llm"
	"intervia-backend/internal/model"
	"intervia-backend/internal/prompts"
	"intervia-backend/internal/repository"
)

// Shared validator for model output. Struct tags on the wire types carry
// the schema rules.
var validate = validator.New()

type InterviewService interface {
	GenerateInterview(ctx context.Context, userID string) (*model.InterviewSession, error)
}

type interviewService struct {
	resumeRepo  repository.ResumeRepository
	llmClient   llm.Client
	temperature float64
}

func NewInterviewService(resumeRepo repository.ResumeRepository, llmClient llm.Client, cfg *config.APIConfig) InterviewService {
	return &interviewService{
		resumeRepo:  resumeRepo,
		llmClient:   llmClient,
		temperature: cfg.LLM.GenerationTemperature,
	}
}

// GenerateInterview builds a tailored interview from the caller's stored
// resume analysis and wraps it into a fresh client-held session. Nothing is
// persisted; the client is the sole holder of the session until it submits
// it for evaluation.
func (s *interviewService) GenerateInterview(ctx context.Context, userID string) (*model.InterviewSession, error) {
	analysis, err := s.resumeRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	prompt := prompts.BuildGenerationPrompt(analysis)

	raw, err := s.llmClient.Complete(ctx, prompt, s.temperature)
	if err != nil {
		return nil, fmt.Errorf("interview generation call failed: %w", err)
	}

	structure, err := parseInterviewStructure(raw)
	if err != nil {
		return nil, err
	}

	session := &model.InterviewSession{
		SessionID:            newSessionID(),
		ResumeAnalysis:       *analysis,
		InterviewStructure:   *structure,
		CurrentSectionIndex:  0,
		CurrentQuestionIndex: 0,
		Answers:              map[string]string{},
		StartTime:            time.Now(),
	}
	return session, nil
}

// parseInterviewStructure is a strict deserialize-then-validate step. Any
// mismatch is a hard failure; there is no repair or re-prompt.
func parseInterviewStructure(raw string) (*model.InterviewStructure, error) {
	var structure model.InterviewStructure
	if err := json.Unmarshal([]byte(llm.CleanJSON(raw)), &structure); err != nil {
		return nil, &apperror.SchemaValidationError{Stage: "parse", Err: err}
	}
	if err := validate.Struct(&structure); err != nil {
		return nil, &apperror.SchemaValidationError{Stage: "validate", Err: err}
	}
	return &structure, nil
}

// newSessionID derives a session id from the generation time plus a short
// random suffix. Collision avoidance only, not cryptographic uniqueness.
func newSessionID() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
