package service

import (
	"context"
	"encoding/json"
	"fmt"

	"intervia-backend/internal/apperror"
	"intervia-backend/internal/config"
	"intervia-backend/internal/llm"
	"intervia-backend/internal/model"
	"intervia-backend/internal/prompts"
	"intervia-backend/internal/repository"
)

type FeedbackService interface {
	EvaluateInterview(ctx context.Context, userID string, session *model.InterviewSession) (*model.FullReport, error)
}

type feedbackService struct {
	interviewRepo repository.InterviewRepository
	llmClient     llm.Client
	temperature   float64
}

func NewFeedbackService(interviewRepo repository.InterviewRepository, llmClient llm.Client, cfg *config.APIConfig) FeedbackService {
	return &feedbackService{
		interviewRepo: interviewRepo,
		llmClient:     llmClient,
		temperature:   cfg.LLM.EvaluationTemperature,
	}
}

// EvaluateInterview scores a completed session and persists the summary
// record. Persistence is synchronous: if the write fails the whole call
// fails, even though the model call already succeeded.
func (s *feedbackService) EvaluateInterview(ctx context.Context, userID string, session *model.InterviewSession) (*model.FullReport, error) {
	if err := checkSessionComplete(session); err != nil {
		return nil, err
	}

	prompt := prompts.BuildEvaluationPrompt(session)

	raw, err := s.llmClient.Complete(ctx, prompt, s.temperature)
	if err != nil {
		return nil, fmt.Errorf("interview evaluation call failed: %w", err)
	}

	report, err := parseFullReport(raw)
	if err != nil {
		return nil, err
	}

	attachSessionContext(report, session)

	interview := &model.Interview{
		ID:                     report.SessionID,
		UserID:                 userID,
		OverallScorePercentage: report.OverallFeedback.OverallScorePercentage,
		Strengths:              report.OverallFeedback.Strengths,
		Weaknesses:             report.OverallFeedback.Weaknesses,
		StudyPlanSummary:       report.OverallFeedback.StudyPlanSummary,
	}
	if err := s.interviewRepo.SaveInterview(interview); err != nil {
		return nil, &apperror.PersistenceError{Op: "save interview report", Err: err}
	}

	return report, nil
}

// checkSessionComplete rejects incomplete payloads before any external call
// is made.
func checkSessionComplete(session *model.InterviewSession) error {
	if session == nil {
		return apperror.NewValidationError("session payload is required")
	}
	if len(session.InterviewStructure.Sections) == 0 {
		return apperror.NewValidationError("session is missing its interview structure")
	}
	if session.Answers == nil {
		return apperror.NewValidationError("session is missing its answers map")
	}
	if session.ResumeAnalysis.Summary == "" && len(session.ResumeAnalysis.Skills) == 0 {
		return apperror.NewValidationError("session is missing its resume analysis snapshot")
	}
	if session.SessionID == "" {
		return apperror.NewValidationError("session is missing its session id")
	}
	return nil
}

func parseFullReport(raw string) (*model.FullReport, error) {
	var report model.FullReport
	if err := json.Unmarshal([]byte(llm.CleanJSON(raw)), &report); err != nil {
		return nil, &apperror.SchemaValidationError{Stage: "parse", Err: err}
	}
	if err := validate.Struct(&report); err != nil {
		return nil, &apperror.SchemaValidationError{Stage: "validate", Err: err}
	}
	return &report, nil
}

// attachSessionContext enriches the model's evaluations with the literal
// question and answer text and stamps the session id. Purely local; never
// fails, substituting placeholders when the model references an unknown
// question id.
func attachSessionContext(report *model.FullReport, session *model.InterviewSession) {
	for i := range report.AnswerEvaluations {
		eval := &report.AnswerEvaluations[i]
		if q, ok := session.InterviewStructure.QuestionByID(eval.QuestionID); ok {
			eval.QuestionText = q.Text
		} else {
			eval.QuestionText = "Question not found"
		}
		if answer, ok := session.Answers[eval.QuestionID]; ok && answer != "" {
			eval.AnswerProvided = answer
		} else {
			eval.AnswerProvided = "N/A"
		}
	}
	report.SessionID = session.SessionID
}
