package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intervia-backend/internal/apperror"
	"intervia-backend/internal/model"
)

type stubInterviewRepo struct {
	saved   []*model.Interview
	saveErr error
}

func (s *stubInterviewRepo) SaveInterview(interview *model.Interview) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	for _, existing := range s.saved {
		if existing.ID == interview.ID {
			return apperror.ErrConflict
		}
	}
	s.saved = append(s.saved, interview)
	return nil
}

func (s *stubInterviewRepo) InterviewExists(id string) (bool, error) {
	for _, existing := range s.saved {
		if existing.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubInterviewRepo) GetInterviewByID(id string) (*model.Interview, error) {
	for _, existing := range s.saved {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, apperror.ErrNotFound
}

func (s *stubInterviewRepo) GetInterviewsByUser(userID string) ([]model.Interview, error) {
	out := []model.Interview{}
	for _, existing := range s.saved {
		if existing.UserID == userID {
			out = append(out, *existing)
		}
	}
	return out, nil
}

func completedSession() *model.InterviewSession {
	return &model.InterviewSession{
		SessionID: "1700000000000-abcd1234",
		ResumeAnalysis: model.ResumeAnalysis{
			Summary: "Backend engineer",
			Skills:  model.StringList{"Go", "SQL"},
		},
		InterviewStructure: model.InterviewStructure{
			Sections: []model.InterviewSection{
				{
					Name:             "Technical",
					Type:             model.QuestionTechnical,
					TimeLimitMinutes: 15,
					Questions: []model.Question{
						{ID: "q1", Type: model.QuestionTechnical, Text: "Explain goroutines."},
						{ID: "q2", Type: model.QuestionAptitudeMCQ, Text: "2 + 2 = ?",
							Options: []string{"3", "4"}, CorrectAnswerText: "4"},
					},
				},
			},
		},
		Answers: map[string]string{"q1": "Lightweight threads."},
	}
}

const validReportJSON = `{
  "answerEvaluations": [
    {"questionId": "q1", "score": 4, "feedback": "Good depth."},
    {"questionId": "q2", "score": 0, "feedback": "Incorrect.", "isCorrect": false},
    {"questionId": "ghost", "score": 2, "feedback": "Hallucinated."}
  ],
  "overallFeedback": {
    "overallScorePercentage": 40,
    "strengths": ["Concurrency fundamentals"],
    "weaknesses": ["Arithmetic under pressure"],
    "improvementSuggestions": [
      {"area": "Aptitude", "suggestions": ["Practice timed quizzes"], "resources": [{"name": "Sample Quiz Site"}]}
    ],
    "studyPlanSummary": "Revise basics weekly."
  }
}`

func TestEvaluateInterviewHappyPath(t *testing.T) {
	llmStub := &stubLLM{response: validReportJSON}
	repo := &stubInterviewRepo{}
	svc := NewFeedbackService(repo, llmStub, testConfig())

	report, err := svc.EvaluateInterview(context.Background(), "user_1", completedSession())
	require.NoError(t, err)

	assert.Equal(t, 1, llmStub.calls)
	assert.InDelta(t, 0.3, llmStub.lastTemp, 0.001)

	assert.Equal(t, "1700000000000-abcd1234", report.SessionID)
	require.Len(t, report.AnswerEvaluations, 3)

	// Enrichment: real question text and answer text attached locally.
	assert.Equal(t, "Explain goroutines.", report.AnswerEvaluations[0].QuestionText)
	assert.Equal(t, "Lightweight threads.", report.AnswerEvaluations[0].AnswerProvided)
	assert.Equal(t, "2 + 2 = ?", report.AnswerEvaluations[1].QuestionText)
	assert.Equal(t, "N/A", report.AnswerEvaluations[1].AnswerProvided)

	// Unknown ids never crash post-processing, they get placeholders.
	assert.Equal(t, "Question not found", report.AnswerEvaluations[2].QuestionText)
	assert.Equal(t, "N/A", report.AnswerEvaluations[2].AnswerProvided)

	// The reduced summary was persisted.
	require.Len(t, repo.saved, 1)
	saved := repo.saved[0]
	assert.Equal(t, report.SessionID, saved.ID)
	assert.Equal(t, "user_1", saved.UserID)
	assert.InDelta(t, 40, saved.OverallScorePercentage, 0.001)
	assert.Equal(t, model.StringList{"Concurrency fundamentals"}, saved.Strengths)
	assert.Equal(t, "Revise basics weekly.", saved.StudyPlanSummary)
}

func TestEvaluateInterviewIncompleteSessionFailsFast(t *testing.T) {
	llmStub := &stubLLM{response: validReportJSON}
	svc := NewFeedbackService(&stubInterviewRepo{}, llmStub, testConfig())

	noStructure := completedSession()
	noStructure.InterviewStructure.Sections = nil

	noAnswers := completedSession()
	noAnswers.Answers = nil

	noResume := completedSession()
	noResume.ResumeAnalysis = model.ResumeAnalysis{}

	noID := completedSession()
	noID.SessionID = ""

	for name, session := range map[string]*model.InterviewSession{
		"nil session":  nil,
		"no structure": noStructure,
		"no answers":   noAnswers,
		"no resume":    noResume,
		"no id":        noID,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.EvaluateInterview(context.Background(), "user_1", session)
			require.Error(t, err)
			var validationErr *apperror.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	// Fail-fast means the completion service was never called.
	assert.Zero(t, llmStub.calls)
}

func TestEvaluateInterviewEmptyAnswersStillProducesReport(t *testing.T) {
	llmStub := &stubLLM{response: validReportJSON}
	svc := NewFeedbackService(&stubInterviewRepo{}, llmStub, testConfig())

	session := completedSession()
	session.Answers = map[string]string{}

	report, err := svc.EvaluateInterview(context.Background(), "user_1", session)
	require.NoError(t, err)
	for _, eval := range report.AnswerEvaluations {
		assert.Equal(t, "N/A", eval.AnswerProvided)
	}
}

func TestEvaluateInterviewSchemaFailure(t *testing.T) {
	svc := NewFeedbackService(&stubInterviewRepo{}, &stubLLM{response: "no json here"}, testConfig())

	_, err := svc.EvaluateInterview(context.Background(), "user_1", completedSession())
	require.Error(t, err)
	var schemaErr *apperror.SchemaValidationError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestEvaluateInterviewOutOfRangeScoreRejected(t *testing.T) {
	bad := `{"answerEvaluations":[{"questionId":"q1","score":9,"feedback":"!"}],
	 "overallFeedback":{"overallScorePercentage":40,"strengths":[],"weaknesses":[],"studyPlanSummary":"x"}}`
	svc := NewFeedbackService(&stubInterviewRepo{}, &stubLLM{response: bad}, testConfig())

	_, err := svc.EvaluateInterview(context.Background(), "user_1", completedSession())
	require.Error(t, err)
	var schemaErr *apperror.SchemaValidationError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestEvaluateInterviewPersistenceFailureDiscardsReport(t *testing.T) {
	repo := &stubInterviewRepo{saveErr: errors.New("connection reset")}
	svc := NewFeedbackService(repo, &stubLLM{response: validReportJSON}, testConfig())

	report, err := svc.EvaluateInterview(context.Background(), "user_1", completedSession())
	require.Error(t, err)
	assert.Nil(t, report)
	var persistErr *apperror.PersistenceError
	assert.ErrorAs(t, err, &persistErr)
}

func TestEvaluateInterviewDuplicateSessionConflicts(t *testing.T) {
	repo := &stubInterviewRepo{}
	svc := NewFeedbackService(repo, &stubLLM{response: validReportJSON}, testConfig())

	_, err := svc.EvaluateInterview(context.Background(), "user_1", completedSession())
	require.NoError(t, err)

	_, err = svc.EvaluateInterview(context.Background(), "user_1", completedSession())
	require.Error(t, err)
	var persistErr *apperror.PersistenceError
	assert.ErrorAs(t, err, &persistErr)
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Len(t, repo.saved, 1)
}
