package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"intervia-backend/internal/model"
)

func sampleSession(answers map[string]string) *model.InterviewSession {
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
						{
							ID:                    "q1",
							Type:                  model.QuestionTechnical,
							Text:                  "Explain goroutines.",
							KeywordsForEvaluation: []string{"scheduler", "lightweight"},
						},
					},
				},
				{
					Name:             "Aptitude",
					Type:             model.QuestionAptitudeMCQ,
					TimeLimitMinutes: 10,
					Questions: []model.Question{
						{
							ID:                "q2",
							Type:              model.QuestionAptitudeMCQ,
							Text:              "2 + 2 = ?",
							Options:           []string{"3", "4", "5"},
							CorrectAnswerText: "4",
						},
					},
				},
			},
		},
		Answers: answers,
	}
}

func TestBuildTranscriptUsesNoAnswerSentinel(t *testing.T) {
	transcript := BuildTranscript(sampleSession(map[string]string{}))

	// Every question is unanswered, so the sentinel appears once per question.
	assert.Equal(t, 2, strings.Count(transcript, NoAnswerSentinel))
}

func TestBuildTranscriptIncludesAnswersAndMCQDetails(t *testing.T) {
	transcript := BuildTranscript(sampleSession(map[string]string{
		"q1": "They are lightweight threads managed by the runtime scheduler.",
	}))

	assert.Contains(t, transcript, "Explain goroutines.")
	assert.Contains(t, transcript, "Candidate answer: They are lightweight threads")
	assert.Contains(t, transcript, "Evaluation keywords: scheduler, lightweight")
	assert.Contains(t, transcript, "Options: 3 | 4 | 5")
	assert.Contains(t, transcript, "Correct answer: 4")
	// q2 has no answer.
	assert.Contains(t, transcript, NoAnswerSentinel)
}

func TestBuildTranscriptTreatsEmptyAnswerAsMissing(t *testing.T) {
	transcript := BuildTranscript(sampleSession(map[string]string{"q1": ""}))
	assert.Equal(t, 2, strings.Count(transcript, NoAnswerSentinel))
}

func TestBuildEvaluationPromptShape(t *testing.T) {
	prompt := BuildEvaluationPrompt(sampleSession(map[string]string{"q1": "answer"}))

	assert.Contains(t, prompt, "Summary: Backend engineer")
	assert.Contains(t, prompt, "INTERVIEW TRANSCRIPT:")
	assert.Contains(t, prompt, "SCORING RULES:")
	assert.Contains(t, prompt, "overallScorePercentage")
	// sessionId is set by the caller, never requested from the model.
	assert.NotContains(t, prompt, "sessionId")
	assert.Contains(t, prompt, "single JSON object")
}
