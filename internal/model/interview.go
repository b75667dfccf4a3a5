package model

import "time"

// Question types the generator is allowed to produce.
const (
	QuestionTechnical      = "technical"
	QuestionBehavioral     = "behavioral"
	QuestionProblemSolving = "problem-solving"
	QuestionTheoretical    = "theoretical"
	QuestionAptitudeMCQ    = "aptitude-mcq"
	QuestionBackground     = "background"
)

// Question is one generated interview question. Options and
// CorrectAnswerText are only meaningful for aptitude-mcq questions; for
// free-text questions CorrectAnswerText holds ideal-answer keywords.
type Question struct {
	ID                    string   `json:"id" validate:"required"`
	Type                  string   `json:"type" validate:"required,oneof=technical behavioral problem-solving theoretical aptitude-mcq background"`
	Text                  string   `json:"text" validate:"required"`
	Options               []string `json:"options,omitempty"`
	CorrectAnswerText     string   `json:"correctAnswerText,omitempty"`
	Topic                 string   `json:"topic,omitempty"`
	Difficulty            string   `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	KeywordsForEvaluation []string `json:"keywordsForEvaluation,omitempty"`
}

type InterviewSection struct {
	Name             string     `json:"name" validate:"required"`
	Type             string     `json:"type" validate:"required"`
	TimeLimitMinutes int        `json:"timeLimitMinutes" validate:"required,gt=0"`
	Questions        []Question `json:"questions" validate:"required,min=1,dive"`
}

// InterviewStructure is the ordered set of sections generated for one
// candidate profile.
type InterviewStructure struct {
	Sections []InterviewSection `json:"sections" validate:"required,min=1,dive"`
}

// QuestionByID scans all sections for a question id. First match wins.
func (s *InterviewStructure) QuestionByID(id string) (*Question, bool) {
	for i := range s.Sections {
		for j := range s.Sections[i].Questions {
			if s.Sections[i].Questions[j].ID == id {
				return &s.Sections[i].Questions[j], true
			}
		}
	}
	return nil, false
}

// QuestionCount returns the total number of questions across all sections.
func (s *InterviewStructure) QuestionCount() int {
	n := 0
	for i := range s.Sections {
		n += len(s.Sections[i].Questions)
	}
	return n
}

// InterviewSession is the client-held state of one interview attempt. The
// server never stores it; the client submits the whole value back for
// evaluation.
type InterviewSession struct {
	SessionID            string             `json:"sessionId"`
	ResumeAnalysis       ResumeAnalysis     `json:"resumeAnalysis"`
	InterviewStructure   InterviewStructure `json:"interviewStructure"`
	CurrentSectionIndex  int                `json:"currentSectionIndex"`
	CurrentQuestionIndex int                `json:"currentQuestionIndex"`
	Answers              map[string]string  `json:"answers"`
	StartTime            time.Time          `json:"startTime"`
	EndTime              *time.Time         `json:"endTime,omitempty"`
}

// AnswerEvaluation is the model's scoring of one answer. IsCorrect is only
// set for aptitude-mcq questions.
type AnswerEvaluation struct {
	QuestionID     string  `json:"questionId" validate:"required"`
	QuestionText   string  `json:"questionText,omitempty"`
	AnswerProvided string  `json:"answerProvided,omitempty"`
	Score          float64 `json:"score" validate:"gte=0,lte=5"`
	Feedback       string  `json:"feedback"`
	IsCorrect      *bool   `json:"isCorrect,omitempty"`
}

type ResourceLink struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url,omitempty"`
}

type ImprovementSuggestion struct {
	Area        string         `json:"area" validate:"required"`
	Suggestions []string       `json:"suggestions" validate:"required,min=1"`
	Resources   []ResourceLink `json:"resources,omitempty" validate:"omitempty,dive"`
}

type OverallFeedback struct {
	OverallScorePercentage float64                 `json:"overallScorePercentage" validate:"gte=0,lte=100"`
	Strengths              []string                `json:"strengths"`
	Weaknesses             []string                `json:"weaknesses"`
	ImprovementSuggestions []ImprovementSuggestion `json:"improvementSuggestions" validate:"omitempty,dive"`
	StudyPlanSummary       string                  `json:"studyPlanSummary"`
}

// FullReport is the complete evaluation of one session. Only a reduced
// summary of it is persisted; per-question evaluations live only in the
// response returned to the caller.
type FullReport struct {
	AnswerEvaluations []AnswerEvaluation `json:"answerEvaluations" validate:"required,min=1,dive"`
	OverallFeedback   OverallFeedback    `json:"overallFeedback"`
	SessionID         string             `json:"sessionId,omitempty"`
}
