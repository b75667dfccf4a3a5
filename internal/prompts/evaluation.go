package prompts

import (
	"fmt"
	"strings"

	"intervia-backend/internal/model"
)

// NoAnswerSentinel is what the transcript shows for questions the candidate
// never answered. The evaluation rubric tells the model to score these 0.
const NoAnswerSentinel = "No answer provided."

// fullReportFormat describes the JSON shape expected back from evaluation.
// The sessionId field is deliberately absent; the caller sets it after
// parsing.
const fullReportFormat = `{
  "answerEvaluations": [
    {
      "questionId": string (must match an id from the transcript),
      "score": number between 0 and 5,
      "feedback": string (specific, constructive),
      "isCorrect": boolean (only for aptitude-mcq questions)
    }
  ],
  "overallFeedback": {
    "overallScorePercentage": number between 0 and 100,
    "strengths": [string],
    "weaknesses": [string],
    "improvementSuggestions": [
      {
        "area": string,
        "suggestions": [string],
        "resources": [{"name": string, "url": string (optional)}] (optional; placeholder names are acceptable when you do not know a real resource)
      }
    ],
    "studyPlanSummary": string
  }
}`

const evaluationRubric = `SCORING RULES:
- Score every answer from 0 to 5.
- For aptitude-mcq questions: 5 if the answer exactly matches the correct option text, 0 otherwise. Set "isCorrect" accordingly.
- For all other questions: score by how well the answer covers the evaluation keywords and ideal concepts. An answer of "` + NoAnswerSentinel + `" scores 0.
- Aggregate the results into overallScorePercentage, strengths, weaknesses, one improvement suggestion per weakness, and a short study-plan summary.`

// BuildTranscript flattens a session into the transcript text the
// evaluation prompt embeds: every question in order, with its answer or the
// no-answer sentinel.
func BuildTranscript(session *model.InterviewSession) string {
	var b strings.Builder

	for _, section := range session.InterviewStructure.Sections {
		fmt.Fprintf(&b, "SECTION: %s (%s)\n", section.Name, section.Type)
		for _, q := range section.Questions {
			fmt.Fprintf(&b, "Question %s [%s]: %s\n", q.ID, q.Type, q.Text)
			if q.Type == model.QuestionAptitudeMCQ {
				fmt.Fprintf(&b, "Options: %s\n", strings.Join(q.Options, " | "))
				fmt.Fprintf(&b, "Correct answer: %s\n", q.CorrectAnswerText)
			}
			if len(q.KeywordsForEvaluation) > 0 {
				fmt.Fprintf(&b, "Evaluation keywords: %s\n", strings.Join(q.KeywordsForEvaluation, ", "))
			}
			answer, ok := session.Answers[q.ID]
			if !ok || answer == "" {
				answer = NoAnswerSentinel
			}
			fmt.Fprintf(&b, "Candidate answer: %s\n\n", answer)
		}
	}

	return b.String()
}

// BuildEvaluationPrompt assembles the full prompt for scoring a completed
// session.
func BuildEvaluationPrompt(session *model.InterviewSession) string {
	var b strings.Builder

	b.WriteString("You are an expert interviewer evaluating a candidate's mock interview answers.\n\n")
	b.WriteString("CANDIDATE PROFILE:\n")
	fmt.Fprintf(&b, "Summary: %s\n", session.ResumeAnalysis.Summary)
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(session.ResumeAnalysis.Skills, ", "))

	b.WriteString("\nINTERVIEW TRANSCRIPT:\n")
	b.WriteString(BuildTranscript(session))

	b.WriteString(evaluationRubric)
	b.WriteString("\n\nReturn your result as a structured JSON object in this format:\n\n")
	b.WriteString(fullReportFormat)
	b.WriteString("\n\nReturn only valid JSON. Do not include explanations, markdown fences, or text before or after the JSON.\n")
	b.WriteString("Your response must be a single JSON object.")

	return b.String()
}
