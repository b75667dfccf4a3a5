// Package prompts holds the templates sent to the completion service and
// the helpers that flatten a candidate profile into prompt text.
package prompts

import (
	"fmt"
	"strings"

	"intervia-backend/internal/model"
)

// interviewStructureFormat describes the exact JSON shape the generator
// expects back. Kept in sync with model.InterviewStructure by hand.
const interviewStructureFormat = `{
  "sections": [
    {
      "name": string,
      "type": string,
      "timeLimitMinutes": number (positive integer),
      "questions": [
        {
          "id": string (unique within the whole interview),
          "type": one of "technical" | "behavioral" | "problem-solving" | "theoretical" | "aptitude-mcq" | "background",
          "text": string,
          "options": [string] (only for aptitude-mcq, 3-4 options),
          "correctAnswerText": string (exact correct option text for aptitude-mcq; ideal-answer keywords otherwise),
          "topic": string (optional),
          "difficulty": one of "easy" | "medium" | "hard" (optional),
          "keywordsForEvaluation": [string] (optional)
        }
      ]
    }
  ]
}`

const generationInstructions = `Create a tailored mock interview for this candidate with these sections, in this order:
1. Background: 2-3 questions about the candidate's own experience and projects.
2. Technical: 5-7 questions grounded in the candidate's listed skills.
3. Problem-Solving: 1-2 scenario questions.
4. Behavioral: 3-4 STAR-style questions.
5. Aptitude: 3-5 multiple-choice questions (type "aptitude-mcq"), each with 3-4 options and exactly one correct option text.
The time limits of all sections together should not exceed 60 minutes.`

// BuildGenerationPrompt assembles the full prompt for interview generation
// from a stored resume analysis.
func BuildGenerationPrompt(analysis *model.ResumeAnalysis) string {
	var b strings.Builder

	b.WriteString("You are an expert technical interviewer preparing a mock interview for a job candidate.\n\n")
	b.WriteString("CANDIDATE PROFILE:\n")
	fmt.Fprintf(&b, "Summary: %s\n", analysis.Summary)
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(analysis.Skills, ", "))
	fmt.Fprintf(&b, "Experience: %s\n", ExperienceHighlights(analysis.Experiences))
	fmt.Fprintf(&b, "Education: %s\n", DegreeNames(analysis.Education))
	fmt.Fprintf(&b, "Projects: %s\n", ProjectNames(analysis.Projects))

	b.WriteString("\n")
	b.WriteString(generationInstructions)
	b.WriteString("\n\nReturn your result as a structured JSON object in this format:\n\n")
	b.WriteString(interviewStructureFormat)
	b.WriteString("\n\nReturn only valid JSON. Do not include explanations, markdown fences, or text before or after the JSON.\n")
	b.WriteString("Do not add keys that are not in the format above. Your response must be a single JSON object.")

	return b.String()
}

// ExperienceHighlights renders "title at company" pairs, semicolon-joined.
func ExperienceHighlights(experiences []model.Experience) string {
	if len(experiences) == 0 {
		return "None listed"
	}
	parts := make([]string, 0, len(experiences))
	for _, e := range experiences {
		parts = append(parts, fmt.Sprintf("%s at %s", e.JobTitle, e.Company))
	}
	return strings.Join(parts, "; ")
}

// DegreeNames renders degree names, semicolon-joined.
func DegreeNames(education []model.Education) string {
	if len(education) == 0 {
		return "None listed"
	}
	parts := make([]string, 0, len(education))
	for _, e := range education {
		parts = append(parts, e.Degree)
	}
	return strings.Join(parts, "; ")
}

// ProjectNames renders project names, semicolon-joined.
func ProjectNames(projects []model.Project) string {
	if len(projects) == 0 {
		return "None listed"
	}
	parts := make([]string, 0, len(projects))
	for _, p := range projects {
		parts = append(parts, p.Name)
	}
	return strings.Join(parts, "; ")
}
