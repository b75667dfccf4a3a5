package prompts

import (
	"fmt"
	"strings"
)

// resumeAnalysisFormat mirrors model.ResumeAnalysis minus the generated ids.
const resumeAnalysisFormat = `{
  "summary": string (2-3 sentence professional summary),
  "skills": [string],
  "experiences": [
    {
      "job_title": string,
      "company": string,
      "duration": string (optional),
      "responsibilities": [string]
    }
  ],
  "education": [
    {
      "degree": string,
      "institution": string,
      "graduation_year": string (optional)
    }
  ],
  "projects": [
    {
      "name": string,
      "description": string
    }
  ]
}`

// BuildResumeExtractionPrompt asks the model to structure raw resume text
// into an analysis draft.
func BuildResumeExtractionPrompt(resumeText string) string {
	var b strings.Builder

	b.WriteString("You are an expert resume analyst. Extract a structured analysis from the resume text below.\n")
	b.WriteString("Base everything only on the provided text. Do not invent experience, skills or education that are not explicitly mentioned.\n\n")
	b.WriteString("RESUME TEXT:\n")
	fmt.Fprintf(&b, "%s\n\n", resumeText)
	b.WriteString("Return your result as a structured JSON object in this format:\n\n")
	b.WriteString(resumeAnalysisFormat)
	b.WriteString("\n\nReturn only valid JSON. Do not include explanations, markdown fences, or text before or after the JSON.\n")
	b.WriteString("Your response must be a single JSON object.")

	return b.String()
}
