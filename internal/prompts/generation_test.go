package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"intervia-backend/internal/model"
)

func sampleAnalysis() *model.ResumeAnalysis {
	return &model.ResumeAnalysis{
		Summary: "Backend engineer",
		Skills:  model.StringList{"Go", "SQL"},
		Experiences: []model.Experience{
			{JobTitle: "Software Engineer", Company: "Acme"},
			{JobTitle: "Intern", Company: "Initech"},
		},
		Education: []model.Education{
			{Degree: "BSc Computer Science", Institution: "State University"},
		},
		Projects: []model.Project{
			{Name: "Inventory Service", Description: "Warehouse tracking"},
		},
	}
}

func TestBuildGenerationPromptEmbedsProfile(t *testing.T) {
	prompt := BuildGenerationPrompt(sampleAnalysis())

	assert.Contains(t, prompt, "Summary: Backend engineer")
	assert.Contains(t, prompt, "Skills: Go, SQL")
	assert.Contains(t, prompt, "Software Engineer at Acme; Intern at Initech")
	assert.Contains(t, prompt, "BSc Computer Science")
	assert.Contains(t, prompt, "Inventory Service")
}

func TestBuildGenerationPromptCarriesStructuralPolicy(t *testing.T) {
	prompt := BuildGenerationPrompt(sampleAnalysis())

	assert.Contains(t, prompt, "2-3 questions")
	assert.Contains(t, prompt, "5-7 questions")
	assert.Contains(t, prompt, "STAR-style")
	assert.Contains(t, prompt, "aptitude-mcq")
	assert.Contains(t, prompt, "60 minutes")
	assert.Contains(t, prompt, "single JSON object")
	assert.Contains(t, prompt, "markdown")
}

func TestExperienceHighlightsJoining(t *testing.T) {
	assert.Equal(t, "None listed", ExperienceHighlights(nil))

	highlights := ExperienceHighlights([]model.Experience{
		{JobTitle: "Dev", Company: "A"},
		{JobTitle: "Lead", Company: "B"},
	})
	assert.Equal(t, "Dev at A; Lead at B", highlights)
	assert.Equal(t, 1, strings.Count(highlights, ";"))
}

func TestDegreeAndProjectJoining(t *testing.T) {
	assert.Equal(t, "None listed", DegreeNames(nil))
	assert.Equal(t, "None listed", ProjectNames(nil))

	assert.Equal(t, "BSc; MSc", DegreeNames([]model.Education{{Degree: "BSc"}, {Degree: "MSc"}}))
	assert.Equal(t, "One; Two", ProjectNames([]model.Project{{Name: "One"}, {Name: "Two"}}))
}
