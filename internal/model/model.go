package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList stores a []string as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// User mirrors a record from the external identity provider. The ID is the
// provider's canonical user id, not a locally generated one.
type User struct {
	ID               string    `json:"id" gorm:"primaryKey"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	AvatarURL        string    `json:"avatar_url"`
	ResumeAnalysisID *uint     `json:"resume_analysis_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ResumeAnalysis struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	UserID      string       `json:"user_id" gorm:"not null;uniqueIndex"`
	Summary     string       `json:"summary"`
	Skills      StringList   `json:"skills" gorm:"type:text"`
	Experiences []Experience `json:"experiences" gorm:"foreignKey:ResumeAnalysisID"`
	Education   []Education  `json:"education" gorm:"foreignKey:ResumeAnalysisID"`
	Projects    []Project    `json:"projects" gorm:"foreignKey:ResumeAnalysisID"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Experience struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	ResumeAnalysisID uint       `json:"resume_analysis_id"`
	JobTitle         string     `json:"job_title"`
	Company          string     `json:"company"`
	Duration         string     `json:"duration,omitempty"`
	Responsibilities StringList `json:"responsibilities" gorm:"type:text"`
}

type Education struct {
	ID               uint   `json:"id" gorm:"primaryKey"`
	ResumeAnalysisID uint   `json:"resume_analysis_id"`
	Degree           string `json:"degree"`
	Institution      string `json:"institution"`
	GraduationYear   string `json:"graduation_year,omitempty"`
}

type Project struct {
	ID               uint   `json:"id" gorm:"primaryKey"`
	ResumeAnalysisID uint   `json:"resume_analysis_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
}

// Interview is the persisted summary of one completed interview session.
// The primary key is the session id the report was generated for, so a
// second save of the same session is a key conflict rather than an update.
type Interview struct {
	ID                     string     `json:"id" gorm:"primaryKey"`
	UserID                 string     `json:"user_id" gorm:"not null;index"`
	OverallScorePercentage float64    `json:"overall_score_percentage"`
	Strengths              StringList `json:"strengths" gorm:"type:text"`
	Weaknesses             StringList `json:"weaknesses" gorm:"type:text"`
	StudyPlanSummary       string     `json:"study_plan_summary"`
	CreatedAt              time.Time  `json:"created_at"`
}
