package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"intervia-backend/internal/apperror"
	"intervia-backend/internal/db"
	"intervia-backend/internal/db/query"
	"intervia-backend/internal/model"
)

type InterviewRepository interface {
	SaveInterview(interview *model.Interview) error
	InterviewExists(id string) (bool, error)
	GetInterviewByID(id string) (*model.Interview, error)
	GetInterviewsByUser(userID string) ([]model.Interview, error)
}

type interviewRepository struct{}

func NewInterviewRepository() InterviewRepository {
	return &interviewRepository{}
}

// SaveInterview writes one new summary record. A second save for the same
// session id is a conflict, never a silent overwrite.
func (r *interviewRepository) SaveInterview(interview *model.Interview) error {
	executor := db.NewQueryExecutor(db.GetDB())
	exists, err := executor.Exists("interviews", map[string]interface{}{"id": interview.ID})
	if err != nil {
		return err
	}
	if exists {
		return apperror.ErrConflict
	}
	return db.GetDB().Create(interview).Error
}

func (r *interviewRepository) InterviewExists(id string) (bool, error) {
	executor := db.NewQueryExecutor(db.GetDB())
	return executor.Exists("interviews", map[string]interface{}{"id": id})
}

func (r *interviewRepository) GetInterviewByID(id string) (*model.Interview, error) {
	var interview model.Interview
	err := db.GetDB().Where("id = ?", id).First(&interview).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &interview, nil
}

// GetInterviewsByUser returns history summaries newest first. The score
// column comes back in whatever representation the driver picked, so it is
// coerced to a plain float64 on the way out.
func (r *interviewRepository) GetInterviewsByUser(userID string) ([]model.Interview, error) {
	sql, args := query.NewQueryBuilder().
		Select("id", "user_id", "overall_score_percentage", "strengths", "weaknesses", "study_plan_summary", "created_at").
		From("interviews").
		Where("user_id = ?", userID).
		OrderBy("created_at DESC").
		Build()

	executor := db.NewQueryExecutor(db.GetDB())
	rows, err := executor.Select(sql, args...)
	if err != nil {
		return nil, err
	}

	interviews := make([]model.Interview, 0, len(rows))
	for _, row := range rows {
		interview := model.Interview{
			ID:                     asString(row["id"]),
			UserID:                 asString(row["user_id"]),
			OverallScorePercentage: coerceScore(row["overall_score_percentage"]),
			StudyPlanSummary:       asString(row["study_plan_summary"]),
		}
		if err := interview.Strengths.Scan(row["strengths"]); err != nil {
			return nil, fmt.Errorf("bad strengths column for interview %s: %w", interview.ID, err)
		}
		if err := interview.Weaknesses.Scan(row["weaknesses"]); err != nil {
			return nil, fmt.Errorf("bad weaknesses column for interview %s: %w", interview.ID, err)
		}
		if t, ok := row["created_at"].(time.Time); ok {
			interview.CreatedAt = t
		}
		interviews = append(interviews, interview)
	}
	return interviews, nil
}

// coerceScore normalizes the driver's numeric representation to float64.
func coerceScore(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case []byte:
		f, _ := strconv.ParseFloat(string(n), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return ""
	}
}
