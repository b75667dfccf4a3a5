package repository

import (
	"errors"

	"gorm.io/gorm"

	"intervia-backend/internal/apperror"
	"intervia-backend/internal/db"
	"intervia-backend/internal/model"
)

type ResumeRepository interface {
	CreateResumeAnalysis(analysis *model.ResumeAnalysis) error
	ReplaceResumeAnalysis(id uint, analysis *model.ResumeAnalysis) error
	GetByUserID(userID string) (*model.ResumeAnalysis, error)
	ExistsForUser(userID string) (bool, uint, error)
}

type resumeRepository struct{}

func NewResumeRepository() ResumeRepository {
	return &resumeRepository{}
}

func (r *resumeRepository) CreateResumeAnalysis(analysis *model.ResumeAnalysis) error {
	return db.GetDB().Create(analysis).Error
}

// ReplaceResumeAnalysis rewrites the parent row and all child collections
// in one transaction. Existing experience/education/project rows are
// deleted and recreated from the input; edits are full snapshots, not
// diffs, so child row ids do not survive an update.
func (r *resumeRepository) ReplaceResumeAnalysis(id uint, analysis *model.ResumeAnalysis) error {
	executor := db.NewQueryExecutor(db.GetDB())
	return executor.Transaction(func(tx *gorm.DB) error {
		var existing model.ResumeAnalysis
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.ErrNotFound
			}
			return err
		}

		if err := tx.Where("resume_analysis_id = ?", id).Delete(&model.Experience{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resume_analysis_id = ?", id).Delete(&model.Education{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resume_analysis_id = ?", id).Delete(&model.Project{}).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"summary": analysis.Summary,
			"skills":  analysis.Skills,
		}
		if err := tx.Model(&model.ResumeAnalysis{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		for i := range analysis.Experiences {
			analysis.Experiences[i].ID = 0
			analysis.Experiences[i].ResumeAnalysisID = id
			if err := tx.Create(&analysis.Experiences[i]).Error; err != nil {
				return err
			}
		}
		for i := range analysis.Education {
			analysis.Education[i].ID = 0
			analysis.Education[i].ResumeAnalysisID = id
			if err := tx.Create(&analysis.Education[i]).Error; err != nil {
				return err
			}
		}
		for i := range analysis.Projects {
			analysis.Projects[i].ID = 0
			analysis.Projects[i].ResumeAnalysisID = id
			if err := tx.Create(&analysis.Projects[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *resumeRepository) GetByUserID(userID string) (*model.ResumeAnalysis, error) {
	var analysis model.ResumeAnalysis
	err := db.GetDB().
		Preload("Experiences").
		Preload("Education").
		Preload("Projects").
		Where("user_id = ?", userID).
		First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

func (r *resumeRepository) ExistsForUser(userID string) (bool, uint, error) {
	var analysis model.ResumeAnalysis
	err := db.GetDB().Select("id").Where("user_id = ?", userID).First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, analysis.ID, nil
}
