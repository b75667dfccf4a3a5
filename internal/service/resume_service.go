package service

import (
	"intervia-backend/internal/apperror"
	"intervia-backend/internal/model"
	"intervia-backend/internal/repository"
)

type ResumeService interface {
	CreateResumeAnalysis(userID string, analysis *model.ResumeAnalysis) (uint, error)
	UpdateResumeAnalysis(userID string, analysis *model.ResumeAnalysis) (uint, error)
	GetResumeAnalysis(userID string) (*model.ResumeAnalysis, error)
	CheckResumeExists(userID string) (bool, uint, error)
}

type resumeService struct {
	resumeRepo repository.ResumeRepository
	userRepo   repository.UserRepository
}

func NewResumeService(resumeRepo repository.ResumeRepository, userRepo repository.UserRepository) ResumeService {
	return &resumeService{
		resumeRepo: resumeRepo,
		userRepo:   userRepo,
	}
}

// CreateResumeAnalysis enforces the one-analysis-per-user invariant at the
// application layer. The existence check is a separate read before the
// write, so two racing first submissions can still both pass it; the unique
// index on user_id is the backstop.
func (s *resumeService) CreateResumeAnalysis(userID string, analysis *model.ResumeAnalysis) (uint, error) {
	exists, _, err := s.resumeRepo.ExistsForUser(userID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperror.ErrConflict
	}

	analysis.ID = 0
	analysis.UserID = userID
	if err := s.resumeRepo.CreateResumeAnalysis(analysis); err != nil {
		return 0, err
	}

	if err := s.userRepo.LinkResumeAnalysis(userID, analysis.ID); err != nil {
		return 0, err
	}
	return analysis.ID, nil
}

// UpdateResumeAnalysis fully replaces the stored analysis, children
// included. An update without an existing analysis is a not-found error.
func (s *resumeService) UpdateResumeAnalysis(userID string, analysis *model.ResumeAnalysis) (uint, error) {
	exists, id, err := s.resumeRepo.ExistsForUser(userID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperror.ErrNotFound
	}

	analysis.UserID = userID
	if err := s.resumeRepo.ReplaceResumeAnalysis(id, analysis); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *resumeService) GetResumeAnalysis(userID string) (*model.ResumeAnalysis, error) {
	return s.resumeRepo.GetByUserID(userID)
}

func (s *resumeService) CheckResumeExists(userID string) (bool, uint, error) {
	return s.resumeRepo.ExistsForUser(userID)
}
