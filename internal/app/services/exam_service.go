package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/app/repositories"
	"github.com/yigit/examport/internal/pkg/apperrors"
)

// ExamService handles exam lifecycle operations
type ExamService struct {
	examRepo   repositories.IExamRepository
	courseRepo repositories.ICourseRepository
}

// NewExamService creates a new exam service instance
func NewExamService(examRepo repositories.IExamRepository, courseRepo repositories.ICourseRepository) *ExamService {
	return &ExamService{
		examRepo:   examRepo,
		courseRepo: courseRepo,
	}
}

func validateAvailabilityWindow(from, to *time.Time) error {
	if from != nil && to != nil && to.Before(*from) {
		return fmt.Errorf("%w: availableTo must not precede availableFrom", apperrors.ErrValidationFailed)
	}
	return nil
}

// Create creates a new exam under an existing course. The exam starts
// unpublished and active unless the request says otherwise.
func (s *ExamService) Create(ctx context.Context, req *dto.CreateExamRequest, createdBy int64) (*models.Exam, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: exam name is required", apperrors.ErrValidationFailed)
	}
	if err := validateAvailabilityWindow(req.AvailableFrom, req.AvailableTo); err != nil {
		return nil, err
	}
	if createdBy <= 0 {
		return nil, fmt.Errorf("%w: exam creator is required", apperrors.ErrValidationFailed)
	}

	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	exam := &models.Exam{
		CourseID:         req.CourseID,
		Name:             name,
		Description:      req.Description,
		TimeLimitMinutes: req.TimeLimitMinutes,
		AvailableFrom:    req.AvailableFrom,
		AvailableTo:      req.AvailableTo,
		CreatedBy:        createdBy,
		IsActive:         true,
		IPRestriction:    req.IPRestriction,
		ShowResultsAfter: req.ShowResultsAfter,
	}
	if req.IsPublished != nil {
		exam.IsPublished = *req.IsPublished
	}
	if req.IsActive != nil {
		exam.IsActive = *req.IsActive
	}
	if req.BrowserLockdown != nil {
		exam.BrowserLockdown = *req.BrowserLockdown
	}
	if req.ShowResultsImmediately != nil {
		exam.ShowResultsImmediately = *req.ShowResultsImmediately
	}

	if err := s.examRepo.Create(ctx, exam); err != nil {
		return nil, err
	}

	return exam, nil
}

// GetByID retrieves an exam by ID
func (s *ExamService) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}
	return s.examRepo.GetByID(ctx, id)
}

// GetByCourse retrieves all exams of a course, published or not
func (s *ExamService) GetByCourse(ctx context.Context, courseID int64) ([]*models.Exam, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.examRepo.GetByCourse(ctx, courseID)
}

// GetByCreator retrieves exams created by the given user
func (s *ExamService) GetByCreator(ctx context.Context, userID int64) ([]*models.Exam, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	return s.examRepo.GetByCreator(ctx, userID)
}

// GetAvailableForStudent retrieves the exams of a course that are currently
// open to students: published, active, and inside their availability window.
func (s *ExamService) GetAvailableForStudent(ctx context.Context, courseID int64) ([]*models.Exam, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.examRepo.GetAvailableForStudent(ctx, courseID, time.Now())
}

// Publish marks an exam visible to students
func (s *ExamService) Publish(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}
	return s.examRepo.Publish(ctx, id)
}

// Update merges the provided fields into the stored exam. The owning
// course and the creator are fixed at creation time.
func (s *ExamService) Update(ctx context.Context, id int64, req *dto.UpdateExamRequest) (*models.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		return exam, nil
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: exam name cannot be empty", apperrors.ErrValidationFailed)
		}
		exam.Name = name
	}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.TimeLimitMinutes != nil {
		exam.TimeLimitMinutes = req.TimeLimitMinutes
	}
	if req.AvailableFrom != nil {
		exam.AvailableFrom = req.AvailableFrom
	}
	if req.AvailableTo != nil {
		exam.AvailableTo = req.AvailableTo
	}
	if err := validateAvailabilityWindow(exam.AvailableFrom, exam.AvailableTo); err != nil {
		return nil, err
	}
	if req.IsPublished != nil {
		exam.IsPublished = *req.IsPublished
	}
	if req.IsActive != nil {
		exam.IsActive = *req.IsActive
	}
	if req.IPRestriction != nil {
		exam.IPRestriction = req.IPRestriction
	}
	if req.BrowserLockdown != nil {
		exam.BrowserLockdown = *req.BrowserLockdown
	}
	if req.ShowResultsImmediately != nil {
		exam.ShowResultsImmediately = *req.ShowResultsImmediately
	}
	if req.ShowResultsAfter != nil {
		exam.ShowResultsAfter = req.ShowResultsAfter
	}

	if err := s.examRepo.Update(ctx, exam); err != nil {
		return nil, err
	}

	return exam, nil
}

// Delete soft-deletes the exam; its questions stay in place
func (s *ExamService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}
	return s.examRepo.SoftDelete(ctx, id)
}
