package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/app/repositories"
	"github.com/yigit/examport/internal/pkg/apperrors"
)

// QuestionService handles question and answer option operations
type QuestionService struct {
	questionRepo repositories.IQuestionRepository
	examRepo     repositories.IExamRepository
}

// NewQuestionService creates a new question service instance
func NewQuestionService(questionRepo repositories.IQuestionRepository, examRepo repositories.IExamRepository) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		examRepo:     examRepo,
	}
}

// Create creates a new question under an existing exam
func (s *QuestionService) Create(ctx context.Context, req *dto.CreateQuestionRequest) (*models.Question, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: question text is required", apperrors.ErrValidationFailed)
	}
	if !req.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown question type %q", apperrors.ErrValidationFailed, req.Type)
	}
	if req.Points <= 0 {
		return nil, fmt.Errorf("%w: points must be positive", apperrors.ErrValidationFailed)
	}

	if _, err := s.examRepo.GetByID(ctx, req.ExamID); err != nil {
		return nil, err
	}

	question := &models.Question{
		ExamID:       req.ExamID,
		Text:         text,
		Type:         req.Type,
		Points:       req.Points,
		DisplayOrder: req.DisplayOrder,
		MediaURL:     req.MediaURL,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// GetByID retrieves a question without its options
func (s *QuestionService) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid question ID", apperrors.ErrValidationFailed)
	}
	return s.questionRepo.GetByID(ctx, id)
}

// GetWithOptions retrieves a question with its options ordered for display
func (s *QuestionService) GetWithOptions(ctx context.Context, id int64) (*models.Question, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid question ID", apperrors.ErrValidationFailed)
	}
	return s.questionRepo.GetWithOptions(ctx, id)
}

// GetByExam retrieves the questions of an exam in display order
func (s *QuestionService) GetByExam(ctx context.Context, examID int64) ([]*models.Question, error) {
	if examID <= 0 {
		return nil, fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}
	return s.questionRepo.GetByExam(ctx, examID)
}

// GetByExamWithOptions retrieves the questions of an exam with their options
func (s *QuestionService) GetByExamWithOptions(ctx context.Context, examID int64) ([]*models.Question, error) {
	if examID <= 0 {
		return nil, fmt.Errorf("%w: invalid exam ID", apperrors.ErrValidationFailed)
	}
	return s.questionRepo.GetByExamWithOptions(ctx, examID)
}

// Update merges the provided fields into the stored question
func (s *QuestionService) Update(ctx context.Context, id int64, req *dto.UpdateQuestionRequest) (*models.Question, error) {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		return question, nil
	}

	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		if text == "" {
			return nil, fmt.Errorf("%w: question text cannot be empty", apperrors.ErrValidationFailed)
		}
		question.Text = text
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return nil, fmt.Errorf("%w: unknown question type %q", apperrors.ErrValidationFailed, *req.Type)
		}
		question.Type = *req.Type
	}
	if req.Points != nil {
		if *req.Points <= 0 {
			return nil, fmt.Errorf("%w: points must be positive", apperrors.ErrValidationFailed)
		}
		question.Points = *req.Points
	}
	if req.DisplayOrder != nil {
		question.DisplayOrder = *req.DisplayOrder
	}
	if req.MediaURL != nil {
		question.MediaURL = req.MediaURL
	}

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

// Delete removes the question together with its options
func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid question ID", apperrors.ErrValidationFailed)
	}
	return s.questionRepo.Delete(ctx, id)
}

// AddOption adds an answer option to an existing question
func (s *QuestionService) AddOption(ctx context.Context, questionID int64, req *dto.CreateOptionRequest) (*models.QuestionOption, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: option text is required", apperrors.ErrValidationFailed)
	}
	if req.IsCorrect == nil {
		return nil, fmt.Errorf("%w: isCorrect is required", apperrors.ErrValidationFailed)
	}

	if _, err := s.questionRepo.GetByID(ctx, questionID); err != nil {
		return nil, err
	}

	option := &models.QuestionOption{
		QuestionID:   questionID,
		Text:         text,
		IsCorrect:    *req.IsCorrect,
		DisplayOrder: req.DisplayOrder,
	}
	if err := s.questionRepo.AddOption(ctx, option); err != nil {
		return nil, err
	}

	return option, nil
}

// UpdateOption merges the provided fields into the stored option
func (s *QuestionService) UpdateOption(ctx context.Context, id int64, req *dto.UpdateOptionRequest) (*models.QuestionOption, error) {
	option, err := s.questionRepo.GetOptionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		return option, nil
	}

	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		if text == "" {
			return nil, fmt.Errorf("%w: option text cannot be empty", apperrors.ErrValidationFailed)
		}
		option.Text = text
	}
	if req.IsCorrect != nil {
		option.IsCorrect = *req.IsCorrect
	}
	if req.DisplayOrder != nil {
		option.DisplayOrder = *req.DisplayOrder
	}

	if err := s.questionRepo.UpdateOption(ctx, option); err != nil {
		return nil, err
	}

	return option, nil
}

// DeleteOption removes a single answer option
func (s *QuestionService) DeleteOption(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid option ID", apperrors.ErrValidationFailed)
	}
	return s.questionRepo.DeleteOption(ctx, id)
}
