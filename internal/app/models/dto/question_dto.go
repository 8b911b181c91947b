package dto

import "github.com/yigit/examport/internal/app/models"

// CreateQuestionRequest represents question creation data
type CreateQuestionRequest struct {
	ExamID       int64               `json:"examId" binding:"required,min=1"`
	Text         string              `json:"text" binding:"required"`
	Type         models.QuestionType `json:"type" binding:"required"`
	Points       float64             `json:"points" binding:"required,gt=0"`
	DisplayOrder int                 `json:"displayOrder" binding:"required,min=1"`
	MediaURL     *string             `json:"mediaUrl,omitempty"`
}

// UpdateQuestionRequest represents a partial question update
type UpdateQuestionRequest struct {
	Text         *string              `json:"text,omitempty"`
	Type         *models.QuestionType `json:"type,omitempty"`
	Points       *float64             `json:"points,omitempty" binding:"omitempty,gt=0"`
	DisplayOrder *int                 `json:"displayOrder,omitempty" binding:"omitempty,min=1"`
	MediaURL     *string              `json:"mediaUrl,omitempty"`
}

// Empty reports whether the request carries no updatable fields.
func (r *UpdateQuestionRequest) Empty() bool {
	return r.Text == nil && r.Type == nil && r.Points == nil &&
		r.DisplayOrder == nil && r.MediaURL == nil
}

// CreateOptionRequest adds an answer choice to a question. The question ID
// comes from the route path.
type CreateOptionRequest struct {
	Text         string `json:"text" binding:"required"`
	IsCorrect    *bool  `json:"isCorrect" binding:"required"`
	DisplayOrder int    `json:"displayOrder" binding:"required,min=1"`
}

// UpdateOptionRequest represents a partial option update
type UpdateOptionRequest struct {
	Text         *string `json:"text,omitempty"`
	IsCorrect    *bool   `json:"isCorrect,omitempty"`
	DisplayOrder *int    `json:"displayOrder,omitempty" binding:"omitempty,min=1"`
}

// Empty reports whether the request carries no updatable fields.
func (r *UpdateOptionRequest) Empty() bool {
	return r.Text == nil && r.IsCorrect == nil && r.DisplayOrder == nil
}
