package models

import (
	"time"
)

// Question defines the question model based on the 'questions' table
type Question struct {
	ID           int64        `json:"id" db:"id" example:"1"`
	ExamID       int64        `json:"examId" db:"exam_id" example:"1"` // owning exam
	Text         string       `json:"text" db:"question_text"`
	Type         QuestionType `json:"type" db:"question_type" example:"multiple_choice"`
	Points       float64      `json:"points" db:"points" example:"10"`
	DisplayOrder int          `json:"displayOrder" db:"display_order" example:"1"` // presentation order within the exam
	MediaURL     *string      `json:"mediaUrl,omitempty" db:"media_url"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`

	// Options are populated by the with-options queries, ordered by
	// display_order ascending.
	Options []*QuestionOption `json:"options,omitempty"`
}

// QuestionOption defines an answer choice based on the 'question_options' table
type QuestionOption struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	QuestionID   int64  `json:"questionId" db:"question_id" example:"1"`
	Text         string `json:"text" db:"option_text"`
	IsCorrect    bool   `json:"isCorrect" db:"is_correct"`
	DisplayOrder int    `json:"displayOrder" db:"display_order" example:"1"`
}
