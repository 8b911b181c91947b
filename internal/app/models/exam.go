package models

import (
	"time"
)

// Exam defines the exam model based on the 'exams' table
type Exam struct {
	ID               int64      `json:"id" db:"id" example:"1"`
	CourseID         int64      `json:"courseId" db:"course_id" example:"1"` // owning course
	Name             string     `json:"name" db:"exam_name" example:"Midterm 1"`
	Description      string     `json:"description" db:"description"`
	TimeLimitMinutes *int       `json:"timeLimitMinutes,omitempty" db:"time_limit_minutes" example:"90"`
	AvailableFrom    *time.Time `json:"availableFrom,omitempty" db:"available_from"` // nil = open-ended
	AvailableTo      *time.Time `json:"availableTo,omitempty" db:"available_to"`     // nil = open-ended
	IsPublished      bool       `json:"isPublished" db:"is_published" example:"false"`
	CreatedBy        int64      `json:"createdBy" db:"created_by" example:"1"`
	IsActive         bool       `json:"isActive" db:"is_active" example:"true"`
	CreatedAt        time.Time  `json:"createdAt" db:"created_at"`

	// Proctoring settings
	IPRestriction          *string    `json:"ipRestriction,omitempty" db:"ip_restriction"`
	BrowserLockdown        bool       `json:"browserLockdown" db:"browser_lockdown"`
	ShowResultsImmediately bool       `json:"showResultsImmediately" db:"show_results_immediately"`
	ShowResultsAfter       *time.Time `json:"showResultsAfter,omitempty" db:"show_results_after"`
}

// AvailableAt reports whether the exam is open to students at the given time:
// it must be published, active, and the time must fall inside the optional
// [AvailableFrom, AvailableTo] window. A nil bound is unbounded.
// The SQL filter in the exam repository implements the same rule.
func (e *Exam) AvailableAt(t time.Time) bool {
	if !e.IsPublished || !e.IsActive {
		return false
	}
	if e.AvailableFrom != nil && t.Before(*e.AvailableFrom) {
		return false
	}
	if e.AvailableTo != nil && t.After(*e.AvailableTo) {
		return false
	}
	return true
}
