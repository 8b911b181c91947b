package dto

import "time"

// CreateExamRequest represents exam creation data. Availability bounds and
// proctoring settings are optional; an exam starts unpublished unless stated.
type CreateExamRequest struct {
	CourseID         int64      `json:"courseId" binding:"required,min=1"`
	Name             string     `json:"name" binding:"required"`
	Description      string     `json:"description"`
	TimeLimitMinutes *int       `json:"timeLimitMinutes,omitempty" binding:"omitempty,min=1"`
	AvailableFrom    *time.Time `json:"availableFrom,omitempty"`
	AvailableTo      *time.Time `json:"availableTo,omitempty"`
	IsPublished      *bool      `json:"isPublished,omitempty"`
	IsActive         *bool      `json:"isActive,omitempty"`

	IPRestriction          *string    `json:"ipRestriction,omitempty"`
	BrowserLockdown        *bool      `json:"browserLockdown,omitempty"`
	ShowResultsImmediately *bool      `json:"showResultsImmediately,omitempty"`
	ShowResultsAfter       *time.Time `json:"showResultsAfter,omitempty"`
}

// UpdateExamRequest represents a partial exam update
type UpdateExamRequest struct {
	Name             *string    `json:"name,omitempty"`
	Description      *string    `json:"description,omitempty"`
	TimeLimitMinutes *int       `json:"timeLimitMinutes,omitempty" binding:"omitempty,min=1"`
	AvailableFrom    *time.Time `json:"availableFrom,omitempty"`
	AvailableTo      *time.Time `json:"availableTo,omitempty"`
	IsPublished      *bool      `json:"isPublished,omitempty"`
	IsActive         *bool      `json:"isActive,omitempty"`

	IPRestriction          *string    `json:"ipRestriction,omitempty"`
	BrowserLockdown        *bool      `json:"browserLockdown,omitempty"`
	ShowResultsImmediately *bool      `json:"showResultsImmediately,omitempty"`
	ShowResultsAfter       *time.Time `json:"showResultsAfter,omitempty"`
}

// Empty reports whether the request carries no updatable fields.
func (r *UpdateExamRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.TimeLimitMinutes == nil &&
		r.AvailableFrom == nil && r.AvailableTo == nil && r.IsPublished == nil &&
		r.IsActive == nil && r.IPRestriction == nil && r.BrowserLockdown == nil &&
		r.ShowResultsImmediately == nil && r.ShowResultsAfter == nil
}
