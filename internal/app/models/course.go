package models

import (
	"time"
)

// Course defines the course model based on the 'courses' table
type Course struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	Code        string    `json:"code" db:"course_code" example:"CS101"`
	Name        string    `json:"name" db:"course_name" example:"Introduction to Computer Science"`
	Description string    `json:"description" db:"description"`
	CreatedBy   int64     `json:"createdBy" db:"created_by" example:"1"` // owning user ID
	IsActive    bool      `json:"isActive" db:"is_active" example:"true"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Enrollment defines the course membership relation based on the
// 'course_enrollments' table. A (course, user) pair is enrolled at most once.
type Enrollment struct {
	CourseID       int64     `json:"courseId" db:"course_id" example:"1"`
	UserID         int64     `json:"userId" db:"user_id" example:"2"`
	Role           string    `json:"role" db:"role" example:"student"`
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`
}
