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

// CourseService handles course and enrollment operations
type CourseService struct {
	courseRepo repositories.ICourseRepository
	userRepo   repositories.IUserRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo repositories.ICourseRepository, userRepo repositories.IUserRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// Create creates a new course owned by the authenticated creator. The
// request must already be normalized: this layer only sees canonical
// code/name fields.
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest, createdBy int64) (*models.Course, error) {
	code := strings.TrimSpace(req.Code)
	name := strings.TrimSpace(req.Name)
	if code == "" {
		return nil, fmt.Errorf("%w: course code is required", apperrors.ErrValidationFailed)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: course name is required", apperrors.ErrValidationFailed)
	}
	if createdBy <= 0 {
		return nil, fmt.Errorf("%w: course creator is required", apperrors.ErrValidationFailed)
	}

	course := &models.Course{
		Code:        code,
		Name:        name,
		Description: req.Description,
		CreatedBy:   createdBy,
		IsActive:    true,
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetByID retrieves a course by ID
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetByID(ctx, id)
}

// GetAll retrieves courses; soft-deleted rows only when includeInactive
func (s *CourseService) GetAll(ctx context.Context, includeInactive bool) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx, includeInactive)
}

// GetByInstructor retrieves courses created by the given user
func (s *CourseService) GetByInstructor(ctx context.Context, userID int64) ([]*models.Course, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetByInstructor(ctx, userID)
}

// GetEnrolledCourses retrieves the active courses a student is enrolled in
func (s *CourseService) GetEnrolledCourses(ctx context.Context, userID int64) ([]*models.Course, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.GetEnrolledCourses(ctx, userID)
}

// Update merges the provided fields into the stored course. The code
// unique constraint catches collisions with other courses, active or not.
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		return course, nil
	}

	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		if code == "" {
			return nil, fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
		}
		course.Code = code
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
		}
		course.Name = name
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// Delete soft-deletes the course. The row survives for referential lookups.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseRepo.SoftDelete(ctx, id)
}

// EnrollStudent enrolls a user into a course. The course must exist and be
// active; a duplicate (course, user) pair is rejected by the composite key.
func (s *CourseService) EnrollStudent(ctx context.Context, courseID, userID int64, role string) (*models.Enrollment, error) {
	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsActive {
		return nil, apperrors.NewConflictError("course is no longer active")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if role == "" {
		role = string(models.RoleStudent)
	}

	enrollment := &models.Enrollment{
		CourseID: courseID,
		UserID:   userID,
		Role:     role,
	}
	if err := s.courseRepo.Enroll(ctx, enrollment); err != nil {
		return nil, err
	}

	return enrollment, nil
}

// IsEnrolled checks whether the (course, user) pair is enrolled
func (s *CourseService) IsEnrolled(ctx context.Context, courseID, userID int64) (bool, error) {
	return s.courseRepo.IsEnrolled(ctx, courseID, userID)
}
