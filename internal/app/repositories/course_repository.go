package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/pkg/apperrors"
	"github.com/yigit/examport/internal/pkg/dberrors"
)

// ICourseRepository defines the interface for course-related database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context, includeInactive bool) ([]*models.Course, error)
	GetByInstructor(ctx context.Context, userID int64) ([]*models.Course, error)
	GetEnrolledCourses(ctx context.Context, userID int64) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	SoftDelete(ctx context.Context, id int64) error
	Enroll(ctx context.Context, enrollment *models.Enrollment) error
	IsEnrolled(ctx context.Context, courseID, userID int64) (bool, error)
}

const courseColumns = `id, course_code, course_name, description, created_by, is_active, created_at`

// CourseRepository handles database operations for courses and enrollments
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var course models.Course
	err := row.Scan(
		&course.ID,
		&course.Code,
		&course.Name,
		&course.Description,
		&course.CreatedBy,
		&course.IsActive,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error scanning course: %w", err)
	}
	return &course, nil
}

// Create inserts a new course. The course_code unique constraint covers
// active and inactive rows alike and is surfaced as a typed conflict.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (course_code, course_name, description, created_by, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		course.Code, course.Name, course.Description, course.CreatedBy, course.IsActive,
	).Scan(&course.ID, &course.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "courses_course_code_key") {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID, active or not
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	return scanCourse(r.db.QueryRow(ctx, query, id))
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetAll retrieves courses, excluding soft-deleted ones unless asked
func (r *CourseRepository) GetAll(ctx context.Context, includeInactive bool) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	return r.queryCourses(ctx, query)
}

// GetByInstructor retrieves courses created by the given user
func (r *CourseRepository) GetByInstructor(ctx context.Context, userID int64) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE created_by = $1`
	return r.queryCourses(ctx, query, userID)
}

// GetEnrolledCourses retrieves the active courses a user is enrolled in
func (r *CourseRepository) GetEnrolledCourses(ctx context.Context, userID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.course_code, c.course_name, c.description, c.created_by, c.is_active, c.created_at
		FROM courses c
		JOIN course_enrollments e ON c.id = e.course_id
		WHERE e.user_id = $1 AND c.is_active = TRUE
	`
	return r.queryCourses(ctx, query, userID)
}

// Update persists the merged course record. Code uniqueness is enforced by
// the constraint, not by a separate lookup.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET course_code = $1, course_name = $2, description = $3, is_active = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code, course.Name, course.Description, course.IsActive, course.ID)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "courses_course_code_key") {
			return apperrors.ErrCourseCodeAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// SoftDelete marks the course inactive. Course rows are never removed:
// enrollments and exams keep referencing them.
func (r *CourseRepository) SoftDelete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE courses SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// Enroll inserts a course membership. The composite primary key makes a
// second enrollment of the same (course, user) pair fail as a conflict.
func (r *CourseRepository) Enroll(ctx context.Context, enrollment *models.Enrollment) error {
	query := `
		INSERT INTO course_enrollments (course_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING enrollment_date
	`

	err := r.db.QueryRow(ctx, query,
		enrollment.CourseID, enrollment.UserID, enrollment.Role,
	).Scan(&enrollment.EnrollmentDate)

	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "course_enrollments_pkey") {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error enrolling user: %w", err)
	}

	return nil
}

// IsEnrolled checks whether the (course, user) pair is already enrolled
func (r *CourseRepository) IsEnrolled(ctx context.Context, courseID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM course_enrollments WHERE course_id = $1 AND user_id = $2)`,
		courseID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}
