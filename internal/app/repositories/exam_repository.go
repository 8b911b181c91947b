package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/pkg/apperrors"
	"github.com/yigit/examport/internal/pkg/dberrors"
)

// IExamRepository defines the interface for exam-related database operations
type IExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) error
	GetByID(ctx context.Context, id int64) (*models.Exam, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.Exam, error)
	GetByCreator(ctx context.Context, userID int64) ([]*models.Exam, error)
	GetAvailableForStudent(ctx context.Context, courseID int64, now time.Time) ([]*models.Exam, error)
	Publish(ctx context.Context, id int64) error
	Update(ctx context.Context, exam *models.Exam) error
	SoftDelete(ctx context.Context, id int64) error
}

const examColumns = `id, course_id, exam_name, description, time_limit_minutes, available_from, available_to,
		is_published, created_by, is_active, created_at, ip_restriction, browser_lockdown,
		show_results_immediately, show_results_after`

// ExamRepository handles database operations for exams
type ExamRepository struct {
	db *pgxpool.Pool
}

// NewExamRepository creates a new exam repository
func NewExamRepository(db *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{db: db}
}

func scanExam(row pgx.Row) (*models.Exam, error) {
	var exam models.Exam
	err := row.Scan(
		&exam.ID,
		&exam.CourseID,
		&exam.Name,
		&exam.Description,
		&exam.TimeLimitMinutes,
		&exam.AvailableFrom,
		&exam.AvailableTo,
		&exam.IsPublished,
		&exam.CreatedBy,
		&exam.IsActive,
		&exam.CreatedAt,
		&exam.IPRestriction,
		&exam.BrowserLockdown,
		&exam.ShowResultsImmediately,
		&exam.ShowResultsAfter,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, fmt.Errorf("error scanning exam: %w", err)
	}
	return &exam, nil
}

// Create inserts a new exam under its course
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	query := `
		INSERT INTO exams (course_id, exam_name, description, time_limit_minutes, available_from, available_to,
			is_published, created_by, is_active, ip_restriction, browser_lockdown,
			show_results_immediately, show_results_after)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		exam.CourseID, exam.Name, exam.Description, exam.TimeLimitMinutes,
		exam.AvailableFrom, exam.AvailableTo, exam.IsPublished, exam.CreatedBy,
		exam.IsActive, exam.IPRestriction, exam.BrowserLockdown,
		exam.ShowResultsImmediately, exam.ShowResultsAfter,
	).Scan(&exam.ID, &exam.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error creating exam: %w", err)
	}

	return nil
}

// GetByID retrieves an exam by ID
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams WHERE id = $1`
	return scanExam(r.db.QueryRow(ctx, query, id))
}

func (r *ExamRepository) queryExams(ctx context.Context, query string, args ...interface{}) ([]*models.Exam, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing exams: %w", err)
	}
	defer rows.Close()

	var exams []*models.Exam
	for rows.Next() {
		exam, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		exams = append(exams, exam)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exams, nil
}

// GetByCourse retrieves all exams for a course
func (r *ExamRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams WHERE course_id = $1`
	return r.queryExams(ctx, query, courseID)
}

// GetByCreator retrieves all exams created by the given user
func (r *ExamRepository) GetByCreator(ctx context.Context, userID int64) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams WHERE created_by = $1`
	return r.queryExams(ctx, query, userID)
}

// GetAvailableForStudent retrieves the exams a student may take right now:
// published, active, and with the given time inside the availability window.
// A NULL bound leaves that side of the window open. Mirrors
// models.Exam.AvailableAt.
func (r *ExamRepository) GetAvailableForStudent(ctx context.Context, courseID int64, now time.Time) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams
		WHERE course_id = $1
		  AND is_published = TRUE
		  AND is_active = TRUE
		  AND (available_from IS NULL OR available_from <= $2)
		  AND (available_to IS NULL OR available_to >= $2)`
	return r.queryExams(ctx, query, courseID, now)
}

// Publish flips is_published to true. There is no unpublish: publication is
// one-way through the API.
func (r *ExamRepository) Publish(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE exams SET is_published = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error publishing exam: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}
	return nil
}

// Update persists the merged exam record. id, course_id, created_by and
// created_at stay immutable.
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	query := `
		UPDATE exams
		SET exam_name = $1, description = $2, time_limit_minutes = $3, available_from = $4,
			available_to = $5, is_published = $6, is_active = $7, ip_restriction = $8,
			browser_lockdown = $9, show_results_immediately = $10, show_results_after = $11
		WHERE id = $12
	`

	cmdTag, err := r.db.Exec(ctx, query,
		exam.Name, exam.Description, exam.TimeLimitMinutes, exam.AvailableFrom,
		exam.AvailableTo, exam.IsPublished, exam.IsActive, exam.IPRestriction,
		exam.BrowserLockdown, exam.ShowResultsImmediately, exam.ShowResultsAfter,
		exam.ID)
	if err != nil {
		return fmt.Errorf("error updating exam: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}

	return nil
}

// SoftDelete marks the exam inactive. Questions keep referencing the row.
func (r *ExamRepository) SoftDelete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE exams SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting exam: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrExamNotFound
	}
	return nil
}
