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

// IQuestionRepository defines the interface for question-related database operations
type IQuestionRepository interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	GetByExam(ctx context.Context, examID int64) ([]*models.Question, error)
	GetWithOptions(ctx context.Context, id int64) (*models.Question, error)
	GetByExamWithOptions(ctx context.Context, examID int64) ([]*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id int64) error
	AddOption(ctx context.Context, option *models.QuestionOption) error
	GetOptionByID(ctx context.Context, id int64) (*models.QuestionOption, error)
	UpdateOption(ctx context.Context, option *models.QuestionOption) error
	DeleteOption(ctx context.Context, id int64) error
}

const questionColumns = `id, exam_id, question_text, question_type, points, display_order, media_url, created_at`

const optionColumns = `id, question_id, option_text, is_correct, display_order`

// QuestionRepository handles database operations for questions and options
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func scanQuestion(row pgx.Row) (*models.Question, error) {
	var question models.Question
	err := row.Scan(
		&question.ID,
		&question.ExamID,
		&question.Text,
		&question.Type,
		&question.Points,
		&question.DisplayOrder,
		&question.MediaURL,
		&question.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error scanning question: %w", err)
	}
	return &question, nil
}

func scanOption(row pgx.Row) (*models.QuestionOption, error) {
	var option models.QuestionOption
	err := row.Scan(
		&option.ID,
		&option.QuestionID,
		&option.Text,
		&option.IsCorrect,
		&option.DisplayOrder,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOptionNotFound
		}
		return nil, fmt.Errorf("error scanning question option: %w", err)
	}
	return &option, nil
}

// Create inserts a new question under its exam
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (exam_id, question_text, question_type, points, display_order, media_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		question.ExamID, question.Text, question.Type,
		question.Points, question.DisplayOrder, question.MediaURL,
	).Scan(&question.ID, &question.CreatedAt)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrExamNotFound
		}
		return fmt.Errorf("error creating question: %w", err)
	}

	return nil
}

// GetByID retrieves a question by ID, without its options
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`
	return scanQuestion(r.db.QueryRow(ctx, query, id))
}

// GetByExam retrieves an exam's questions ordered for presentation
func (r *QuestionRepository) GetByExam(ctx context.Context, examID int64) ([]*models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE exam_id = $1 ORDER BY display_order ASC`

	rows, err := r.db.Query(ctx, query, examID)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

// GetWithOptions retrieves a question together with its ordered options
func (r *QuestionRepository) GetWithOptions(ctx context.Context, id int64) (*models.Question, error) {
	question, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	options, err := r.getOptionsForQuestions(ctx, []int64{question.ID})
	if err != nil {
		return nil, err
	}
	question.Options = options[question.ID]

	return question, nil
}

// GetByExamWithOptions retrieves an exam's questions with their ordered options
func (r *QuestionRepository) GetByExamWithOptions(ctx context.Context, examID int64) ([]*models.Question, error) {
	questions, err := r.GetByExam(ctx, examID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return questions, nil
	}

	ids := make([]int64, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	options, err := r.getOptionsForQuestions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		q.Options = options[q.ID]
	}

	return questions, nil
}

// getOptionsForQuestions loads options for a set of questions in one query,
// keyed by question ID and ordered by display_order within each question.
func (r *QuestionRepository) getOptionsForQuestions(ctx context.Context, questionIDs []int64) (map[int64][]*models.QuestionOption, error) {
	query := `SELECT ` + optionColumns + ` FROM question_options
		WHERE question_id = ANY($1)
		ORDER BY question_id, display_order ASC`

	rows, err := r.db.Query(ctx, query, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("error listing question options: %w", err)
	}
	defer rows.Close()

	options := make(map[int64][]*models.QuestionOption)
	for rows.Next() {
		option, err := scanOption(rows)
		if err != nil {
			return nil, err
		}
		options[option.QuestionID] = append(options[option.QuestionID], option)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return options, nil
}

// Update persists the merged question record. id, exam_id and created_at
// stay immutable.
func (r *QuestionRepository) Update(ctx context.Context, question *models.Question) error {
	query := `
		UPDATE questions
		SET question_text = $1, question_type = $2, points = $3, display_order = $4, media_url = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		question.Text, question.Type, question.Points,
		question.DisplayOrder, question.MediaURL, question.ID)
	if err != nil {
		return fmt.Errorf("error updating question: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}

	return nil
}

// Delete removes a question and all of its options inside one transaction,
// so a failure after the option delete cannot orphan the question.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting question delete: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM question_options WHERE question_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting question options: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting question: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing question delete: %w", err)
	}

	return nil
}

// AddOption inserts an answer choice for a question
func (r *QuestionRepository) AddOption(ctx context.Context, option *models.QuestionOption) error {
	query := `
		INSERT INTO question_options (question_id, option_text, is_correct, display_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		option.QuestionID, option.Text, option.IsCorrect, option.DisplayOrder,
	).Scan(&option.ID)

	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrQuestionNotFound
		}
		return fmt.Errorf("error adding question option: %w", err)
	}

	return nil
}

// GetOptionByID retrieves a single option
func (r *QuestionRepository) GetOptionByID(ctx context.Context, id int64) (*models.QuestionOption, error) {
	query := `SELECT ` + optionColumns + ` FROM question_options WHERE id = $1`
	return scanOption(r.db.QueryRow(ctx, query, id))
}

// UpdateOption persists the merged option record
func (r *QuestionRepository) UpdateOption(ctx context.Context, option *models.QuestionOption) error {
	query := `
		UPDATE question_options
		SET option_text = $1, is_correct = $2, display_order = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		option.Text, option.IsCorrect, option.DisplayOrder, option.ID)
	if err != nil {
		return fmt.Errorf("error updating question option: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOptionNotFound
	}

	return nil
}

// DeleteOption removes a single option row
func (r *QuestionRepository) DeleteOption(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM question_options WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting question option: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOptionNotFound
	}
	return nil
}
