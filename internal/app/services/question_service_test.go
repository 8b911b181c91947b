package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/pkg/apperrors"
)

func newTestQuestionService(t *testing.T) (*QuestionService, *fakeQuestionRepo, *fakeExamRepo) {
	t.Helper()
	questionRepo := newFakeQuestionRepo()
	examRepo := newFakeExamRepo()
	exam := &models.Exam{CourseID: 1, Name: "Midterm", CreatedBy: 1, IsActive: true}
	if err := examRepo.Create(context.Background(), exam); err != nil {
		t.Fatalf("seed exam: %v", err)
	}
	return NewQuestionService(questionRepo, examRepo), questionRepo, examRepo
}

func validQuestionRequest() *dto.CreateQuestionRequest {
	return &dto.CreateQuestionRequest{
		ExamID:       1,
		Text:         "What is 2+2?",
		Type:         models.QuestionMultipleChoice,
		Points:       10,
		DisplayOrder: 1,
	}
}

func TestQuestionServiceCreate(t *testing.T) {
	svc, _, _ := newTestQuestionService(t)

	question, err := svc.Create(context.Background(), validQuestionRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if question.ID == 0 {
		t.Error("expected assigned ID")
	}
	if question.Type != models.QuestionMultipleChoice {
		t.Errorf("type = %q", question.Type)
	}
}

func TestQuestionServiceCreateValidation(t *testing.T) {
	svc, _, _ := newTestQuestionService(t)

	tests := []struct {
		name    string
		mutate  func(*dto.CreateQuestionRequest)
		wantErr error
	}{
		{"blank text", func(r *dto.CreateQuestionRequest) { r.Text = "  " }, apperrors.ErrValidationFailed},
		{"unknown type", func(r *dto.CreateQuestionRequest) { r.Type = "matching" }, apperrors.ErrValidationFailed},
		{"zero points", func(r *dto.CreateQuestionRequest) { r.Points = 0 }, apperrors.ErrValidationFailed},
		{"negative points", func(r *dto.CreateQuestionRequest) { r.Points = -1 }, apperrors.ErrValidationFailed},
		{"missing exam", func(r *dto.CreateQuestionRequest) { r.ExamID = 404 }, apperrors.ErrExamNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validQuestionRequest()
			tt.mutate(req)
			if _, err := svc.Create(context.Background(), req); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuestionServiceUpdatePartial(t *testing.T) {
	svc, _, _ := newTestQuestionService(t)
	ctx := context.Background()

	question, err := svc.Create(ctx, validQuestionRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	points := 25.0
	updated, err := svc.Update(ctx, question.ID, &dto.UpdateQuestionRequest{Points: &points})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Points != 25 {
		t.Errorf("points = %v, want 25", updated.Points)
	}
	if updated.Text != question.Text {
		t.Error("text changed unexpectedly")
	}

	badType := models.QuestionType("matching")
	if _, err := svc.Update(ctx, question.ID, &dto.UpdateQuestionRequest{Type: &badType}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("bad type err = %v, want ErrValidationFailed", err)
	}
}

func TestQuestionServiceDeleteCascadesOptions(t *testing.T) {
	svc, repo, _ := newTestQuestionService(t)
	ctx := context.Background()

	question, err := svc.Create(ctx, validQuestionRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	correct := true
	wrong := false
	optA, err := svc.AddOption(ctx, question.ID, &dto.CreateOptionRequest{Text: "4", IsCorrect: &correct, DisplayOrder: 1})
	if err != nil {
		t.Fatalf("add option: %v", err)
	}
	if _, err := svc.AddOption(ctx, question.ID, &dto.CreateOptionRequest{Text: "5", IsCorrect: &wrong, DisplayOrder: 2}); err != nil {
		t.Fatalf("add option: %v", err)
	}

	if err := svc.Delete(ctx, question.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetByID(ctx, question.ID); !errors.Is(err, apperrors.ErrQuestionNotFound) {
		t.Errorf("question still retrievable: %v", err)
	}
	if _, err := repo.GetOptionByID(ctx, optA.ID); !errors.Is(err, apperrors.ErrOptionNotFound) {
		t.Errorf("option survived cascade: %v", err)
	}
}

func TestQuestionServiceGetWithOptions(t *testing.T) {
	svc, _, _ := newTestQuestionService(t)
	ctx := context.Background()

	question, err := svc.Create(ctx, validQuestionRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	correct := true
	if _, err := svc.AddOption(ctx, question.ID, &dto.CreateOptionRequest{Text: "4", IsCorrect: &correct, DisplayOrder: 1}); err != nil {
		t.Fatalf("add option: %v", err)
	}

	loaded, err := svc.GetWithOptions(ctx, question.ID)
	if err != nil {
		t.Fatalf("getWithOptions: %v", err)
	}
	if len(loaded.Options) != 1 {
		t.Fatalf("got %d options, want 1", len(loaded.Options))
	}
	if loaded.Options[0].Text != "4" || !loaded.Options[0].IsCorrect {
		t.Errorf("option = %+v", loaded.Options[0])
	}

	plain, err := svc.GetByID(ctx, question.ID)
	if err != nil {
		t.Fatalf("getByID: %v", err)
	}
	if len(plain.Options) != 0 {
		t.Error("plain lookup should not load options")
	}
}

func TestQuestionServiceAddOptionValidation(t *testing.T) {
	svc, _, _ := newTestQuestionService(t)
	ctx := context.Background()

	question, err := svc.Create(ctx, validQuestionRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	correct := true
	if _, err := svc.AddOption(ctx, question.ID, &dto.CreateOptionRequest{Text: " ", IsCorrect: &correct}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank text err = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.AddOption(ctx, question.ID, &dto.CreateOptionRequest{Text: "4"}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("nil isCorrect err = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.AddOption(ctx, 404, &dto.CreateOptionRequest{Text: "4", IsCorrect: &correct}); !errors.Is(err, apperrors.ErrQuestionNotFound) {
		t.Errorf("missing question err = %v, want ErrQuestionNotFound", err)
	}
}

func TestQuestionServiceUpdateOption(t *testing.T) {
	svc, _, _ := newTestQuestionService(t)
	ctx := context.Background()

	question, err := svc.Create(ctx, validQuestionRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	correct := true
	option, err := svc.AddOption(ctx, question.ID, &dto.CreateOptionRequest{Text: "4", IsCorrect: &correct, DisplayOrder: 1})
	if err != nil {
		t.Fatalf("add option: %v", err)
	}

	wrong := false
	updated, err := svc.UpdateOption(ctx, option.ID, &dto.UpdateOptionRequest{IsCorrect: &wrong})
	if err != nil {
		t.Fatalf("update option: %v", err)
	}
	if updated.IsCorrect {
		t.Error("isCorrect not updated")
	}
	if updated.Text != "4" {
		t.Errorf("text changed unexpectedly: %q", updated.Text)
	}

	if err := svc.DeleteOption(ctx, option.ID); err != nil {
		t.Fatalf("delete option: %v", err)
	}
	if _, err := svc.UpdateOption(ctx, option.ID, &dto.UpdateOptionRequest{IsCorrect: &wrong}); !errors.Is(err, apperrors.ErrOptionNotFound) {
		t.Errorf("err = %v, want ErrOptionNotFound", err)
	}
}
