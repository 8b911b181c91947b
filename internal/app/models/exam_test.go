package models

import (
	"testing"
	"time"
)

func TestExamAvailableAt(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	tests := []struct {
		name string
		exam Exam
		want bool
	}{
		{
			name: "published active no bounds",
			exam: Exam{IsPublished: true, IsActive: true},
			want: true,
		},
		{
			name: "unpublished",
			exam: Exam{IsPublished: false, IsActive: true},
			want: false,
		},
		{
			name: "inactive",
			exam: Exam{IsPublished: true, IsActive: false},
			want: false,
		},
		{
			name: "inside window",
			exam: Exam{IsPublished: true, IsActive: true, AvailableFrom: &before, AvailableTo: &after},
			want: true,
		},
		{
			name: "before window opens",
			exam: Exam{IsPublished: true, IsActive: true, AvailableFrom: &after},
			want: false,
		},
		{
			name: "after window closes",
			exam: Exam{IsPublished: true, IsActive: true, AvailableTo: &before},
			want: false,
		},
		{
			name: "open-ended start",
			exam: Exam{IsPublished: true, IsActive: true, AvailableTo: &after},
			want: true,
		},
		{
			name: "open-ended end",
			exam: Exam{IsPublished: true, IsActive: true, AvailableFrom: &before},
			want: true,
		},
		{
			name: "at exact bound",
			exam: Exam{IsPublished: true, IsActive: true, AvailableFrom: &now, AvailableTo: &now},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.exam.AvailableAt(now); got != tt.want {
				t.Errorf("AvailableAt = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleTeacher, RoleStudent} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	if Role("superuser").Valid() {
		t.Error("unknown role accepted")
	}
}

func TestQuestionTypeValid(t *testing.T) {
	for _, q := range []QuestionType{QuestionMultipleChoice, QuestionTrueFalse, QuestionShortAnswer, QuestionEssay} {
		if !q.Valid() {
			t.Errorf("%q should be valid", q)
		}
	}
	if QuestionType("matching").Valid() {
		t.Error("unknown question type accepted")
	}
}
