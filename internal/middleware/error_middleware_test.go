package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func runHandleAPIError(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return w, &body
}

func TestHandleAPIErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"exam not found", apperrors.ErrExamNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"question not found", apperrors.ErrQuestionNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"option not found", apperrors.ErrOptionNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"duplicate username", apperrors.ErrUsernameAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"duplicate course code", apperrors.ErrCourseCodeAlreadyExists, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusUnauthorized, dto.ErrorCodeAccountDisabled},
		{"wrong password", apperrors.ErrWrongPassword, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"invalid reset token", apperrors.ErrInvalidResetToken, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"wrapped validation", fmt.Errorf("%w: points must be positive", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := runHandleAPIError(t, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body.Error == nil {
				t.Fatal("expected error detail in body")
			}
			if body.Error.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Error.Code, tt.wantCode)
			}
		})
	}
}

func TestHandleAPIErrorResetTokenIsBadRequest(t *testing.T) {
	// The reset endpoints are unauthenticated, so a failed reset token is a
	// 400, never a 401.
	w, body := runHandleAPIError(t, apperrors.ErrInvalidResetToken)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if body.Error == nil || body.Error.Message != "Invalid or expired reset token" {
		t.Errorf("unexpected error detail: %+v", body.Error)
	}
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	w, body := runHandleAPIError(t, apperrors.NewConflictError("course is no longer active"))
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", w.Code)
	}
	if body.Error == nil || body.Error.Message != "course is no longer active" {
		t.Errorf("message not propagated: %+v", body.Error)
	}
}

func TestHandleAPIErrorUnknownErrorHidesDetails(t *testing.T) {
	_, body := runHandleAPIError(t, errors.New("pq: connection refused"))
	if body.Error == nil {
		t.Fatal("expected error detail")
	}
	if body.Error.Message != "Internal server error" {
		t.Errorf("internal detail leaked: %q", body.Error.Message)
	}
}
