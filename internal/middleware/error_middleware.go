package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/pkg/apperrors"
)

// HandleAPIError maps service errors to HTTP responses. Handlers call it
// with whatever their service returned; unknown errors become a 500 without
// leaking internals.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		respondError(c, statusFor(err), dto.NewErrorDetail(codeFor(err), custom.Message))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		respondError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		respondError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Course not found"))
	case errors.Is(err, apperrors.ErrExamNotFound):
		respondError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Exam not found"))
	case errors.Is(err, apperrors.ErrQuestionNotFound):
		respondError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Question not found"))
	case errors.Is(err, apperrors.ErrOptionNotFound):
		respondError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Option not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"))

	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		respondError(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username already exists").WithField("username"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respondError(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email"))
	case errors.Is(err, apperrors.ErrCourseCodeAlreadyExists):
		respondError(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Course code already exists").WithField("code"))
	case errors.Is(err, apperrors.ErrAlreadyEnrolled):
		respondError(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "User is already enrolled in this course"))
	case errors.Is(err, apperrors.ErrConflict):
		respondError(c, http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password"))
	case errors.Is(err, apperrors.ErrAccountDisabled):
		respondError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled"))
	case errors.Is(err, apperrors.ErrWrongPassword):
		respondError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Current password is incorrect"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"))

	// A failed reset token is a bad request, not an authentication failure:
	// the reset endpoints are unauthenticated.
	case errors.Is(err, apperrors.ErrInvalidResetToken):
		respondError(c, http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid or expired reset token"))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")
		if msg := err.Error(); msg != "" {
			detail = detail.WithDetails(msg)
		}
		respondError(c, http.StatusBadRequest, detail)

	default:
		respondError(c, http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

// statusFor resolves the HTTP status of a wrapped sentinel error
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func codeFor(err error) dto.ErrorCode {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return dto.ErrorCodeResourceNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return dto.ErrorCodeResourceAlreadyExists
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return dto.ErrorCodeForbidden
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return dto.ErrorCodeValidationFailed
	default:
		return dto.ErrorCodeInternalServer
	}
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}

// HandleValidationError maps request binding failures to a 400 response
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request body")
	if err != nil {
		detail = detail.WithDetails(err.Error())
	}
	respondError(c, http.StatusBadRequest, detail)
}

// HandleInvalidID maps a malformed path parameter to a 400 response
func HandleInvalidID(c *gin.Context, param string) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+param+" parameter").WithField(param)
	respondError(c, http.StatusBadRequest, detail)
}
