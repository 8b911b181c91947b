package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/pkg/apperrors"
)

func newTestService(accessExp, resetExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: accessExp,
		ResetTokenExp:  resetExp,
		TokenIssuer:    "examport-test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       42,
		Username: "jdoe",
		Role:     models.RoleTeacher,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour, time.Hour)

	token, expiresIn, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Username != "jdoe" {
		t.Errorf("Username = %q, want jdoe", claims.Username)
	}
	if claims.Role != "teacher" {
		t.Errorf("Role = %q, want teacher", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a jti claim")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(-time.Minute, time.Hour)

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestValidateTokenTampered(t *testing.T) {
	svc := newTestService(time.Hour, time.Hour)

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:      "a-different-secret",
		AccessTokenExp: time.Hour,
		ResetTokenExp:  time.Hour,
		TokenIssuer:    "examport-test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}

	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Error("expected validation to fail for a tampered token")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService(time.Hour, time.Hour)

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("expected validation to fail for garbage input")
	}
}

func TestResetTokenRoundTrip(t *testing.T) {
	svc := newTestService(time.Hour, time.Hour)

	token, err := svc.GenerateResetToken(42)
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}

	userID, err := svc.VerifyResetToken(token)
	if err != nil {
		t.Fatalf("VerifyResetToken: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
}

func TestResetTokenExpired(t *testing.T) {
	svc := newTestService(time.Hour, -time.Minute)

	token, err := svc.GenerateResetToken(42)
	if err != nil {
		t.Fatalf("GenerateResetToken: %v", err)
	}

	if _, err := svc.VerifyResetToken(token); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestAccessTokenRejectedAsResetToken(t *testing.T) {
	svc := newTestService(time.Hour, time.Hour)

	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// An access token has no password_reset purpose claim
	if _, err := svc.VerifyResetToken(token); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("ExtractBearerToken: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("token = %q", token)
	}

	if _, err := ExtractBearerToken(""); err == nil {
		t.Error("expected error for empty header")
	}
	if _, err := ExtractBearerToken("abc.def.ghi"); err == nil {
		t.Error("expected error for missing Bearer prefix")
	}
}
