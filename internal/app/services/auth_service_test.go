package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/pkg/apperrors"
	"github.com/yigit/examport/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		ResetTokenExp:  time.Hour,
		TokenIssuer:    "examport-test",
	})
	return NewAuthService(repo, jwtService, zerolog.Nop()), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, active bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		FirstName:    "Test",
		LastName:     "User",
		Role:         models.RoleStudent,
		IsActive:     active,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginSuccess(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "alice", "correct-horse1", true)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "alice", Password: "correct-horse1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("tokenType = %q, want Bearer", resp.TokenType)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", resp.ExpiresIn)
	}
	if resp.User == nil || resp.User.PasswordHash != "" {
		t.Error("response user must be present with hash stripped")
	}

	stored, _ := repo.GetByUsername(context.Background(), "alice")
	if stored.LastLoginAt == nil {
		t.Error("last login not stamped")
	}
}

func TestLoginFailures(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "alice", "correct-horse1", true)
	seedUser(t, repo, "bob", "correct-horse1", false)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"unknown user", "nobody", "correct-horse1", apperrors.ErrInvalidCredentials},
		{"wrong password", "alice", "wrong-password1", apperrors.ErrInvalidCredentials},
		{"empty credentials", "", "", apperrors.ErrInvalidCredentials},
		{"disabled account", "bob", "correct-horse1", apperrors.ErrAccountDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: tt.username, Password: tt.password})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := seedUser(t, repo, "alice", "oldpassword1", true)
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, user.ID, "oldpassword1", "newpassword2"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	// Old credential no longer authenticates, new one does.
	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "oldpassword1"}); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("old password still accepted: %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "newpassword2"}); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := seedUser(t, repo, "alice", "oldpassword1", true)

	err := svc.ChangePassword(context.Background(), user.ID, "not-the-password1", "newpassword2")
	if !errors.Is(err, apperrors.ErrWrongPassword) {
		t.Errorf("err = %v, want ErrWrongPassword", err)
	}
}

func TestChangePasswordWeakNew(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := seedUser(t, repo, "alice", "oldpassword1", true)

	err := svc.ChangePassword(context.Background(), user.ID, "oldpassword1", "short")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("err = %v, want ErrValidationFailed", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, repo := newTestAuthService(t)
	seedUser(t, repo, "alice", "oldpassword1", true)
	ctx := context.Background()

	token, err := svc.RequestPasswordReset(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("request reset: %v", err)
	}
	if token == "" {
		t.Fatal("expected a reset token")
	}

	if err := svc.ResetPassword(ctx, token, "resetpassword3"); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "resetpassword3"}); err != nil {
		t.Errorf("login after reset failed: %v", err)
	}
}

func TestPasswordResetUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if _, err := svc.RequestPasswordReset(context.Background(), "ghost@example.com"); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestResetPasswordBadToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	if err := svc.ResetPassword(context.Background(), "garbage", "newpassword2"); !errors.Is(err, apperrors.ErrInvalidResetToken) {
		t.Errorf("err = %v, want ErrInvalidResetToken", err)
	}
}

func TestResetPasswordRejectsAccessToken(t *testing.T) {
	svc, repo := newTestAuthService(t)
	user := seedUser(t, repo, "alice", "oldpassword1", true)

	// An ordinary access token must not be accepted as a reset token.
	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: user.Username, Password: "oldpassword1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.ResetPassword(context.Background(), resp.Token, "newpassword2"); !errors.Is(err, apperrors.ErrInvalidResetToken) {
		t.Errorf("err = %v, want ErrInvalidResetToken", err)
	}
}
