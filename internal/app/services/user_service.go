package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/yigit/examport/internal/app/models"
	"github.com/yigit/examport/internal/app/models/dto"
	"github.com/yigit/examport/internal/app/repositories"
	"github.com/yigit/examport/internal/pkg/apperrors"
	"github.com/yigit/examport/internal/pkg/auth"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,64}$`)

// UserService handles user account operations
type UserService struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create registers a new account. The plaintext password is hashed
// immediately and never stored; username and email conflicts come back as
// typed errors from the repository's unique constraints.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if !usernameRegex.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be 3-64 characters of letters, digits, dots, dashes or underscores", apperrors.ErrValidationFailed)
	}

	if !req.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, req.Role)
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		IsActive:     true,
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// GetAll retrieves all users, hashes stripped
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.PasswordHash = ""
	}
	return users, nil
}

// GetAllSimplified retrieves the compact listing used by admin tables
func (s *UserService) GetAllSimplified(ctx context.Context) ([]dto.SimplifiedUser, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	simplified := make([]dto.SimplifiedUser, 0, len(users))
	for _, user := range users {
		simplified = append(simplified, dto.SimplifiedUser{
			ID:    user.ID,
			Name:  user.FullName(),
			Email: user.Email,
			Role:  string(user.Role),
		})
	}
	return simplified, nil
}

// Update merges the provided fields into the stored user and stamps
// updated_at. id, password hash and created_at cannot be changed here.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Empty() {
		user.PasswordHash = ""
		return user, nil
	}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if !usernameRegex.MatchString(username) {
			return nil, fmt.Errorf("%w: username must be 3-64 characters of letters, digits, dots, dashes or underscores", apperrors.ErrValidationFailed)
		}
		user.Username = username
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidationFailed, *req.Role)
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Delete removes a user, or deactivates it when referential dependents
// exist. The rule is uniform: any owned course or enrollment keeps the row,
// flagged inactive, so references stay resolvable.
func (s *UserService) Delete(ctx context.Context, id int64) (*dto.DeleteUserResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	ownedCourses, err := s.userRepo.CountOwnedCourses(ctx, id)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.userRepo.CountEnrollments(ctx, id)
	if err != nil {
		return nil, err
	}

	if ownedCourses > 0 || enrollments > 0 {
		if err := s.userRepo.Deactivate(ctx, id); err != nil {
			return nil, err
		}
		return &dto.DeleteUserResponse{
			Deactivated: true,
			Message: fmt.Sprintf("User has %d owned course(s) and %d enrollment(s); account deactivated instead of deleted",
				ownedCourses, enrollments),
		}, nil
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return nil, err
	}

	return &dto.DeleteUserResponse{
		Deleted: true,
		Message: "User deleted successfully",
	}, nil
}
