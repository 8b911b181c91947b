package dto

import "github.com/yigit/examport/internal/app/models"

// CreateUserRequest represents user registration data
type CreateUserRequest struct {
	Username  string      `json:"username" binding:"required"`
	Email     string      `json:"email" binding:"required,email"`
	Password  string      `json:"password" binding:"required,min=8"`
	FirstName string      `json:"firstName" binding:"required"`
	LastName  string      `json:"lastName" binding:"required"`
	Role      models.Role `json:"role" binding:"required"`
	IsActive  *bool       `json:"isActive,omitempty"`
}

// UpdateUserRequest represents a partial user update. Only non-nil fields
// are applied; identity, password material and creation time are immutable
// through this request.
type UpdateUserRequest struct {
	Username  *string      `json:"username,omitempty"`
	Email     *string      `json:"email,omitempty" binding:"omitempty,email"`
	FirstName *string      `json:"firstName,omitempty"`
	LastName  *string      `json:"lastName,omitempty"`
	Role      *models.Role `json:"role,omitempty"`
	IsActive  *bool        `json:"isActive,omitempty"`
}

// Empty reports whether the request carries no updatable fields.
func (r *UpdateUserRequest) Empty() bool {
	return r.Username == nil && r.Email == nil && r.FirstName == nil &&
		r.LastName == nil && r.Role == nil && r.IsActive == nil
}

// SimplifiedUser is the compact listing shape used by admin tables
type SimplifiedUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DeleteUserResponse reports the outcome of a user delete. A user with
// dependents (owned courses or enrollments) is deactivated instead of
// removed.
type DeleteUserResponse struct {
	Deleted     bool   `json:"deleted"`
	Deactivated bool   `json:"deactivated"`
	Message     string `json:"message"`
}
