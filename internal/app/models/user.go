package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`                                           // Unique identifier for the user
	Username     string     `json:"username" db:"username" example:"alice"`                           // Unique login name
	Email        string     `json:"email" db:"email" example:"alice@example.com"`                     // User's email address, unique
	PasswordHash string     `json:"-" db:"password_hash"`                                             // bcrypt hash (excluded from JSON)
	FirstName    string     `json:"firstName" db:"first_name" example:"Alice"`                        // User's first name
	LastName     string     `json:"lastName" db:"last_name" example:"Smith"`                          // User's last name
	Role         Role       `json:"role" db:"role" example:"teacher"`                                 // admin, teacher or student
	IsActive     bool       `json:"isActive" db:"is_active" example:"true"`                           // Whether the account is active
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login" example:"2025-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
	CreatedAt    time.Time  `json:"createdAt" db:"created_at" example:"2025-01-01T10:00:00Z"`         // Timestamp when the user was created
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at" example:"2025-01-02T15:30:00Z"`         // Timestamp when the user was last updated
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
