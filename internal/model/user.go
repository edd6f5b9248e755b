package model

import (
	"context"
	"time"
)

// Role is a user's role in the clinic.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	List(ctx context.Context, filter UserFilter, page Page) ([]User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (User, error)
	Delete(ctx context.Context, id int64) error
	SetAvatar(ctx context.Context, id int64, key string) error
}

// User represents a stored user with authentication material.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone"`
	Role         Role      `json:"role"`
	Bio          *string   `json:"bio"`
	SpecialtyID  *int64    `json:"specialty_id"`
	AvatarKey    *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterInput is the payload of a self-registration.
type RegisterInput struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Password    string  `json:"password"`
	Bio         *string `json:"bio"`
	SpecialtyID *int64  `json:"specialty_id"`
	Role        Role    `json:"-"`
}

// UserFilter narrows a user listing.
type UserFilter struct {
	Role *Role
}

// UserPatch is a partial user update; nil fields are left untouched.
type UserPatch struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Bio         *string `json:"bio"`
	SpecialtyID *int64  `json:"specialty_id"`
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}
