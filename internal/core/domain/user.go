package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrTokenRevoked = errors.New("token revoked")
var ErrLastAdmin = errors.New("cannot remove the last admin account")

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// User models an authenticated actor in the admin area.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
