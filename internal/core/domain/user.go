package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether role is one of the recognized account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEmployee
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
