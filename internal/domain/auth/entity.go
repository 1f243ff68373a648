package auth

import "time"

// Role enum
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User - Account that can authenticate against the API
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
