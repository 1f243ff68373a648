package auth

import "context"

// AuthService authenticates users and issues access tokens.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	// EnsureAdmin creates the bootstrap admin account when it does not
	// exist yet. A blank email is a no-op.
	EnsureAdmin(ctx context.Context, email, password string) error
}
