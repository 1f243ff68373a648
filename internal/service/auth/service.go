package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/paydesk/payroll-backend-go/internal/domain/auth"
	"github.com/paydesk/payroll-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo auth.UserRepository
	jwt      jwt.Service
}

func NewAuthService(userRepo auth.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwt:      jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User: auth.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Role:  string(user.Role),
		},
	}, nil
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, err
	}

	role := auth.Role(req.Role)
	if role == "" {
		role = auth.RoleStaff
	}

	user, err := s.userRepo.Create(ctx, auth.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return auth.UserResponse{}, err
	}

	return auth.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	}, nil
}

// EnsureAdmin implements auth.AuthService. Registration is admin-gated, so
// the first admin has to come from configuration; repeated startups leave
// an existing account untouched.
func (s *AuthServiceImpl) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" {
		return nil
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.userRepo.Create(ctx, auth.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         auth.RoleAdmin,
	})
	return err
}
