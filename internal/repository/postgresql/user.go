package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/auth"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) auth.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements auth.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, user auth.User) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	user.ID = uuid.NewString()

	query := `
		INSERT INTO users (id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, user.ID, user.Email, user.PasswordHash, user.Role).
		Scan(&user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return auth.User{}, auth.ErrEmailExists
		}
		return auth.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetByEmail implements auth.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	var user auth.User
	err := q.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// GetByID implements auth.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (auth.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`

	var user auth.User
	err := q.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
