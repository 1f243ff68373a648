package auth

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/payroll-backend-go/internal/domain/auth"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/pkg/jwt"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
)

var (
	testAuthDB   *database.DB
	testAuthOnce sync.Once
)

func authTestService(t *testing.T) auth.AuthService {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testAuthOnce.Do(func() {
		db, err := database.NewPostgreSQLDB(context.Background(), dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
		if err := database.Migrate(context.Background(), db); err != nil {
			panic("Failed to migrate test database: " + err.Error())
		}
		testAuthDB = db
	})

	_, err := testAuthDB.Exec(context.Background(), "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)

	userRepo := postgresql.NewUserRepository(testAuthDB)
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	return NewAuthService(userRepo, jwtService)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc := authTestService(t)

	email := fmt.Sprintf("admin-%d@example.com", os.Getpid())
	require.NoError(t, svc.EnsureAdmin(ctx, email, "bootstrap-password"))

	// Seeding is idempotent across restarts.
	require.NoError(t, svc.EnsureAdmin(ctx, email, "bootstrap-password"))

	resp, err := svc.Login(ctx, auth.LoginRequest{Email: email, Password: "bootstrap-password"})
	require.NoError(t, err)
	assert.Equal(t, string(auth.RoleAdmin), resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestEnsureAdminBlankEmailIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := authTestService(t)

	require.NoError(t, svc.EnsureAdmin(ctx, "", ""))
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := authTestService(t)

	require.NoError(t, svc.EnsureAdmin(ctx, "admin@example.com", "bootstrap-password"))

	_, err := svc.Login(ctx, auth.LoginRequest{Email: "admin@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(ctx, auth.LoginRequest{Email: "nobody@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
