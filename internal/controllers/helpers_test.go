package controllers

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrms-dev/hrms_service/internal/config"
	"github.com/hrms-dev/hrms_service/internal/entity"
	"github.com/hrms-dev/hrms_service/internal/store"
)

// CreateTestDependencies wires an in-memory store with no Redis, the
// configuration every controller test runs against.
func CreateTestDependencies() *Dependens {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := &config.Config{}
	cfg.Server.JWTSecret = "test-secret-key"
	cfg.Server.TokenTTL = time.Hour

	return &Dependens{
		Store:  store.NewMemoryStore(),
		Logger: logger,
		Config: cfg,
	}
}

// SeedTestUser stores a user with the given plaintext password bcrypt
// hashed, the way the seeder does.
func SeedTestUser(t *testing.T, deps *Dependens, id, email, password, role string) entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	hashStr := string(hash)
	user := entity.User{
		ID:       id,
		Name:     "Test User",
		Email:    email,
		Password: &hashStr,
		Role:     role,
		Status:   entity.UserStatusActive,
	}
	require.NoError(t, deps.Store.Users.Put(context.Background(), id, user))

	return user
}

func StringPtr(s string) *string {
	return &s
}

func Float64Ptr(f float64) *float64 {
	return &f
}
