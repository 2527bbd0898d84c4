package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		expectError error
	}{
		{
			name:     "valid credentials",
			email:    "admin@hrms.com",
			password: "admin123",
		},
		{
			name:        "unknown email",
			email:       "nobody@hrms.com",
			password:    "admin123",
			expectError: ErrInvalidCredentials,
		},
		{
			name:        "wrong password",
			email:       "admin@hrms.com",
			password:    "not-the-password",
			expectError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := CreateTestDependencies()
			SeedTestUser(t, deps, "admin-1", "admin@hrms.com", "admin123", entity.RoleAdmin)

			controller := NewAuthController(deps)

			user, token, err := controller.Login(context.Background(), tt.email, tt.password)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, user)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			assert.Equal(t, "admin-1", user.ID)
			assert.Nil(t, user.Password)
			assert.NotEmpty(t, token)
		})
	}
}

func TestAuthController_LoginTokenClaims(t *testing.T) {
	deps := CreateTestDependencies()
	SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewAuthController(deps)

	_, token, err := controller.Login(context.Background(), "james@hrms.com", "emp123")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &entity.Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(deps.Config.Server.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(*entity.Claims)
	require.True(t, ok)
	assert.Equal(t, "emp-1", claims.UserID)
	assert.Equal(t, "james@hrms.com", claims.Email)
	assert.Equal(t, entity.RoleEmployee, claims.Role)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(deps.Config.Server.TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestAuthController_CheckUserToken(t *testing.T) {
	deps := CreateTestDependencies()
	SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewAuthController(deps)

	_, token, err := controller.Login(context.Background(), "james@hrms.com", "emp123")
	require.NoError(t, err)

	tests := []struct {
		name        string
		authHeader  string
		expectError error
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + token,
		},
		{
			name:        "missing bearer prefix",
			authHeader:  token,
			expectError: ErrInvalidToken,
		},
		{
			name:        "garbage token",
			authHeader:  "Bearer not-a-jwt",
			expectError: ErrInvalidToken,
		},
		{
			name:        "token signed with another key",
			authHeader:  "Bearer " + signedWith(t, "other-secret", time.Hour),
			expectError: ErrInvalidToken,
		},
		{
			name:        "expired token",
			authHeader:  "Bearer " + signedWith(t, "test-secret-key", -time.Hour),
			expectError: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := controller.CheckUserToken(context.Background(), tt.authHeader)

			if tt.expectError != nil {
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, claims)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, claims)
			assert.Equal(t, "emp-1", claims.UserID)
			assert.Equal(t, "james@hrms.com", claims.Email)
			assert.Equal(t, entity.RoleEmployee, claims.Role)
		})
	}
}

func TestAuthController_LogoutWithoutRedis(t *testing.T) {
	deps := CreateTestDependencies()
	SeedTestUser(t, deps, "emp-1", "james@hrms.com", "emp123", entity.RoleEmployee)

	controller := NewAuthController(deps)

	_, token, err := controller.Login(context.Background(), "james@hrms.com", "emp123")
	require.NoError(t, err)

	// Without a denylist logout is a no-op and the token stays valid
	// until it expires.
	require.NoError(t, controller.Logout(context.Background(), "Bearer "+token))

	claims, err := controller.CheckUserToken(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.UserID)
}

func TestGenerateTokenID(t *testing.T) {
	deps := CreateTestDependencies()

	id1, err := generateTokenID(deps.Logger)
	require.NoError(t, err)
	assert.Len(t, id1, TokenSize*2)

	id2, err := generateTokenID(deps.Logger)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func signedWith(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()

	claims := entity.Claims{
		UserID:  "emp-1",
		Email:   "james@hrms.com",
		Role:    entity.RoleEmployee,
		TokenID: "test-token-id",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}
