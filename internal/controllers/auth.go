package controllers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrms-dev/hrms_service/internal/entity"
)

const TokenSize = 16

const revokedKeyPrefix = "revoked_token:"

type AuthController struct {
	deps *Dependens
}

func NewAuthController(deps *Dependens) *AuthController {
	return &AuthController{
		deps: deps,
	}
}

// Login authenticates by exact email match and bcrypt comparison. The
// returned user has its password hash stripped.
func (c *AuthController) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	users, err := c.deps.Store.Users.List(ctx)
	if err != nil {
		c.deps.Logger.Error("Error listing users", slog.String("error", err.Error()))
		return nil, "", err
	}

	var found *entity.User
	for i := range users {
		if users[i].Email == email {
			found = &users[i]
			break
		}
	}

	if found == nil || found.Password == nil {
		c.deps.Logger.Warn("Invalid login attempt", slog.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*found.Password), []byte(password)); err != nil {
		c.deps.Logger.Warn("Invalid password", slog.String("email", email))
		return nil, "", ErrInvalidCredentials
	}

	token, err := c.createToken(found)
	if err != nil {
		return nil, "", err
	}

	user := *found
	user.Password = nil

	return &user, token, nil
}

func (c *AuthController) createToken(user *entity.User) (string, error) {
	tokenID, err := generateTokenID(c.deps.Logger)
	if err != nil {
		c.deps.Logger.Error("Error generating token ID", slog.String("error", err.Error()))
		return "", err
	}

	claims := entity.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.deps.Config.Server.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(c.deps.Config.Server.JWTSecret))
	if err != nil {
		c.deps.Logger.Error("Error signing token", slog.String("error", err.Error()))
		return "", err
	}

	return tokenStr, nil
}

func generateTokenID(logger *slog.Logger) (string, error) {
	b := make([]byte, TokenSize)
	if _, err := rand.Read(b); err != nil {
		logger.Error("Error generating token ID", slog.String("error", err.Error()))
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// CheckUserToken validates the Authorization header value. Validation is
// stateless; the denylist lookup only happens when Redis is configured.
func (c *AuthController) CheckUserToken(ctx context.Context, authHeader string) (*entity.Claims, error) {
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == authHeader {
		c.deps.Logger.Warn("Invalid bearer token")
		return nil, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenStr, &entity.Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(c.deps.Config.Server.JWTSecret), nil
	})
	if err != nil {
		c.deps.Logger.Warn("Error parsing token", slog.String("error", err.Error()))
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*entity.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if c.deps.Redis != nil {
		err := c.deps.Redis.Get(ctx, revokedKeyPrefix+claims.TokenID).Err()
		switch {
		case err == nil:
			c.deps.Logger.Warn("Token revoked", slog.String("token_id", claims.TokenID))
			return nil, ErrTokenRevoked
		case errors.Is(err, redis.Nil):
		default:
			c.deps.Logger.Error("Error checking denylist", slog.String("error", err.Error()))
			return nil, err
		}
	}

	return claims, nil
}

// Logout denylists the token for its remaining validity. Without Redis the
// token cannot be revoked early and the client simply discards it.
func (c *AuthController) Logout(ctx context.Context, authHeader string) error {
	claims, err := c.CheckUserToken(ctx, authHeader)
	if err != nil {
		return err
	}

	if c.deps.Redis == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if err := c.deps.Redis.Set(ctx, revokedKeyPrefix+claims.TokenID, "revoked", ttl).Err(); err != nil {
		c.deps.Logger.Error("Error denylisting token", slog.String("error", err.Error()))
		return err
	}

	return nil
}
