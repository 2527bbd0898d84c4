package entity

import "github.com/golang-jwt/jwt/v5"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Claims is the session payload carried by a signed token. TokenID keys
// the revocation denylist.
type Claims struct {
	jwt.RegisteredClaims

	UserID  string `json:"userId"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	TokenID string `json:"tokenId"`
}
