package controllers

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so login reveals nothing about account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
