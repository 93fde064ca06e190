package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailNotFound is returned by the forgot-password flow.
	ErrEmailNotFound = errors.New("email not found")
	// ErrInvalidToken is returned for an unknown or already-consumed token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when the token is past its window. The
	// token row is deleted as a side effect of detection.
	ErrTokenExpired = errors.New("token expired")
)
