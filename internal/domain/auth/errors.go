package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrSessionExpired     = errors.New("session expired, log in again")
	ErrEmailExists        = errors.New("email already registered")
)
