package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the login response can't be used to probe which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
