package service

import "errors"

var (
	// ErrLoginOnServer wraps a failed login exchange with the backend.
	ErrLoginOnServer = errors.New("login on server failed")

	// ErrRegisterOnServer wraps a failed account registration.
	ErrRegisterOnServer = errors.New("registration on server failed")

	// ErrNotAuthenticated is returned by operations that require an
	// authenticated session when none is held.
	ErrNotAuthenticated = errors.New("not authenticated")
)
