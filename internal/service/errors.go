package service

import "errors"

var (
	// ErrNotFound reports that a requested row does not exist or is not owned
	// by the caller. The two cases are deliberately indistinguishable so that
	// non-owners cannot probe for existence.
	ErrNotFound = errors.New("not found")

	// ErrValidation reports malformed or conflicting input. Handlers map it
	// to a bad-request status with a generic message.
	ErrValidation = errors.New("invalid input")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenRevoked       = errors.New("token revoked")
)
