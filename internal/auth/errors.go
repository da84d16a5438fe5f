package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	ErrInvalidToken       = errors.New("auth: invalid token")
	ErrNoSession          = errors.New("auth: no session")
	ErrForbidden          = errors.New("auth: forbidden")
)
