package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
