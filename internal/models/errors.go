package models

import "errors"

// ErrInvalid marks input that failed validation.
var ErrInvalid = errors.New("invalid input")
