package domain

import (
	"errors"
	"fmt"
)

var ErrEmailTaken = errors.New("email already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrAccountNotFound = errors.New("invalid credentials or role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyAttempts = errors.New("too many login attempts")

// FieldError is one violated constraint on one payload field, in the
// shape the API returns to callers.
type FieldError struct {
	Type     string `json:"type"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

// NewFieldError builds a body-level field error.
func NewFieldError(path, msg string) FieldError {
	return FieldError{Type: "field", Msg: msg, Path: path, Location: "body"}
}

// ValidationError carries every violated constraint of a payload at
// once, in payload-field order.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
