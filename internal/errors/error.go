package errors

import "github.com/pkg/errors"

var (
	// common errors
	ErrNotConfigured = errors.New("service not configured")

	// report errors
	ErrInvalidEmail = errors.New("invalid email address")

	// lead errors
	ErrLeadNotFound = errors.New("lead not found")
	ErrTodoNotFound = errors.New("todo not found")
)
