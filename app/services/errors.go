package services

import (
	"errors"
	"fmt"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyCompleted = errors.New("attendance already completed for today")
	ErrAlreadyDecided   = errors.New("leave request has already been decided")
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InsufficientBalanceError names the leave balance bound that blocked the
// request.
type InsufficientBalanceError struct {
	Bound     string // "monthly" or "yearly"
	Requested int
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s leave balance: requested %d day(s), %d available", e.Bound, e.Requested, e.Available)
}

// HTTPStatus maps a service error to its response status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return 403
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrAlreadyDecided):
		return 409
	case errors.Is(err, ErrAlreadyCompleted):
		return 400
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return 400
	}
	var ibe *InsufficientBalanceError
	if errors.As(err, &ibe) {
		return 400
	}

	return 500
}
