package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindForbidden
	KindUnauthorized
	KindConflict
	KindUpstream
	KindTimeout
	KindUnexpected
)

var kindStatus = map[ErrorKind]int{
	KindValidation:   fiber.StatusBadRequest,
	KindNotFound:     fiber.StatusNotFound,
	KindForbidden:    fiber.StatusForbidden,
	KindUnauthorized: fiber.StatusUnauthorized,
	KindConflict:     fiber.StatusConflict,
	KindUpstream:     fiber.StatusBadGateway,
	KindTimeout:      fiber.StatusGatewayTimeout,
	KindUnexpected:   fiber.StatusInternalServerError,
}

// AppError carries a client-safe message; the wrapped error is only logged.
type AppError struct {
	Kind    ErrorKind
	Message string
	Field   string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Status() int {
	status, ok := kindStatus[e.Kind]
	if !ok {
		return fiber.StatusInternalServerError
	}
	return status
}

func NewValidation(field, message string) *AppError {
	return &AppError{Kind: KindValidation, Field: field, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewForbidden(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewUpstream(message string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Message: message, Err: err}
}

func NewTimeout(message string, err error) *AppError {
	return &AppError{Kind: KindTimeout, Message: message, Err: err}
}

func NewUnexpected(message string, err error) *AppError {
	return &AppError{Kind: KindUnexpected, Message: message, Err: err}
}

// AsAppError normalizes any error into an AppError. Unknown errors become
// KindUnexpected with a generic message so raw errors never reach the client.
func AsAppError(err error, fallbackMessage string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{Kind: KindUnexpected, Message: fallbackMessage, Err: err}
}
