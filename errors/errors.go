package errors

import (
	goerrors "errors"
	"fmt"
	"net/http"
)

var (
	// Record store taxonomy.
	ErrNotFound        = fmt.Errorf("record not found")
	ErrVersionConflict = fmt.Errorf("version conflict")
	ErrUnauthorized    = fmt.Errorf("requester is not the owner")

	// Auth.
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity rules")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")

	// Runtime.
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrInvalidPayload = fmt.Errorf("unexpected event payload")
	ErrEmptyWords     = fmt.Errorf("no words have been found")
	ErrSlowConsumer   = fmt.Errorf("subscriber too slow, event dropped")
)

// MapToHTTPStatus translates the error taxonomy into transport status codes.
// A conflict reaching this point means the retry budget is exhausted, which
// is a server-side failure, not a client mistake.
func MapToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case goerrors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case goerrors.Is(err, ErrUnauthorized):
		return http.StatusForbidden
	case goerrors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case goerrors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict
	case goerrors.Is(err, ErrInvalidPassword):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
