package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrBadRequest        = errors.New("bad request")
	ErrConflict          = errors.New("conflict")
	ErrInvalidInput      = errors.New("invalid input")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrUpstream          = errors.New("upstream failure")
)

// statuses is checked in order; the first sentinel found in the chain wins.
var statuses = []struct {
	target error
	code   int
}{
	{ErrNotFound, http.StatusNotFound},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrConflict, http.StatusConflict},
	{ErrBadRequest, http.StatusBadRequest},
	{ErrInvalidInput, http.StatusBadRequest},
	{ErrRateLimitExceeded, http.StatusTooManyRequests},
	{ErrUpstream, http.StatusBadGateway},
}

type upstreamError struct {
	cause error
}

func (e *upstreamError) Error() string {
	return e.cause.Error()
}

func (e *upstreamError) Unwrap() []error {
	return []error{ErrUpstream, e.cause}
}

// Upstream marks a storage or transport failure. The message is kept and the
// result matches both ErrUpstream and the cause.
func Upstream(err error) error {
	if err == nil {
		return nil
	}
	return &upstreamError{cause: err}
}

func MapErrorToStatus(err error) int {
	var up *upstreamError
	if errors.As(err, &up) {
		return http.StatusBadGateway
	}
	for _, s := range statuses {
		if errors.Is(err, s.target) {
			return s.code
		}
	}
	return http.StatusInternalServerError
}
