package errs

import (
	"errors"
	"net/http"
)

// Domain error sentinel values. All three post errors are raised inside the
// service layer at the point of detection and propagate unchanged to the
// HTTP boundary.
var (
	ErrPostNotFound     = errors.New("post not found")
	ErrPostNotUpdatable = errors.New("post can only be updated by its author")
	ErrPostNotDeletable = errors.New("post can only be deleted by its author")
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrEmptyContent     = errors.New("content must not be empty")
	ErrInvalidPageSize  = errors.New("page size must be a positive integer")
)

// StatusCode maps a domain error to the HTTP status the boundary should
// answer with. Unclassified errors are server errors: not retried, not
// recovered locally.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPostNotUpdatable), errors.Is(err, ErrPostNotDeletable):
		return http.StatusForbidden
	case errors.Is(err, ErrEmptyTitle), errors.Is(err, ErrEmptyContent), errors.Is(err, ErrInvalidPageSize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether err is one of the domain errors the caller
// caused, as opposed to a storage failure.
func IsClientError(err error) bool {
	return StatusCode(err) < http.StatusInternalServerError
}
