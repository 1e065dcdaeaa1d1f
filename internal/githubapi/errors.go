// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package githubapi

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates the requested resource is absent (repository
// deleted, README missing). Callers treat it as empty input.
var ErrNotFound = errors.New("githubapi: resource not found")

// RateLimitError indicates the API quota is exhausted. It is the only
// fatal error class: a run must abort rather than burn the remaining
// quota on calls that will all fail.
type RateLimitError struct {
	// ResetAt is when the quota resets, from the rate-limit headers.
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("githubapi: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError is any other HTTP-level failure. Non-fatal: the caller logs
// it and skips the unit of work.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("githubapi: API error %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err means the resource is absent.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited reports whether err is the fatal rate-limit class.
func IsRateLimited(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}
