package llm

import (
	"fmt"
	"time"
)

// ErrRateLimited indicates the backend returned a rate limit error (429).
type ErrRateLimited struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrUnavailable indicates the backend is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model backend unavailable: %v", e.Err)
	}
	return "model backend unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrEmptyCompletion indicates the backend answered without any text
// content to hand back.
type ErrEmptyCompletion struct {
	Model string
}

func (e *ErrEmptyCompletion) Error() string {
	return fmt.Sprintf("empty completion from %s", e.Model)
}
