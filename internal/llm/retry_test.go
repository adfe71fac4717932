package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMock(
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Err: &ErrRateLimited{RetryAfter: time.Millisecond}},
		MockReply{Text: `{"name":"Jane"}`},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Complete(context.Background(), Prompt{User: "hello"})
	if err != nil {
		t.Fatalf("expected success after retries, got: %v", err)
	}
	if resp.Text != `{"name":"Jane"}` {
		t.Errorf("unexpected text: %q", resp.Text)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 attempts, got %d", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	mock := NewMock(
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Err: &ErrUnavailable{}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Complete(context.Background(), Prompt{User: "hello"})
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrUnavailable, got: %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 attempts, got %d", mock.CallCount())
	}
}

func TestRetry_EmptyCompletionNotRetried(t *testing.T) {
	mock := NewMock(
		MockReply{Err: &ErrEmptyCompletion{Model: "mock"}},
		MockReply{Text: "never reached"},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Complete(context.Background(), Prompt{User: "hello"})
	var empty *ErrEmptyCompletion
	if !errors.As(err, &empty) {
		t.Fatalf("expected ErrEmptyCompletion, got: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 attempt, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellationStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMock(
		MockReply{Err: &ErrUnavailable{}},
		MockReply{Text: "never reached"},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Complete(ctx, Prompt{User: "hello"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
}
