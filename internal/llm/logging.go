package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// loggingProvider decorates a Provider with structured call logging. Every
// request gets a generated id so a slow or failing call can be tied back to
// the command that triggered it.
type loggingProvider struct {
	inner Provider
	log   *slog.Logger
}

// WithLogging wraps a Provider with slog call logging.
func WithLogging(p Provider, log *slog.Logger) Provider {
	return &loggingProvider{inner: p, log: log}
}

func (l *loggingProvider) Complete(ctx context.Context, p Prompt) (*Completion, error) {
	id := uuid.NewString()
	start := time.Now()

	resp, err := l.inner.Complete(ctx, p)

	attrs := []any{
		slog.String("request_id", id),
		slog.String("purpose", PurposeFrom(ctx)),
		slog.String("model", l.inner.ModelID()),
		slog.Int64("latency_ms", time.Since(start).Milliseconds()),
	}
	if resp != nil {
		attrs = append(attrs,
			slog.Int("input_tokens", resp.Usage.InputTokens),
			slog.Int("output_tokens", resp.Usage.OutputTokens),
		)
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		l.log.Warn("llm call failed", attrs...)
		return resp, err
	}

	l.log.Debug("llm call", attrs...)
	return resp, nil
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
