// Package engine drives one utterance through the full intake pipeline:
// pre-interpretation gate, natural-language interpretation, then the
// registry action. Every input, however malformed, yields a determinate
// Result; nothing here ever propagates a fault to the caller.
package engine

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/leadvane/internal/intake"
	"github.com/abhisek/leadvane/internal/metrics"
	"github.com/abhisek/leadvane/internal/registry"
)

// MinCommandLength is the pre-interpretation gate. Anything shorter is
// rejected before the interpreter is consulted.
const MinCommandLength = 3

// ParseFailureMessage is the fixed corrective reply for input the
// interpreter could not turn into a command.
const ParseFailureMessage = "Couldn't parse that. Include a name and an email in the form 'Name [email@company.com]'."

// RejectedMessage is the reply for input that fails the length gate.
const RejectedMessage = "Command is too short. Tell me who to add or delete."

// Status classifies the outcome of processing one utterance. The registry
// statuses pass through unchanged; the first two originate here.
type Status string

const (
	StatusRejected        Status = "rejected"
	StatusUninterpretable Status = "uninterpretable"
	StatusAdded           Status = Status(registry.StatusAdded)
	StatusExists          Status = Status(registry.StatusExists)
	StatusDeleted         Status = Status(registry.StatusDeleted)
	StatusNotFound        Status = Status(registry.StatusNotFound)
)

// Result is the determinate outcome of processing one utterance.
type Result struct {
	Status  Status
	Message string
	Record  *registry.Record
}

// Engine wires the interpreter and the registry together.
type Engine struct {
	interp  intake.Interpreter
	reg     *registry.Registry
	metrics *metrics.Metrics
	log     *slog.Logger
}

// New creates an Engine. Metrics may be nil when no collection is wanted.
func New(interp intake.Interpreter, reg *registry.Registry, m *metrics.Metrics, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{interp: interp, reg: reg, metrics: m, log: log}
}

// Registry exposes the engine's store for read-only collaborators.
func (e *Engine) Registry() *registry.Registry { return e.reg }

// Process runs one utterance to completion.
func (e *Engine) Process(ctx context.Context, rawText string) Result {
	text := strings.TrimSpace(rawText)
	if len(text) < MinCommandLength {
		e.count("none", StatusRejected)
		return Result{Status: StatusRejected, Message: RejectedMessage}
	}

	start := time.Now()
	cmd, err := e.interp.Interpret(ctx, text)
	if e.metrics != nil {
		e.metrics.ObserveInterpret(start)
	}
	if err != nil {
		if e.metrics != nil {
			e.metrics.InterpretFailed()
		}
		e.log.Warn("interpretation failed", slog.String("error", err.Error()))
		e.count("none", StatusUninterpretable)
		return Result{Status: StatusUninterpretable, Message: ParseFailureMessage}
	}

	var out registry.Outcome
	switch cmd.Action {
	case intake.ActionDelete:
		out = e.reg.Delete(cmd.Name)
	default:
		out = e.reg.Add(cmd.Name, cmd.Email, text)
	}

	e.count(string(cmd.Action), Status(out.Status))
	e.log.Info("command processed",
		slog.String("action", string(cmd.Action)),
		slog.String("status", string(out.Status)),
	)

	return Result{Status: Status(out.Status), Message: out.Message, Record: out.Record}
}

func (e *Engine) count(action string, status Status) {
	if e.metrics != nil {
		e.metrics.CommandProcessed(action, string(status))
	}
}
