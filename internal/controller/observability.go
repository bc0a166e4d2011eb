package controller

import (
	"io"
	"log/slog"
)

// MutationEvent captures lightweight telemetry for one controller entry
// point: what was attempted, how many primitive commands it produced, and
// whether it was absorbed as a no-op.
type MutationEvent struct {
	Action   string
	Label    string
	Commands int
	NoOp     bool
	Reason   string
}

// MutationObserver receives mutation events.
type MutationObserver interface {
	ObserveMutation(event MutationEvent)
}

// NoopMutationObserver ignores all events.
type NoopMutationObserver struct{}

func (NoopMutationObserver) ObserveMutation(MutationEvent) {}

type logMutationObserver struct {
	logger *slog.Logger
}

// NewLogMutationObserver writes mutation events to the provided writer.
// Absorbed no-ops (stale ids, unchanged edits) log at debug level since
// they reflect benign UI staleness, not corruption.
func NewLogMutationObserver(w io.Writer) MutationObserver {
	if w == nil {
		return NoopMutationObserver{}
	}
	return &logMutationObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (o *logMutationObserver) ObserveMutation(event MutationEvent) {
	attrs := []any{
		"action", event.Action,
		"label", event.Label,
		"commands", event.Commands,
	}
	if event.NoOp {
		attrs = append(attrs, "reason", event.Reason)
		o.logger.Debug("mutation_noop", attrs...)
		return
	}
	o.logger.Info("mutation", attrs...)
}

func observerOrNoop(observers []MutationObserver) MutationObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopMutationObserver{}
}
