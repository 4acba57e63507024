package recorder

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var errClosed = errors.New("recorder closed")

// LogRecorder writes one structured log entry per event. Nothing is persisted.
type LogRecorder struct {
	log    *slog.Logger
	mu     sync.Mutex
	closed bool
}

// NewLogRecorder creates a recorder that logs to the given logger.
func NewLogRecorder(log *slog.Logger) *LogRecorder {
	if log == nil {
		log = slog.Default()
	}
	return &LogRecorder{log: log.With("component", "recorder")}
}

func (r *LogRecorder) RecordQuote(evt *QuoteEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errClosed
	}

	p := evt.Quote.Package
	r.log.LogAttrs(context.Background(), slog.LevelInfo, "quote issued",
		slog.String("outcome", "QUOTED"),
		slog.Float64("weight", p.Weight),
		slog.Float64("width", p.Width),
		slog.Float64("height", p.Height),
		slog.Float64("length", p.Length),
		slog.Float64("cost", evt.Quote.Cost),
	)
	return nil
}

func (r *LogRecorder) RecordRejection(evt *RejectionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errClosed
	}

	p := evt.Package
	r.log.LogAttrs(context.Background(), slog.LevelInfo, "package rejected",
		slog.String("outcome", string(evt.Outcome)),
		slog.Float64("weight", p.Weight),
		slog.Float64("width", p.Width),
		slog.Float64("height", p.Height),
		slog.Float64("length", p.Length),
		slog.String("reason", evt.Message),
	)
	return nil
}

func (r *LogRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
