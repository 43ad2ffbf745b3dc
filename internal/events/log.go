// Package events records dashboard selection changes.
package events

import (
	"log/slog"
	"sync"

	"github.com/amishk599/careernav/internal/model"
)

// Ensure LogRecorder implements model.EventRecorder.
var _ model.EventRecorder = (*LogRecorder)(nil)

// LogRecorder writes selection events to the given logger as structured messages.
type LogRecorder struct {
	logger *slog.Logger

	mu     sync.Mutex
	counts map[model.EventKind]int
}

// NewLogRecorder returns a recorder that logs each event via slog.
func NewLogRecorder(logger *slog.Logger) *LogRecorder {
	return &LogRecorder{logger: logger, counts: make(map[model.EventKind]int)}
}

// Record logs ev with its kind, value and timestamp.
func (r *LogRecorder) Record(ev model.Event) {
	r.mu.Lock()
	r.counts[ev.Kind]++
	r.mu.Unlock()

	args := []any{"kind", string(ev.Kind), "value", ev.Value}
	if !ev.At.IsZero() {
		args = append(args, "at", ev.At)
	}
	r.logger.Info("dashboard event", args...)
}

// Count reports how many events of kind were recorded.
func (r *LogRecorder) Count(kind model.EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[kind]
}
