package store

import (
	"context"
	"log/slog"
	"time"

	"github.com/amishk599/careernav/internal/model"
)

// PruneTask deletes snapshots older than a cutoff each time it runs.
type PruneTask struct {
	store     model.SnapshotStore
	olderThan time.Duration
	logger    *slog.Logger
}

// NewPruneTask returns a scheduler task that prunes store.
func NewPruneTask(store model.SnapshotStore, olderThan time.Duration, logger *slog.Logger) *PruneTask {
	return &PruneTask{store: store, olderThan: olderThan, logger: logger}
}

func (t *PruneTask) Name() string { return "cache-prune" }

// Run deletes stale rows once and logs how many went.
func (t *PruneTask) Run(_ context.Context) error {
	deleted, err := t.store.Cleanup(t.olderThan)
	if err != nil {
		return err
	}
	t.logger.Info("pruned snapshot cache", "deleted", deleted, "older_than", t.olderThan.String())
	return nil
}
