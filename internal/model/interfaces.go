package model

import (
	"context"
	"time"
)

// RecommendationSource turns a profile into a Snapshot. Implementations talk
// to the external recommendation engine (HTTP, LLM) or read fixtures.
type RecommendationSource interface {
	Recommend(ctx context.Context, profile UserProfile) (*Snapshot, error)
}

// SnapshotStore caches snapshots under an opaque key.
type SnapshotStore interface {
	Get(key string, maxAge time.Duration) (*Snapshot, error) // nil, nil on miss
	Put(key string, snap *Snapshot) error
	Cleanup(olderThan time.Duration) (int64, error)
}

// EventRecorder receives user selection events from the dashboard.
type EventRecorder interface {
	Record(ev Event)
}

// EventKind names a dashboard interaction.
type EventKind string

const (
	EventTabChanged    EventKind = "tab_changed"
	EventJobSelected   EventKind = "job_selected"
	EventFilterChanged EventKind = "filter_changed"
	EventSortChanged   EventKind = "sort_changed"
	EventApplyOpened   EventKind = "apply_opened"
	EventProfileReset  EventKind = "profile_reset"
	EventProfileSubmit EventKind = "profile_submitted"
)

// Event is a single selection change. Value holds the new tab, job id,
// filter or sort option depending on Kind.
type Event struct {
	Kind  EventKind
	Value string
	At    time.Time
}
