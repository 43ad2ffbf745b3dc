package career

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amishk599/careernav/internal/model"
)

// Session is the seam between the UI and the recommendation collaborator.
// It owns the submitted profile and the snapshot fetched for it.
type Session struct {
	source   model.RecommendationSource
	recorder model.EventRecorder
	logger   *slog.Logger

	mu       sync.Mutex
	profile  *model.UserProfile
	snapshot *model.Snapshot
	loading  bool
}

// NewSession creates a session that fetches through source. recorder may be nil.
func NewSession(source model.RecommendationSource, recorder model.EventRecorder, logger *slog.Logger) *Session {
	return &Session{source: source, recorder: recorder, logger: logger}
}

// Submit replaces the profile and fetches a fresh snapshot for it. On error
// the previous state is left untouched.
func (s *Session) Submit(ctx context.Context, profile model.UserProfile) (*model.Snapshot, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	start := time.Now()
	snap, err := s.source.Recommend(ctx, profile)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		return nil, fmt.Errorf("fetching recommendations: %w", err)
	}
	if snap == nil {
		snap = &model.Snapshot{}
	}

	p := profile
	s.profile = &p
	s.snapshot = snap

	s.logger.Info("recommendations received",
		"jobs", len(snap.JobRecommendations),
		"skill_gaps", len(snap.SkillGaps),
		"certifications", len(snap.Certifications),
		"insights", len(snap.CareerInsights),
		"elapsed", time.Since(start).String(),
	)
	s.record(model.EventProfileSubmit, FirstName(profile.Name))
	return snap, nil
}

// Reset forgets the profile and its snapshot.
func (s *Session) Reset() {
	s.mu.Lock()
	s.profile = nil
	s.snapshot = nil
	s.mu.Unlock()
	s.record(model.EventProfileReset, "")
}

// Profile returns the submitted profile, or ErrNoProfile.
func (s *Session) Profile() (model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return model.UserProfile{}, model.ErrNoProfile
	}
	return *s.profile, nil
}

// Snapshot returns the last snapshot; nil before the first successful submit.
func (s *Session) Snapshot() *model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// HasSubmittedProfile reports whether a profile is currently active.
func (s *Session) HasSubmittedProfile() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil
}

// Loading reports whether a Submit is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) record(kind model.EventKind, value string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(model.Event{Kind: kind, Value: value, At: time.Now()})
}
