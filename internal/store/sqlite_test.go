package store

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/amishk599/careernav/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSnapshot() *model.Snapshot {
	return &model.Snapshot{
		JobRecommendations: []model.JobRecommendation{{ID: "j1", Title: "Data Analyst", MatchPercentage: 82}},
		SkillGaps: []model.SkillGap{{JobID: "j1", MissingSkills: []model.MissingSkill{
			{Skill: "SQL", Category: model.CategoryTechnical, Importance: 8},
		}}},
		Certifications: []model.Certification{{ID: "c1", Name: "SQL Basics", Cost: "Free", Duration: "10 hours"}},
		FetchedAt:      time.Now(),
	}
}

func TestPutThenGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("key-1", sampleSnapshot()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get("key-1", time.Hour)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a cached snapshot")
	}
	if len(got.JobRecommendations) != 1 || got.JobRecommendations[0].Title != "Data Analyst" {
		t.Errorf("JobRecommendations = %+v", got.JobRecommendations)
	}
	if len(got.SkillGaps) != 1 || got.SkillGaps[0].MissingSkills[0].Importance != 8 {
		t.Errorf("SkillGaps = %+v", got.SkillGaps)
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Get("does-not-exist", 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("expected nil snapshot for unknown key")
	}
}

func TestGetStaleReturnsNil(t *testing.T) {
	s := newTestStore(t)
	snap := sampleSnapshot()
	snap.FetchedAt = time.Now().Add(-48 * time.Hour)
	if err := s.Put("old", snap); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := s.Get("old", 24*time.Hour)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Error("expected stale snapshot to miss")
	}

	got, err = s.Get("old", 0)
	if err != nil {
		t.Fatalf("Get any age: %v", err)
	}
	if got == nil {
		t.Error("expected zero maxAge to accept any age")
	}
}

func TestPutReplaces(t *testing.T) {
	s := newTestStore(t)

	first := sampleSnapshot()
	if err := s.Put("k", first); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	second := sampleSnapshot()
	second.JobRecommendations[0].Title = "Data Engineer"
	if err := s.Put("k", second); err != nil {
		t.Fatalf("second Put: %v", err)
	}

	n, err := s.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
	got, err := s.Get("k", 0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.JobRecommendations[0].Title != "Data Engineer" {
		t.Errorf("Title = %q, want replacement", got.JobRecommendations[0].Title)
	}
}

func TestCleanupRemovesOldKeepsFresh(t *testing.T) {
	s := newTestStore(t)

	old := sampleSnapshot()
	old.FetchedAt = time.Now().Add(-48 * time.Hour)
	if err := s.Put("old", old); err != nil {
		t.Fatalf("Put old: %v", err)
	}
	if err := s.Put("fresh", sampleSnapshot()); err != nil {
		t.Fatalf("Put fresh: %v", err)
	}

	removed, err := s.Cleanup(24 * time.Hour)
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	if got, _ := s.Get("old", 0); got != nil {
		t.Error("expected old snapshot to be cleaned up")
	}
	if got, _ := s.Get("fresh", 0); got == nil {
		t.Error("expected fresh snapshot to survive cleanup")
	}
}

func TestNopStoreAlwaysMisses(t *testing.T) {
	s := NewNopStore()
	if err := s.Put("k", sampleSnapshot()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get("k", 0)
	if err != nil || got != nil {
		t.Errorf("Get = %v, %v; want nil, nil", got, err)
	}
}

func TestPruneTaskRunsCleanup(t *testing.T) {
	s := newTestStore(t)

	old := sampleSnapshot()
	old.FetchedAt = time.Now().Add(-10 * 24 * time.Hour)
	if err := s.Put("old", old); err != nil {
		t.Fatalf("Put old: %v", err)
	}

	task := NewPruneTask(s, 7*24*time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if task.Name() != "cache-prune" {
		t.Errorf("Name = %q", task.Name())
	}
	if err := task.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if n, _ := s.Count(); n != 0 {
		t.Errorf("Count = %d after prune, want 0", n)
	}
}
