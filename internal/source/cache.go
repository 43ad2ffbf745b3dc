package source

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/amishk599/careernav/internal/model"
)

// Ensure CachedSource implements model.RecommendationSource.
var _ model.RecommendationSource = (*CachedSource)(nil)

// CachedSource serves snapshots from a SnapshotStore when one was fetched for
// the same profile from the same engine within ttl, and stores fresh ones
// otherwise. Store failures are logged and never fail the call.
type CachedSource struct {
	inner    model.RecommendationSource
	identity string
	store    model.SnapshotStore
	ttl      time.Duration
	logger   *slog.Logger
}

// NewCachedSource wraps inner with a read-through cache. identity names the
// engine behind inner (see SourceIdentity); entries written under one
// identity are never served for another, even when stores are shared.
func NewCachedSource(inner model.RecommendationSource, identity string, store model.SnapshotStore, ttl time.Duration, logger *slog.Logger) *CachedSource {
	return &CachedSource{inner: inner, identity: identity, store: store, ttl: ttl, logger: logger}
}

// SourceIdentity joins the settings that decide which engine answers.
func SourceIdentity(sourceType, url, modelName string) string {
	return strings.Join([]string{sourceType, url, modelName}, "|")
}

// Recommend returns a cached snapshot for profile or fetches one.
func (s *CachedSource) Recommend(ctx context.Context, profile model.UserProfile) (*model.Snapshot, error) {
	key := Fingerprint(s.identity, profile)

	cached, err := s.store.Get(key, s.ttl)
	if err != nil {
		s.logger.Warn("snapshot cache read failed", "key", key, "error", err)
	}
	if cached != nil {
		s.logger.Debug("snapshot cache hit", "key", key, "fetched_at", cached.FetchedAt)
		return cached, nil
	}

	snap, err := s.inner.Recommend(ctx, profile)
	if err != nil {
		return nil, err
	}
	if err := s.store.Put(key, snap); err != nil {
		s.logger.Warn("snapshot cache write failed", "key", key, "error", err)
	}
	return snap, nil
}

// Fingerprint is a stable hex SHA-256 of the engine identity and the
// profile's JSON encoding.
func Fingerprint(identity string, profile model.UserProfile) string {
	data, _ := json.Marshal(profile)
	h := sha256.New()
	h.Write([]byte(identity))
	h.Write([]byte{0})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
