// Package source provides the recommendation collaborators the dashboard
// consumes: fixture files, an HTTP engine, and an OpenAI-compatible model,
// plus a caching decorator.
package source

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amishk599/careernav/internal/model"
)

// Ensure FileSource implements model.RecommendationSource.
var _ model.RecommendationSource = (*FileSource)(nil)

// FileSource serves a fixed snapshot from a YAML or JSON file regardless of
// the profile. Useful for demos and offline work.
type FileSource struct {
	path string
}

// NewFileSource returns a source reading path on every call.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Recommend reads and decodes the snapshot file.
func (s *FileSource) Recommend(ctx context.Context, _ model.UserProfile) (*model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	var snap model.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot file %s: %w", s.path, err)
	}
	normalize(&snap, time.Now())
	return &snap, nil
}

// LoadProfile reads a YAML or JSON profile file.
func LoadProfile(path string) (model.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.UserProfile{}, fmt.Errorf("read profile: %w", err)
	}
	var p model.UserProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return model.UserProfile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}
