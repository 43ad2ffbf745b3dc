package store

import (
	"time"

	"github.com/amishk599/careernav/internal/model"
)

// NopStore is used when caching is disabled. Every Get misses and Put is dropped.
type NopStore struct{}

func NewNopStore() *NopStore { return &NopStore{} }

func (s *NopStore) Get(key string, maxAge time.Duration) (*model.Snapshot, error) { return nil, nil }
func (s *NopStore) Put(key string, snap *model.Snapshot) error                    { return nil }
func (s *NopStore) Cleanup(olderThan time.Duration) (int64, error)                { return 0, nil }
