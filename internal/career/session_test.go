package career

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amishk599/careernav/internal/model"
)

type stubSource struct {
	snap  *model.Snapshot
	err   error
	calls int
}

func (s *stubSource) Recommend(_ context.Context, _ model.UserProfile) (*model.Snapshot, error) {
	s.calls++
	return s.snap, s.err
}

type captureRecorder struct {
	events []model.Event
}

func (c *captureRecorder) Record(ev model.Event) { c.events = append(c.events, ev) }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSession_SubmitThenReset(t *testing.T) {
	src := &stubSource{snap: &model.Snapshot{JobRecommendations: testJobs}}
	rec := &captureRecorder{}
	s := NewSession(src, rec, discardLogger())

	assert.False(t, s.HasSubmittedProfile())
	_, err := s.Profile()
	assert.ErrorIs(t, err, model.ErrNoProfile)

	snap, err := s.Submit(context.Background(), model.UserProfile{Name: "Priya Sharma"})
	require.NoError(t, err)
	assert.Len(t, snap.JobRecommendations, 2)
	assert.True(t, s.HasSubmittedProfile())
	assert.False(t, s.Loading())

	p, err := s.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", p.Name)
	assert.Same(t, snap, s.Snapshot())

	s.Reset()
	assert.False(t, s.HasSubmittedProfile())
	assert.Nil(t, s.Snapshot())

	require.Len(t, rec.events, 2)
	assert.Equal(t, model.EventProfileSubmit, rec.events[0].Kind)
	assert.Equal(t, "Priya", rec.events[0].Value)
	assert.Equal(t, model.EventProfileReset, rec.events[1].Kind)
}

func TestSession_SubmitErrorKeepsPreviousState(t *testing.T) {
	src := &stubSource{snap: &model.Snapshot{}}
	s := NewSession(src, nil, discardLogger())

	_, err := s.Submit(context.Background(), model.UserProfile{Name: "First"})
	require.NoError(t, err)

	src.err = errors.New("engine down")
	_, err = s.Submit(context.Background(), model.UserProfile{Name: "Second"})
	require.Error(t, err)

	p, err := s.Profile()
	require.NoError(t, err)
	assert.Equal(t, "First", p.Name)
	assert.False(t, s.Loading())
}

func TestSession_NilSnapshotBecomesEmpty(t *testing.T) {
	s := NewSession(&stubSource{}, nil, discardLogger())

	snap, err := s.Submit(context.Background(), model.UserProfile{Name: "A"})
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Empty(t, snap.JobRecommendations)
}
