package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/server/storage"
	"github.com/driftsync/driftsync/internal/vclock"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func testChange(id, resourceID string, clock vclock.Clock) *models.Change {
	return &models.Change{
		ID:           id,
		Timestamp:    time.Now().UTC(),
		Operation:    models.OpUpdate,
		ResourceID:   resourceID,
		ResourceType: "note",
		NewValue:     map[string]any{"title": "v"},
		UserID:       "user-1",
		DeviceID:     "device-a",
		Version:      clock.Get("device-a"),
		VectorClock:  clock,
	}
}

func TestSaveAndGetChange(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	original := testChange("c1", "res-1", vclock.Clock{"device-a": 1})
	require.NoError(t, s.SaveChange(ctx, original))

	loaded, err := s.GetChange(ctx, "c1")
	require.NoError(t, err)

	assert.Equal(t, original.ID, loaded.ID)
	assert.Equal(t, original.Operation, loaded.Operation)
	assert.Equal(t, original.NewValue, loaded.NewValue)
	assert.Equal(t, original.VectorClock, loaded.VectorClock)
}

func TestSaveChange_Idempotent(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	change := testChange("c1", "res-1", vclock.Clock{"device-a": 1})
	require.NoError(t, s.SaveChange(ctx, change))
	require.NoError(t, s.SaveChange(ctx, change), "re-saving a known change is a no-op")

	clock, err := s.ResourceClock(ctx, "note", "res-1")
	require.NoError(t, err)
	assert.Equal(t, vclock.Clock{"device-a": 1}, clock)
}

func TestGetChange_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetChange(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrChangeNotFound)
}

func TestResourceClock(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	clock, err := s.ResourceClock(ctx, "note", "unknown")
	require.NoError(t, err)
	assert.Empty(t, clock, "unknown resource yields an empty clock")

	require.NoError(t, s.SaveChange(ctx, testChange("c1", "res-1", vclock.Clock{"device-a": 2})))
	require.NoError(t, s.SaveChange(ctx, testChange("c2", "res-1", vclock.Clock{"device-b": 3})))
	require.NoError(t, s.SaveChange(ctx, testChange("c3", "res-2", vclock.Clock{"device-c": 9})))

	clock, err = s.ResourceClock(ctx, "note", "res-1")
	require.NoError(t, err)
	assert.Equal(t, vclock.Clock{"device-a": 2, "device-b": 3}, clock,
		"resource clock merges all accepted change clocks")
}

func TestServerClockMerge(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	clock, err := s.ServerClock(ctx)
	require.NoError(t, err)
	assert.Empty(t, clock)

	merged, err := s.MergeServerClock(ctx, vclock.Clock{"device-a": 2, "device-b": 1})
	require.NoError(t, err)
	assert.Equal(t, vclock.Clock{"device-a": 2, "device-b": 1}, merged)

	// Поэлементный максимум, счетчики не понижаются
	merged, err = s.MergeServerClock(ctx, vclock.Clock{"device-a": 1, "device-c": 4})
	require.NoError(t, err)
	assert.Equal(t, vclock.Clock{"device-a": 2, "device-b": 1, "device-c": 4}, merged)
}

func TestConflictLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	change := testChange("c1", "res-1", vclock.Clock{"device-a": 1})
	require.NoError(t, s.SaveConflict(ctx, change, "concurrent update"))

	conflict, err := s.GetConflict(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "concurrent update", conflict.Reason)
	assert.False(t, conflict.Resolved)
	assert.Equal(t, "c1", conflict.Change.ID)

	// local продвигает изменение в принятую историю
	require.NoError(t, s.ResolveConflict(ctx, "c1", "local"))

	promoted, err := s.GetChange(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, change.NewValue, promoted.NewValue)

	serverClock, err := s.ServerClock(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), serverClock.Get("device-a"))

	conflict, err = s.GetConflict(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, conflict.Resolved)
	assert.Equal(t, "local", conflict.Strategy)
	assert.NotNil(t, conflict.ResolvedAt)
}

func TestResolveConflict_RemoteDiscards(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	change := testChange("c1", "res-1", vclock.Clock{"device-a": 1})
	require.NoError(t, s.SaveConflict(ctx, change, "concurrent update"))
	require.NoError(t, s.ResolveConflict(ctx, "c1", "remote"))

	_, err := s.GetChange(ctx, "c1")
	assert.ErrorIs(t, err, storage.ErrChangeNotFound, "discarded change never enters the history")

	conflict, err := s.GetConflict(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, conflict.Resolved)
}

func TestResolveConflict_NotFound(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.ResolveConflict(ctx, "missing", "local")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)

	// Повторное разрешение тоже дает not found
	change := testChange("c1", "res-1", vclock.Clock{"device-a": 1})
	require.NoError(t, s.SaveConflict(ctx, change, "concurrent update"))
	require.NoError(t, s.ResolveConflict(ctx, "c1", "remote"))

	err = s.ResolveConflict(ctx, "c1", "local")
	assert.ErrorIs(t, err, storage.ErrConflictNotFound)
}
