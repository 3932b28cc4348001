package cli

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftsync/driftsync/internal/client/storage"
	"github.com/driftsync/driftsync/internal/engine"
	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/tracker"
	"github.com/driftsync/driftsync/internal/vclock"
	"github.com/driftsync/driftsync/pkg/api"
)

// newTestCli собирает CLI поверх трекера с in-memory хранилищем
// и движка с подменным транспортом
func newTestCli(t *testing.T, transport engine.Transport) *Cli {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var mu sync.Mutex
	var changes []*models.Change

	changeStore := &storage.ChangeStoreMock{
		SaveChangeFunc: func(ctx context.Context, change *models.Change) error {
			mu.Lock()
			defer mu.Unlock()
			changes = append(changes, change.Clone())
			return nil
		},
		ChangesForResourceFunc: func(ctx context.Context, resourceID, resourceType string) ([]*models.Change, error) {
			mu.Lock()
			defer mu.Unlock()
			matched := []*models.Change{}
			for _, change := range changes {
				if change.ResourceID == resourceID && change.ResourceType == resourceType {
					matched = append(matched, change.Clone())
				}
			}
			return matched, nil
		},
		PendingChangesFunc: func(ctx context.Context) ([]*models.Change, error) {
			mu.Lock()
			defer mu.Unlock()
			pending := []*models.Change{}
			for _, change := range changes {
				if !change.IsApplied() {
					pending = append(pending, change.Clone())
				}
			}
			return pending, nil
		},
		MarkAppliedFunc: func(ctx context.Context, id string, appliedAt time.Time) error {
			mu.Lock()
			defer mu.Unlock()
			for _, change := range changes {
				if change.ID == id {
					ts := appliedAt
					change.AppliedAt = &ts
				}
			}
			return nil
		},
	}

	metaStore := &storage.MetadataStoreMock{
		GetVectorClockFunc: func(ctx context.Context) (vclock.Clock, error) {
			return nil, storage.ErrMetadataNotFound
		},
		SaveVectorClockFunc: func(ctx context.Context, clock vclock.Clock) error {
			return nil
		},
		SaveLastSyncFunc: func(ctx context.Context, ts time.Time) error {
			return nil
		},
	}

	tr, err := tracker.New(context.Background(), "device-a", "user-1", changeStore, metaStore, logger)
	require.NoError(t, err)

	eng := engine.New(tr, transport, engine.Config{}, logger)

	return New(tr, eng)
}

func okTransport() *engine.TransportMock {
	return &engine.TransportMock{
		SyncChangesFunc: func(ctx context.Context, req api.SyncChangesRequest) (*api.SyncChangesResponse, error) {
			return &api.SyncChangesResponse{VectorClock: req.VectorClock}, nil
		},
		ResolveConflictFunc: func(ctx context.Context, req api.ResolveConflictRequest) error {
			return nil
		},
	}
}

func TestRunRecord(t *testing.T) {
	c := newTestCli(t, okTransport())
	ctx := context.Background()

	err := c.runRecord(ctx, []string{
		"-op", "create",
		"-resource", "res-1",
		"-value", `{"title":"shopping list"}`,
	})
	require.NoError(t, err)

	pending, err := c.tracker.PendingChanges(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.OpCreate, pending[0].Operation)
	assert.Equal(t, int64(1), pending[0].Version)
}

func TestRunRecord_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing resource", []string{"-op", "update", "-value", `{"a":1}`}},
		{"invalid operation", []string{"-op", "rename", "-resource", "res-1", "-value", `{"a":1}`}},
		{"invalid value json", []string{"-op", "update", "-resource", "res-1", "-value", `{broken`}},
		{"update without value", []string{"-op", "update", "-resource", "res-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCli(t, okTransport())

			err := c.runRecord(context.Background(), tt.args)
			assert.Error(t, err)
		})
	}
}

func TestRunHistoryAndPending(t *testing.T) {
	c := newTestCli(t, okTransport())
	ctx := context.Background()

	require.NoError(t, c.runRecord(ctx, []string{"-op", "create", "-resource", "res-1", "-value", `{"a":1}`}))
	require.NoError(t, c.runRecord(ctx, []string{"-op", "update", "-resource", "res-1", "-value", `{"a":2}`}))

	require.NoError(t, c.runHistory(ctx, []string{"-resource", "res-1"}))
	require.NoError(t, c.runPending(ctx))

	assert.Error(t, c.runHistory(ctx, nil), "history requires -resource")
}

func TestRunSync_MarksChangesApplied(t *testing.T) {
	c := newTestCli(t, okTransport())
	ctx := context.Background()

	require.NoError(t, c.runRecord(ctx, []string{"-op", "create", "-resource", "res-1", "-value", `{"a":1}`}))
	require.NoError(t, c.runSync(ctx))

	pending, err := c.tracker.PendingChanges(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending, "synced changes leave the pending queue")
}

func TestRunResolve(t *testing.T) {
	transport := okTransport()
	c := newTestCli(t, transport)
	ctx := context.Background()

	assert.Error(t, c.runResolve(ctx, []string{"-strategy", "local"}), "resolve requires -change")

	require.NoError(t, c.runResolve(ctx, []string{"-change", "c1", "-strategy", "local"}))
	require.Len(t, transport.ResolveConflictCalls(), 1)
	assert.Equal(t, "c1", transport.ResolveConflictCalls()[0].Req.ChangeID)
}

func TestRunMerge(t *testing.T) {
	c := newTestCli(t, okTransport())
	ctx := context.Background()

	err := c.runMerge(ctx, []string{
		"-base", `{"title":"a"}`,
		"-local", `{"title":"b"}`,
		"-remote", `{"title":"c"}`,
		"-strategy", "merge",
	})
	require.NoError(t, err)

	assert.Error(t, c.runMerge(ctx, []string{"-strategy", "shrug"}), "unknown strategy is rejected")
	assert.Error(t, c.runMerge(ctx, []string{"-local", `{broken`}), "malformed JSON is rejected")
}

func TestRunValidateAndRepair(t *testing.T) {
	c := newTestCli(t, okTransport())
	ctx := context.Background()

	require.NoError(t, c.runRecord(ctx, []string{"-op", "create", "-resource", "res-1", "-value", `{"a":1}`}))

	require.NoError(t, c.runValidate(ctx, []string{"-resource", "res-1"}))
	require.NoError(t, c.runRepair(ctx, []string{"-resource", "res-1"}))

	assert.Error(t, c.runValidate(ctx, []string{"-resource", "ghost"}), "resource without history cannot be validated")
}

func TestRunStatus(t *testing.T) {
	c := newTestCli(t, okTransport())

	require.NoError(t, c.runStatus(context.Background()))
}
