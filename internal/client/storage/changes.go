package storage

import (
	"context"
	"time"

	"github.com/driftsync/driftsync/internal/models"
)

//go:generate moq -out changes_mock.go . ChangeStore

// ChangeStore defines interface for the durable client change log.
// Implementations must preserve insertion order: ChangesForResource,
// PendingChanges and AllChanges return changes in the order they were saved.
type ChangeStore interface {
	// SaveChange appends a change to the log
	SaveChange(ctx context.Context, change *models.Change) error

	// GetChange retrieves a change by ID
	// Returns ErrChangeNotFound if change doesn't exist
	GetChange(ctx context.Context, id string) (*models.Change, error)

	// ChangesForResource returns the change history of a single resource
	ChangesForResource(ctx context.Context, resourceID, resourceType string) ([]*models.Change, error)

	// PendingChanges returns changes not yet confirmed by the server
	// (AppliedAt is nil)
	PendingChanges(ctx context.Context) ([]*models.Change, error)

	// MarkApplied sets AppliedAt on a change after a confirmed round trip
	// Returns ErrChangeNotFound if change doesn't exist
	MarkApplied(ctx context.Context, id string, appliedAt time.Time) error

	// AllChanges returns every known change
	AllChanges(ctx context.Context) ([]*models.Change, error)

	// Clear removes all changes from storage
	// Used for testing and full re-sync
	Clear(ctx context.Context) error
}
