// Package storage определяет контракт серверного хранилища изменений.
package storage

import (
	"context"
	"time"

	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/vclock"
)

// Conflict is a change the server refused to apply because its vector
// clock is concurrent with the already accepted history of the resource.
// The change is kept verbatim until a client resolves it.
type Conflict struct {
	CreatedAt  time.Time
	ResolvedAt *time.Time
	Change     *models.Change
	Reason     string
	Strategy   string
	Resolved   bool
}

// ChangeStorage stores accepted changes, pending conflicts and the
// merged server vector clock.
//
//go:generate moq -out changes_mock.go . ChangeStorage
type ChangeStorage interface {
	// SaveChange persists an accepted change. Saving a change whose ID
	// is already stored is a no-op, so retried pushes stay idempotent.
	SaveChange(ctx context.Context, change *models.Change) error

	// GetChange returns a stored change by ID.
	// Returns ErrChangeNotFound if it was never accepted.
	GetChange(ctx context.Context, id string) (*models.Change, error)

	// ResourceClock returns the pointwise maximum of the vector clocks
	// of all accepted changes for the resource. An unknown resource
	// yields an empty clock.
	ResourceClock(ctx context.Context, resourceType, resourceID string) (vclock.Clock, error)

	// SaveConflict stores a rejected change for later resolution.
	SaveConflict(ctx context.Context, change *models.Change, reason string) error

	// GetConflict returns a pending conflict by the ID of its change.
	// Returns ErrConflictNotFound if there is no open conflict.
	GetConflict(ctx context.Context, changeID string) (*Conflict, error)

	// ResolveConflict closes a pending conflict. Strategy "local"
	// promotes the stored change into the accepted history, "remote"
	// discards it. Returns ErrConflictNotFound for unknown or already
	// resolved conflicts.
	ResolveConflict(ctx context.Context, changeID, strategy string) error

	// ServerClock returns the merged vector clock of everything the
	// server has accepted.
	ServerClock(ctx context.Context) (vclock.Clock, error)

	// MergeServerClock merges the given clock into the server clock
	// and returns the result.
	MergeServerClock(ctx context.Context, clock vclock.Clock) (vclock.Clock, error)

	// Close releases the underlying database.
	Close() error
}
