package storage

import (
	"context"
	"time"

	"github.com/driftsync/driftsync/internal/vclock"
)

//go:generate moq -out metadata_mock.go . MetadataStore

// MetadataStore defines interface for client sync metadata
type MetadataStore interface {
	// SaveVectorClock persists the local vector clock
	SaveVectorClock(ctx context.Context, clock vclock.Clock) error

	// GetVectorClock returns the persisted vector clock
	// Returns ErrMetadataNotFound if no clock was saved yet
	GetVectorClock(ctx context.Context) (vclock.Clock, error)

	// SaveLastSync persists the timestamp of the last successful sync
	SaveLastSync(ctx context.Context, ts time.Time) error

	// GetLastSync returns the timestamp of the last successful sync
	// Returns ErrMetadataNotFound if no sync has completed yet
	GetLastSync(ctx context.Context) (time.Time, error)

	// SaveDeviceID persists the device identifier
	SaveDeviceID(ctx context.Context, deviceID string) error

	// GetDeviceID returns the persisted device identifier
	// Returns ErrMetadataNotFound if device was never registered
	GetDeviceID(ctx context.Context) (string, error)
}
