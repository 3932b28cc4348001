package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/driftsync/driftsync/internal/client/storage"
	"github.com/driftsync/driftsync/internal/vclock"
)

var (
	// Metadata keys
	keyVectorClock = []byte("vector_clock")
	keyLastSync    = []byte("last_sync")
	keyDeviceID    = []byte("device_id")
)

// SaveVectorClock persists the local vector clock
func (s *Storage) SaveVectorClock(ctx context.Context, clock vclock.Clock) error {
	data, err := json.Marshal(clock)
	if err != nil {
		return fmt.Errorf("failed to marshal vector clock: %w", err)
	}
	return s.putMetadata(keyVectorClock, data)
}

// GetVectorClock returns the persisted vector clock
func (s *Storage) GetVectorClock(ctx context.Context) (vclock.Clock, error) {
	data, err := s.getMetadata(keyVectorClock)
	if err != nil {
		return nil, err
	}

	clock := vclock.New()
	if err := json.Unmarshal(data, &clock); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vector clock: %w", err)
	}

	return clock, nil
}

// SaveLastSync persists the timestamp of the last successful sync
func (s *Storage) SaveLastSync(ctx context.Context, ts time.Time) error {
	data, err := ts.MarshalText()
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	return s.putMetadata(keyLastSync, data)
}

// GetLastSync returns the timestamp of the last successful sync
func (s *Storage) GetLastSync(ctx context.Context) (time.Time, error) {
	data, err := s.getMetadata(keyLastSync)
	if err != nil {
		return time.Time{}, err
	}

	var ts time.Time
	if err := ts.UnmarshalText(data); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal timestamp: %w", err)
	}

	return ts, nil
}

// SaveDeviceID persists the device identifier
func (s *Storage) SaveDeviceID(ctx context.Context, deviceID string) error {
	return s.putMetadata(keyDeviceID, []byte(deviceID))
}

// GetDeviceID returns the persisted device identifier
func (s *Storage) GetDeviceID(ctx context.Context) (string, error) {
	data, err := s.getMetadata(keyDeviceID)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Storage) putMetadata(key, value []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMetadata).Put(key, value)
	})
	if err != nil {
		return fmt.Errorf("metadata transaction failed: %w", err)
	}

	return nil
}

func (s *Storage) getMetadata(key []byte) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMetadata).Get(key)
		if data == nil {
			return storage.ErrMetadataNotFound
		}
		value = append([]byte(nil), data...)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return value, nil
}
