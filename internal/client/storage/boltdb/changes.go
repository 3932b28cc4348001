package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/driftsync/driftsync/internal/client/storage"
	"github.com/driftsync/driftsync/internal/models"
)

// SaveChange appends a change to the log.
// Записи ключуются монотонным sequence number, чтобы итерация по bucket
// возвращала изменения в порядке сохранения; отдельный индекс отображает
// ID изменения в sequence.
func (s *Storage) SaveChange(ctx context.Context, change *models.Change) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		changes := tx.Bucket(bucketChanges)
		byID := tx.Bucket(bucketChangesByID)

		seq, err := changes.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}

		key := seqKey(seq)
		if err := changes.Put(key, data); err != nil {
			return fmt.Errorf("failed to save change: %w", err)
		}
		if err := byID.Put([]byte(change.ID), key); err != nil {
			return fmt.Errorf("failed to index change: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetChange retrieves a change by ID
func (s *Storage) GetChange(ctx context.Context, id string) (*models.Change, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var change *models.Change

	err := s.db.View(func(tx *bbolt.Tx) error {
		key := tx.Bucket(bucketChangesByID).Get([]byte(id))
		if key == nil {
			return storage.ErrChangeNotFound
		}

		data := tx.Bucket(bucketChanges).Get(key)
		if data == nil {
			return storage.ErrChangeNotFound
		}

		change = &models.Change{}
		if err := json.Unmarshal(data, change); err != nil {
			return fmt.Errorf("failed to unmarshal change: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return change, nil
}

// ChangesForResource returns the change history of a single resource
// in insertion order
func (s *Storage) ChangesForResource(ctx context.Context, resourceID, resourceType string) ([]*models.Change, error) {
	return s.filterChanges(func(change *models.Change) bool {
		return change.ResourceID == resourceID && change.ResourceType == resourceType
	})
}

// PendingChanges returns changes without AppliedAt in insertion order
func (s *Storage) PendingChanges(ctx context.Context) ([]*models.Change, error) {
	return s.filterChanges(func(change *models.Change) bool {
		return change.AppliedAt == nil
	})
}

// AllChanges returns every known change in insertion order
func (s *Storage) AllChanges(ctx context.Context) ([]*models.Change, error) {
	return s.filterChanges(func(*models.Change) bool { return true })
}

// MarkApplied sets AppliedAt on a change
func (s *Storage) MarkApplied(ctx context.Context, id string, appliedAt time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		key := tx.Bucket(bucketChangesByID).Get([]byte(id))
		if key == nil {
			return storage.ErrChangeNotFound
		}

		changes := tx.Bucket(bucketChanges)
		data := changes.Get(key)
		if data == nil {
			return storage.ErrChangeNotFound
		}

		var change models.Change
		if err := json.Unmarshal(data, &change); err != nil {
			return fmt.Errorf("failed to unmarshal change: %w", err)
		}

		change.AppliedAt = &appliedAt

		updated, err := json.Marshal(&change)
		if err != nil {
			return fmt.Errorf("failed to marshal change: %w", err)
		}

		if err := changes.Put(key, updated); err != nil {
			return fmt.Errorf("failed to save change: %w", err)
		}

		return nil
	})

	if err != nil {
		if err == storage.ErrChangeNotFound {
			return err
		}
		return fmt.Errorf("mark applied transaction failed: %w", err)
	}

	return nil
}

// Clear removes all changes from storage
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketChanges, bucketChangesByID} {
			if err := tx.DeleteBucket(name); err != nil && err != bbolt.ErrBucketNotFound {
				return fmt.Errorf("failed to delete bucket: %w", err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to create bucket: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("clear transaction failed: %w", err)
	}

	return nil
}

// filterChanges итерирует по журналу в порядке sequence и возвращает
// изменения, прошедшие фильтр
func (s *Storage) filterChanges(keep func(*models.Change) bool) ([]*models.Change, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var changes []*models.Change

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChanges).ForEach(func(k, v []byte) error {
			var change models.Change
			if err := json.Unmarshal(v, &change); err != nil {
				return fmt.Errorf("failed to unmarshal change: %w", err)
			}

			if keep(&change) {
				changes = append(changes, &change)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to iterate changes: %w", err)
	}

	return changes, nil
}

// seqKey кодирует sequence number в big-endian ключ, сохраняющий порядок
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
