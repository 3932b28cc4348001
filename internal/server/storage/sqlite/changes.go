package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/server/storage"
	"github.com/driftsync/driftsync/internal/vclock"
)

// SaveChange persists an accepted change
// Changes are immutable, re-saving an already known ID is a no-op
func (s *Storage) SaveChange(ctx context.Context, change *models.Change) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	clock, err := json.Marshal(change.VectorClock)
	if err != nil {
		return fmt.Errorf("failed to marshal vector clock: %w", err)
	}

	query := `
		INSERT INTO changes (
			id, resource_id, resource_type, operation,
			device_id, user_id, version, hash,
			vector_clock, payload, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`

	_, err = s.db.ExecContext(ctx, query,
		change.ID,
		change.ResourceID,
		change.ResourceType,
		string(change.Operation),
		change.DeviceID,
		change.UserID,
		change.Version,
		change.Hash,
		string(clock),
		string(payload),
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert change: %w", err)
	}

	return nil
}

// GetChange retrieves an accepted change by ID
// Returns ErrChangeNotFound if the change was never accepted
func (s *Storage) GetChange(ctx context.Context, id string) (*models.Change, error) {
	query := `SELECT payload FROM changes WHERE id = ?`

	var payload string
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrChangeNotFound
		}
		return nil, fmt.Errorf("failed to get change: %w", err)
	}

	change := &models.Change{}
	if err := json.Unmarshal([]byte(payload), change); err != nil {
		return nil, fmt.Errorf("failed to unmarshal change: %w", err)
	}

	return change, nil
}

// ResourceClock merges the vector clocks of all accepted changes
// for the resource. Unknown resources yield an empty clock.
func (s *Storage) ResourceClock(ctx context.Context, resourceType, resourceID string) (vclock.Clock, error) {
	query := `
		SELECT vector_clock
		FROM changes
		WHERE resource_type = ? AND resource_id = ?
	`

	rows, err := s.db.QueryContext(ctx, query, resourceType, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query resource clocks: %w", err)
	}
	defer rows.Close()

	merged := vclock.New()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan vector clock: %w", err)
		}

		clock := vclock.New()
		if err := json.Unmarshal([]byte(raw), &clock); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vector clock: %w", err)
		}

		merged.Merge(clock)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return merged, nil
}

// SaveConflict stores a rejected change for later resolution
func (s *Storage) SaveConflict(ctx context.Context, change *models.Change, reason string) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	query := `
		INSERT INTO conflicts (
			change_id, resource_id, resource_type,
			payload, reason, resolved, created_at
		) VALUES (?, ?, ?, ?, ?, 0, ?)
		ON CONFLICT(change_id) DO NOTHING
	`

	_, err = s.db.ExecContext(ctx, query,
		change.ID,
		change.ResourceID,
		change.ResourceType,
		string(payload),
		reason,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert conflict: %w", err)
	}

	return nil
}

// GetConflict retrieves a pending conflict by the ID of its change
// Returns ErrConflictNotFound if there is no open conflict
func (s *Storage) GetConflict(ctx context.Context, changeID string) (*storage.Conflict, error) {
	query := `
		SELECT payload, reason, resolved, strategy, created_at, resolved_at
		FROM conflicts
		WHERE change_id = ?
	`

	var (
		payload    string
		resolved   int
		createdAt  int64
		resolvedAt sql.NullInt64
	)

	conflict := &storage.Conflict{}

	err := s.db.QueryRowContext(ctx, query, changeID).Scan(
		&payload,
		&conflict.Reason,
		&resolved,
		&conflict.Strategy,
		&createdAt,
		&resolvedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrConflictNotFound
		}
		return nil, fmt.Errorf("failed to get conflict: %w", err)
	}

	change := &models.Change{}
	if err := json.Unmarshal([]byte(payload), change); err != nil {
		return nil, fmt.Errorf("failed to unmarshal conflicted change: %w", err)
	}

	conflict.Change = change
	conflict.Resolved = resolved != 0
	conflict.CreatedAt = time.Unix(createdAt, 0)

	if resolvedAt.Valid {
		t := time.Unix(resolvedAt.Int64, 0)
		conflict.ResolvedAt = &t
	}

	return conflict, nil
}

// ResolveConflict closes a pending conflict
// Strategy "local" promotes the stored change into the accepted
// history, any other strategy discards it
func (s *Storage) ResolveConflict(ctx context.Context, changeID, strategy string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback после commit безопасен

	var payload string
	query := `SELECT payload FROM conflicts WHERE change_id = ? AND resolved = 0`

	if err := tx.QueryRowContext(ctx, query, changeID).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrConflictNotFound
		}
		return fmt.Errorf("failed to get conflict: %w", err)
	}

	if strategy == "local" {
		change := &models.Change{}
		if err := json.Unmarshal([]byte(payload), change); err != nil {
			return fmt.Errorf("failed to unmarshal conflicted change: %w", err)
		}

		clock, err := json.Marshal(change.VectorClock)
		if err != nil {
			return fmt.Errorf("failed to marshal vector clock: %w", err)
		}

		insert := `
			INSERT INTO changes (
				id, resource_id, resource_type, operation,
				device_id, user_id, version, hash,
				vector_clock, payload, created_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO NOTHING
		`

		_, err = tx.ExecContext(ctx, insert,
			change.ID,
			change.ResourceID,
			change.ResourceType,
			string(change.Operation),
			change.DeviceID,
			change.UserID,
			change.Version,
			change.Hash,
			string(clock),
			payload,
			time.Now().Unix(),
		)
		if err != nil {
			return fmt.Errorf("failed to promote conflicted change: %w", err)
		}

		if err := mergeClockTx(ctx, tx, change.VectorClock); err != nil {
			return err
		}
	}

	update := `
		UPDATE conflicts
		SET resolved = 1, strategy = ?, resolved_at = ?
		WHERE change_id = ?
	`

	if _, err := tx.ExecContext(ctx, update, strategy, time.Now().Unix(), changeID); err != nil {
		return fmt.Errorf("failed to mark conflict resolved: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ServerClock returns the merged vector clock of everything accepted
func (s *Storage) ServerClock(ctx context.Context) (vclock.Clock, error) {
	query := `SELECT device_id, counter FROM server_clock`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query server clock: %w", err)
	}
	defer rows.Close()

	clock := vclock.New()

	for rows.Next() {
		var deviceID string
		var counter int64

		if err := rows.Scan(&deviceID, &counter); err != nil {
			return nil, fmt.Errorf("failed to scan server clock: %w", err)
		}

		clock[deviceID] = counter
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return clock, nil
}

// MergeServerClock merges the given clock into the server clock
// and returns the result
func (s *Storage) MergeServerClock(ctx context.Context, clock vclock.Clock) (vclock.Clock, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback после commit безопасен

	if err := mergeClockTx(ctx, tx, clock); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return s.ServerClock(ctx)
}

// mergeClockTx поэлементно поднимает server_clock до максимума
func mergeClockTx(ctx context.Context, tx *sql.Tx, clock vclock.Clock) error {
	query := `
		INSERT INTO server_clock (device_id, counter)
		VALUES (?, ?)
		ON CONFLICT(device_id) DO UPDATE
		SET counter = MAX(counter, excluded.counter)
	`

	for deviceID, counter := range clock {
		if _, err := tx.ExecContext(ctx, query, deviceID, counter); err != nil {
			return fmt.Errorf("failed to merge server clock: %w", err)
		}
	}

	return nil
}
