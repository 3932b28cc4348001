// Package tracker ведет журнал локальных изменений: каждая мутация
// фиксируется как Change со снимком векторных часов устройства,
// из истории изменений выводятся версионированные снимки ресурсов.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/driftsync/driftsync/internal/client/storage"
	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/vclock"
)

// Tracker отслеживает локальные изменения и владеет векторными часами
// устройства. RecordChange синхронен и упорядочен относительно вызывающих:
// часы и журнал защищены одним мьютексом.
type Tracker struct {
	changes  storage.ChangeStore
	meta     storage.MetadataStore
	logger   *slog.Logger
	now      func() time.Time
	clock    vclock.Clock
	deviceID string
	userID   string
	mu       sync.Mutex
}

// New создает трекер для устройства deviceID. Сохраненные векторные часы
// восстанавливаются из metadata storage; при первом запуске часы пустые.
func New(ctx context.Context, deviceID, userID string, changes storage.ChangeStore, meta storage.MetadataStore, logger *slog.Logger) (*Tracker, error) {
	if deviceID == "" {
		return nil, errors.New("device id is required")
	}

	clock, err := meta.GetVectorClock(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrMetadataNotFound) {
			return nil, fmt.Errorf("failed to load vector clock: %w", err)
		}
		clock = vclock.New()
	}

	return &Tracker{
		changes:  changes,
		meta:     meta,
		logger:   logger,
		now:      time.Now,
		clock:    clock,
		deviceID: deviceID,
		userID:   userID,
	}, nil
}

// RecordParams описывает фиксируемую мутацию
type RecordParams struct {
	NewValue        map[string]any
	PreviousValue   map[string]any
	Operation       models.Operation
	ResourceID      string
	ResourceType    string
	ParentChangeIDs []string
}

// RecordChange фиксирует локальную мутацию: увеличивает счетчик устройства
// на единицу, штампует изменение копией полных текущих часов, вычисляет
// хеш содержимого и сохраняет изменение в журнал.
// Version изменения равен новому значению собственного счетчика, поэтому
// последовательность версий устройства строго возрастает с 1 без пропусков.
func (t *Tracker) RecordChange(ctx context.Context, p RecordParams) (*models.Change, error) {
	if !p.Operation.Valid() {
		return nil, fmt.Errorf("unknown operation: %s", p.Operation)
	}
	if p.ResourceID == "" {
		return nil, errors.New("resource id is required")
	}

	hash, err := models.ContentHash(p.Operation, p.ResourceID, p.NewValue, p.PreviousValue)
	if err != nil {
		return nil, fmt.Errorf("failed to hash change: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	version := t.clock.Tick(t.deviceID)

	change := &models.Change{
		ID:              uuid.New().String(),
		Timestamp:       t.now(),
		Operation:       p.Operation,
		ResourceID:      p.ResourceID,
		ResourceType:    p.ResourceType,
		PreviousValue:   p.PreviousValue,
		NewValue:        p.NewValue,
		UserID:          t.userID,
		DeviceID:        t.deviceID,
		Version:         version,
		VectorClock:     t.clock.Clone(),
		ParentChangeIDs: p.ParentChangeIDs,
		Hash:            hash,
	}

	if err := t.changes.SaveChange(ctx, change); err != nil {
		// Откатываем счетчик, чтобы не оставить пропуск в версиях
		t.clock[t.deviceID]--
		return nil, fmt.Errorf("failed to save change: %w", err)
	}

	if err := t.meta.SaveVectorClock(ctx, t.clock); err != nil {
		t.logger.Warn("Failed to persist vector clock", "error", err)
	}

	t.logger.Debug("Recorded change",
		"change_id", change.ID,
		"operation", change.Operation,
		"resource_id", change.ResourceID,
		"version", change.Version)

	return change, nil
}

// Snapshot строит версионированный снимок ресурса: version равен числу
// известных изменений ресурса (минимум 1), data — текущее значение,
// переданное вызывающим.
func (t *Tracker) Snapshot(ctx context.Context, resourceID string, data map[string]any, resourceType string) (*models.VersionedData, error) {
	history, err := t.changes.ChangesForResource(ctx, resourceID, resourceType)
	if err != nil {
		return nil, fmt.Errorf("failed to get change history: %w", err)
	}

	version := int64(len(history))
	if version < 1 {
		version = 1
	}

	snapshot := &models.VersionedData{
		ID:             resourceID,
		Data:           data,
		Version:        version,
		LastModified:   t.now(),
		LastModifiedBy: t.userID,
		Changes:        history,
		Deleted:        data == nil && lastOperationIsDelete(history),
	}

	if last := lastChange(history); last != nil {
		snapshot.LastModified = last.Timestamp
		snapshot.LastModifiedBy = last.UserID
	}

	return snapshot, nil
}

// ChangeHistory возвращает историю изменений ресурса в сохраненном порядке
func (t *Tracker) ChangeHistory(ctx context.Context, resourceID, resourceType string) ([]*models.Change, error) {
	history, err := t.changes.ChangesForResource(ctx, resourceID, resourceType)
	if err != nil {
		return nil, fmt.Errorf("failed to get change history: %w", err)
	}
	return history, nil
}

// PendingChanges возвращает изменения, еще не подтвержденные сервером
func (t *Tracker) PendingChanges(ctx context.Context) ([]*models.Change, error) {
	pending, err := t.changes.PendingChanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending changes: %w", err)
	}
	return pending, nil
}

// MarkApplied помечает изменение как подтвержденное сервером
func (t *Tracker) MarkApplied(ctx context.Context, changeID string) error {
	if err := t.changes.MarkApplied(ctx, changeID, t.now()); err != nil {
		return fmt.Errorf("failed to mark change applied: %w", err)
	}
	return nil
}

// MarkSynced сохраняет момент последней успешной синхронизации
func (t *Tracker) MarkSynced(ctx context.Context, ts time.Time) error {
	if err := t.meta.SaveLastSync(ctx, ts); err != nil {
		return fmt.Errorf("failed to save last sync: %w", err)
	}
	return nil
}

// UpdateVectorClock вливает удаленные часы в локальные (поэлементный
// максимум). Операция идемпотентна и коммутативна, повторные вызовы
// и любой порядок применения безопасны.
func (t *Tracker) UpdateVectorClock(ctx context.Context, remote vclock.Clock) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.clock.Merge(remote)

	if err := t.meta.SaveVectorClock(ctx, t.clock); err != nil {
		return fmt.Errorf("failed to persist vector clock: %w", err)
	}

	return nil
}

// VectorClock возвращает копию текущих векторных часов
func (t *Tracker) VectorClock() vclock.Clock {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.clock.Clone()
}

// DeviceID возвращает идентификатор устройства
func (t *Tracker) DeviceID() string {
	return t.deviceID
}

func lastChange(history []*models.Change) *models.Change {
	if len(history) == 0 {
		return nil
	}
	return history[len(history)-1]
}

func lastOperationIsDelete(history []*models.Change) bool {
	last := lastChange(history)
	return last != nil && last.Operation == models.OpDelete
}
