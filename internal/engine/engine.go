// Package engine реализует цикл синхронизации с удаленным авторитетом:
// наблюдаемую машину состояний, периодические запуски, single-flight
// защиту от дублирующихся запросов и backoff между неудачными попытками.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"

	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/tracker"
	"github.com/driftsync/driftsync/internal/vclock"
	"github.com/driftsync/driftsync/pkg/api"
)

// Status состояние машины синхронизации
type Status string

// Состояния машины. Stopped терминально до следующего Start.
const (
	StatusIdle     Status = "idle"
	StatusSyncing  Status = "syncing"
	StatusConflict Status = "conflict"
	StatusError    Status = "error"
	StatusStopped  Status = "stopped"
)

// State наблюдаемое состояние синхронизации
type State struct {
	LastSync            *time.Time `json:"last_sync,omitempty"`
	Status              Status     `json:"status"`
	SyncError           string     `json:"sync_error,omitempty"`
	PendingChanges      int        `json:"pending_changes"`
	ConflictCount       int        `json:"conflict_count"`
	SyncCount           int        `json:"sync_count"`
	ConsecutiveFailures int        `json:"consecutive_failures"`
	IsOnline            bool       `json:"is_online"`
}

//go:generate moq -out transport_mock.go . Transport

// Transport определяет канал запрос/ответ до удаленного авторитета
type Transport interface {
	// SyncChanges отправляет пачку изменений и векторные часы
	SyncChanges(ctx context.Context, req api.SyncChangesRequest) (*api.SyncChangesResponse, error)

	// ResolveConflict сообщает серверу выбранную стратегию
	ResolveConflict(ctx context.Context, req api.ResolveConflictRequest) error
}

// Config параметры цикла синхронизации
type Config struct {
	// Interval период между автоматическими запусками sync
	Interval time.Duration
	// RequestTimeout ограничивает один запрос к серверу
	RequestTimeout time.Duration
	// BackoffBase начальная задержка экспоненциального backoff
	BackoffBase time.Duration
	// BackoffMax потолок задержки backoff
	BackoffMax time.Duration
	// MaxAttempts число повторов запроса внутри одного sync
	MaxAttempts uint64
}

func (c *Config) withDefaults() {
	if c.Interval <= 0 {
		c.Interval = 30 * time.Second
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
	if c.BackoffBase <= 0 {
		c.BackoffBase = 500 * time.Millisecond
	}
	if c.BackoffMax <= 0 {
		c.BackoffMax = 30 * time.Second
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
}

// Engine связывает трекер изменений с удаленным авторитетом
type Engine struct {
	tracker   *tracker.Tracker
	transport Transport
	logger    *slog.Logger
	now       func() time.Time

	group singleflight.Group

	mu          sync.Mutex
	state       State
	subscribers map[int]func(State)
	nextSubID   int
	cancel      context.CancelFunc
	nextAttempt time.Time
	cfg         Config
}

// New создает engine в состоянии idle, online
func New(tr *tracker.Tracker, transport Transport, cfg Config, logger *slog.Logger) *Engine {
	cfg.withDefaults()

	return &Engine{
		tracker:   tr,
		transport: transport,
		logger:    logger,
		now:       time.Now,
		cfg:       cfg,
		state: State{
			Status:   StatusIdle,
			IsOnline: true,
		},
		subscribers: make(map[int]func(State)),
	}
}

// Start запускает немедленную синхронизацию и периодические запуски
// с интервалом interval (0 — интервал из конфигурации). Повторный вызов
// при уже работающем цикле игнорируется.
func (e *Engine) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = e.cfg.Interval
	}

	e.mu.Lock()
	if e.cancel != nil {
		e.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.mu.Unlock()

	e.setState(func(s *State) {
		if s.Status == StatusStopped {
			s.Status = StatusIdle
		}
	})

	go e.run(runCtx, interval)
}

// Stop отменяет запланированные запуски и переводит машину в stopped.
// Запрос в полете не прерывается: он завершится естественно, ограниченный
// только собственным таймаутом.
func (e *Engine) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	e.setState(func(s *State) {
		s.Status = StatusStopped
	})

	e.logger.Info("Sync engine stopped")
}

// SetOnline сообщает engine о смене сетевого статуса. Пока устройство
// офлайн, запуски пропускаются; при восстановлении связи синхронизация
// запускается немедленно.
func (e *Engine) SetOnline(ctx context.Context, online bool) {
	e.mu.Lock()
	wasOnline := e.state.IsOnline
	running := e.cancel != nil
	e.mu.Unlock()

	if wasOnline == online {
		return
	}

	e.setState(func(s *State) {
		s.IsOnline = online
	})

	if online && running {
		go func() {
			_ = e.Sync(ctx)
		}()
	}
}

// Sync выполняет один цикл синхронизации. Офлайн — no-op.
// Конкурентные вызовы при незавершенной синхронизации разделяют один
// исходящий запрос вместо дублирования.
func (e *Engine) Sync(ctx context.Context) error {
	e.mu.Lock()
	online := e.state.IsOnline
	e.mu.Unlock()

	if !online {
		return nil
	}

	_, err, _ := e.group.Do("sync", func() (any, error) {
		return nil, e.performSync(ctx)
	})

	return err
}

// ResolveConflict отправляет серверу выбранную стратегию разрешения
// конфликта и запускает повторную синхронизацию
func (e *Engine) ResolveConflict(ctx context.Context, changeID string, strategy models.Strategy) error {
	if strategy != models.StrategyLocal && strategy != models.StrategyRemote {
		return fmt.Errorf("unsupported resolve strategy: %s", strategy)
	}

	err := e.transport.ResolveConflict(ctx, api.ResolveConflictRequest{
		ChangeID: changeID,
		Strategy: string(strategy),
	})
	if err != nil {
		return fmt.Errorf("failed to resolve conflict: %w", err)
	}

	e.logger.Info("Conflict resolution posted", "change_id", changeID, "strategy", strategy)

	return e.Sync(ctx)
}

// Subscribe регистрирует слушателя состояния. Текущее состояние
// доставляется немедленно, далее — на каждое изменение.
// Возвращаемая функция отписывает слушателя.
func (e *Engine) Subscribe(listener func(State)) func() {
	e.mu.Lock()
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = listener
	current := e.state
	e.mu.Unlock()

	listener(current)

	return func() {
		e.mu.Lock()
		delete(e.subscribers, id)
		e.mu.Unlock()
	}
}

// State возвращает копию текущего состояния
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// run крутит периодический цикл до отмены контекста
func (e *Engine) run(ctx context.Context, interval time.Duration) {
	e.syncTick(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.syncTick(ctx)
		}
	}
}

// syncTick пропускает запуск, пока устройство офлайн или не истекло
// окно backoff после подряд идущих неудач
func (e *Engine) syncTick(ctx context.Context) {
	e.mu.Lock()
	online := e.state.IsOnline
	wait := e.nextAttempt
	e.mu.Unlock()

	if !online || e.now().Before(wait) {
		return
	}

	if err := e.Sync(ctx); err != nil {
		e.logger.Warn("Periodic sync failed", "error", err)
	}
}

// performSync выполняет один обмен с сервером
func (e *Engine) performSync(ctx context.Context) error {
	e.setState(func(s *State) {
		s.Status = StatusSyncing
		s.SyncError = ""
	})

	pending, err := e.tracker.PendingChanges(ctx)
	if err != nil {
		err = fmt.Errorf("failed to read pending changes: %w", err)
		e.failSync(err)
		return err
	}

	e.setState(func(s *State) {
		s.PendingChanges = len(pending)
	})

	if len(pending) == 0 {
		e.setState(func(s *State) {
			s.Status = StatusIdle
			s.SyncCount++
			s.ConsecutiveFailures = 0
		})
		return nil
	}

	req := api.SyncChangesRequest{
		Changes:     make([]api.Change, 0, len(pending)),
		VectorClock: map[string]int64(e.tracker.VectorClock()),
	}
	for _, change := range pending {
		req.Changes = append(req.Changes, toAPIChange(change))
	}

	e.logger.Info("Sending changes", "count", len(pending))

	resp, err := e.sendChanges(ctx, req)
	if err != nil {
		e.failSync(err)
		return err
	}

	if len(resp.Conflicts) > 0 {
		// Изменения не помечаются применёнными, пока конфликты не разрешены
		e.setState(func(s *State) {
			s.Status = StatusConflict
			s.ConflictCount = len(resp.Conflicts)
			s.ConsecutiveFailures = 0
		})

		e.logger.Warn("Server reported conflicts", "count", len(resp.Conflicts))
		return nil
	}

	for _, change := range pending {
		if err := e.tracker.MarkApplied(ctx, change.ID); err != nil {
			err = fmt.Errorf("failed to mark change %s applied: %w", change.ID, err)
			e.failSync(err)
			return err
		}
	}

	if len(resp.VectorClock) > 0 {
		if err := e.tracker.UpdateVectorClock(ctx, vclock.Clock(resp.VectorClock)); err != nil {
			err = fmt.Errorf("failed to merge server clock: %w", err)
			e.failSync(err)
			return err
		}
	}

	now := e.now()
	if err := e.tracker.MarkSynced(ctx, now); err != nil {
		e.logger.Warn("Failed to persist last sync timestamp", "error", err)
	}

	e.mu.Lock()
	e.nextAttempt = time.Time{}
	e.mu.Unlock()

	e.setState(func(s *State) {
		s.Status = StatusIdle
		s.LastSync = &now
		s.PendingChanges = 0
		s.ConflictCount = 0
		s.SyncCount++
		s.ConsecutiveFailures = 0
	})

	e.logger.Info("Sync completed", "applied", len(pending))

	return nil
}

// sendChanges выполняет запрос с таймаутом и экспоненциальным backoff.
// Контекст отвязывается от отмены, чтобы Stop() не обрывал запрос в полете.
func (e *Engine) sendChanges(ctx context.Context, req api.SyncChangesRequest) (*api.SyncChangesResponse, error) {
	callCtx := context.WithoutCancel(ctx)

	backoff := retry.NewExponential(e.cfg.BackoffBase)
	backoff = retry.WithCappedDuration(e.cfg.BackoffMax, backoff)
	backoff = retry.WithMaxRetries(e.cfg.MaxAttempts, backoff)

	var resp *api.SyncChangesResponse
	err := retry.Do(callCtx, backoff, func(ctx context.Context) error {
		reqCtx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
		defer cancel()

		r, err := e.transport.SyncChanges(reqCtx, req)
		if err != nil {
			return retry.RetryableError(err)
		}

		resp = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// failSync переводит машину в error, оставляя pending изменения для
// повтора, и расширяет окно backoff перед следующим запуском
func (e *Engine) failSync(err error) {
	e.setState(func(s *State) {
		s.Status = StatusError
		s.SyncError = err.Error()
		s.ConsecutiveFailures++
	})

	e.mu.Lock()
	failures := e.state.ConsecutiveFailures
	delay := e.cfg.BackoffBase << (failures - 1)
	if delay > e.cfg.BackoffMax || delay <= 0 {
		delay = e.cfg.BackoffMax
	}
	e.nextAttempt = e.now().Add(delay)
	e.mu.Unlock()

	e.logger.Error("Sync failed", "error", err, "consecutive_failures", failures)
}

// setState применяет мутацию состояния и рассылает снимок подписчикам
func (e *Engine) setState(mutate func(*State)) {
	e.mu.Lock()
	mutate(&e.state)
	snapshot := e.state
	listeners := make([]func(State), 0, len(e.subscribers))
	for _, listener := range e.subscribers {
		listeners = append(listeners, listener)
	}
	e.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}

// toAPIChange конвертирует доменное изменение в формат обмена
func toAPIChange(change *models.Change) api.Change {
	return api.Change{
		ID:              change.ID,
		Timestamp:       change.Timestamp,
		Operation:       string(change.Operation),
		ResourceID:      change.ResourceID,
		ResourceType:    change.ResourceType,
		PreviousValue:   change.PreviousValue,
		NewValue:        change.NewValue,
		UserID:          change.UserID,
		DeviceID:        change.DeviceID,
		Version:         change.Version,
		VectorClock:     map[string]int64(change.VectorClock),
		ParentChangeIDs: change.ParentChangeIDs,
		Hash:            change.Hash,
	}
}
