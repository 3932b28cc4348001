package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/driftsync/driftsync/internal/models"
	"github.com/driftsync/driftsync/internal/server/middleware"
	"github.com/driftsync/driftsync/internal/server/storage"
	"github.com/driftsync/driftsync/internal/vclock"
	"github.com/driftsync/driftsync/pkg/api"
)

// SyncHandler handles synchronization requests
type SyncHandler struct {
	logger  *slog.Logger
	storage storage.ChangeStorage
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, changeStorage storage.ChangeStorage) *SyncHandler {
	return &SyncHandler{
		logger:  logger,
		storage: changeStorage,
	}
}

// HandleSyncChanges обрабатывает POST /api/v1/sync/changes
// Принимает пакет изменений от клиента. Изменение, чьи векторные часы
// конкурентны с уже принятой историей ресурса, откладывается как
// конфликт и возвращается клиенту в списке conflicts.
func (h *SyncHandler) HandleSyncChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		sendError(h.logger, w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	deviceID, _ := middleware.GetDeviceID(ctx)

	var req api.SyncChangesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode sync request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	h.logger.InfoContext(ctx, "sync request",
		slog.String("device_id", deviceID),
		slog.Int("changes_count", len(req.Changes)))

	conflicts := make([]api.ConflictDescriptor, 0)

	for _, apiChange := range req.Changes {
		change := fromAPIChange(apiChange)

		if !change.Operation.Valid() {
			sendError(h.logger, w, "invalid operation: "+string(change.Operation), http.StatusBadRequest)
			return
		}
		if change.ID == "" || change.ResourceID == "" {
			sendError(h.logger, w, "change id and resource_id are required", http.StatusBadRequest)
			return
		}

		// Изменение с неверным хешем не принимается и не сохраняется,
		// клиент узнает о нем из списка конфликтов
		if change.Hash != "" {
			if err := models.VerifyContentHash(change); err != nil {
				h.logger.WarnContext(ctx, "content hash mismatch",
					slog.String("change_id", change.ID),
					slog.Any("error", err))
				conflicts = append(conflicts, conflictDescriptor(apiChange, "content hash mismatch"))
				continue
			}
		}

		descriptor, err := h.applyChange(ctx, change, apiChange)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to apply change",
				slog.String("change_id", change.ID),
				slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		if descriptor != nil {
			conflicts = append(conflicts, *descriptor)
		}
	}

	// Часы клиента вливаются в серверные даже при пустом пакете,
	// ответ всегда несет актуальные часы сервера
	serverClock, err := h.storage.MergeServerClock(ctx, req.VectorClock)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to merge server clock", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "sync completed",
		slog.String("device_id", deviceID),
		slog.Int("accepted", len(req.Changes)-len(conflicts)),
		slog.Int("conflicts", len(conflicts)))

	sendJSON(h.logger, w, api.SyncChangesResponse{
		VectorClock: serverClock,
		Conflicts:   conflicts,
	}, http.StatusOK)
}

// applyChange принимает изменение или откладывает его как конфликт
func (h *SyncHandler) applyChange(ctx context.Context, change *models.Change, apiChange api.Change) (*api.ConflictDescriptor, error) {
	resourceClock, err := h.storage.ResourceClock(ctx, change.ResourceType, change.ResourceID)
	if err != nil {
		return nil, err
	}

	if resourceClock.Concurrent(change.VectorClock) {
		if err := h.storage.SaveConflict(ctx, change, "concurrent update"); err != nil {
			return nil, err
		}
		descriptor := conflictDescriptor(apiChange, "concurrent update")
		return &descriptor, nil
	}

	if err := h.storage.SaveChange(ctx, change); err != nil {
		return nil, err
	}
	if _, err := h.storage.MergeServerClock(ctx, change.VectorClock); err != nil {
		return nil, err
	}

	return nil, nil
}

// HandleResolveConflict обрабатывает POST /api/v1/sync/resolve-conflict
// Стратегия local продвигает отложенное изменение в принятую историю,
// remote отбрасывает его.
func (h *SyncHandler) HandleResolveConflict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		sendError(h.logger, w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req api.ResolveConflictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode resolve request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ChangeID == "" {
		sendError(h.logger, w, "change_id is required", http.StatusBadRequest)
		return
	}
	if req.Strategy != "local" && req.Strategy != "remote" {
		sendError(h.logger, w, "strategy must be local or remote", http.StatusBadRequest)
		return
	}

	if err := h.storage.ResolveConflict(ctx, req.ChangeID, req.Strategy); err != nil {
		if errors.Is(err, storage.ErrConflictNotFound) {
			sendError(h.logger, w, "conflict not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to resolve conflict",
			slog.String("change_id", req.ChangeID),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "conflict resolved",
		slog.String("change_id", req.ChangeID),
		slog.String("strategy", req.Strategy))

	sendJSON(h.logger, w, api.ResolveConflictResponse{Resolved: true}, http.StatusOK)
}

// fromAPIChange конвертирует wire формат во внутреннюю модель
func fromAPIChange(c api.Change) *models.Change {
	clock := vclock.New()
	for deviceID, counter := range c.VectorClock {
		clock[deviceID] = counter
	}

	return &models.Change{
		ID:              c.ID,
		Timestamp:       c.Timestamp,
		Operation:       models.Operation(c.Operation),
		ResourceID:      c.ResourceID,
		ResourceType:    c.ResourceType,
		PreviousValue:   c.PreviousValue,
		NewValue:        c.NewValue,
		UserID:          c.UserID,
		DeviceID:        c.DeviceID,
		Hash:            c.Hash,
		VectorClock:     clock,
		ParentChangeIDs: c.ParentChangeIDs,
		Version:         c.Version,
	}
}

// conflictDescriptor строит описание конфликта для ответа клиенту
func conflictDescriptor(c api.Change, reason string) api.ConflictDescriptor {
	return api.ConflictDescriptor{
		ChangeID:     c.ID,
		ResourceID:   c.ResourceID,
		ResourceType: c.ResourceType,
		Reason:       reason,
		RemoteChange: &c,
	}
}
