package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/driftsync/driftsync/pkg/api"
)

// TokenIssuer выпускает токены доступа для устройств
type TokenIssuer interface {
	GenerateToken(deviceID, userID string) (string, int64, error)
}

// AuthHandler обрабатывает запросы авторизации устройств
type AuthHandler struct {
	logger *slog.Logger
	tokens TokenIssuer
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		tokens: tokens,
	}
}

// DeviceAuth обрабатывает POST /api/v1/auth/device
// Выдает токен доступа для пары устройство/пользователь
func (h *AuthHandler) DeviceAuth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		sendError(h.logger, w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req api.DeviceAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode auth request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.DeviceID == "" {
		sendError(h.logger, w, "device_id is required", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		sendError(h.logger, w, "user_id is required", http.StatusBadRequest)
		return
	}

	token, expiresIn, err := h.tokens.GenerateToken(req.DeviceID, req.UserID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate token",
			slog.String("device_id", req.DeviceID),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "device authenticated",
		slog.String("device_id", req.DeviceID),
		slog.String("user_id", req.UserID))

	sendJSON(h.logger, w, api.TokenResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}
