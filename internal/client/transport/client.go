// Package transport реализует HTTP канал до удаленного авторитета.
// Ретраи и backoff живут уровнем выше, в sync engine; клиент отвечает
// только за один запрос/ответ с таймаутом.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/driftsync/driftsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI определяет интерфейс для transport.Client
type ClientAPI interface {
	// Authenticate получает токен доступа для устройства
	Authenticate(ctx context.Context, deviceID, userID string) error

	// SyncChanges отправляет пачку изменений и векторные часы серверу
	SyncChanges(ctx context.Context, req api.SyncChangesRequest) (*api.SyncChangesResponse, error)

	// ResolveConflict сообщает серверу выбранную стратегию разрешения
	ResolveConflict(ctx context.Context, req api.ResolveConflictRequest) error
}

const authPath = "/api/v1/auth/device"

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string

	mu       sync.RWMutex
	token    string
	deviceID string
	userID   string
}

// NewClient создает новый API клиент.
// timeout ограничивает каждый запрос целиком, включая чтение тела.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Authenticate получает JWT токен для устройства и запоминает его
// для последующих запросов
func (c *Client) Authenticate(ctx context.Context, deviceID, userID string) error {
	req := api.DeviceAuthRequest{
		DeviceID: deviceID,
		UserID:   userID,
	}

	var resp api.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, authPath, req, &resp); err != nil {
		return fmt.Errorf("device auth request failed: %w", err)
	}

	c.mu.Lock()
	c.token = resp.AccessToken
	c.mu.Unlock()

	return nil
}

// SetToken устанавливает токен доступа напрямую.
// Используется для восстановления сессии и в тестах.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// SetCredentials запоминает пару устройство/пользователь для прозрачной
// аутентификации: запрос, отклоненный сервером как неавторизованный,
// вызывает Authenticate и повторяется один раз. Так клиент не ходит
// в сеть ради токена, пока команда не требует сервера, а истекший
// токен обновляется без вмешательства вызывающего.
func (c *Client) SetCredentials(deviceID, userID string) {
	c.mu.Lock()
	c.deviceID = deviceID
	c.userID = userID
	c.mu.Unlock()
}

// SyncChanges отправляет изменения на POST /api/v1/sync/changes
func (c *Client) SyncChanges(ctx context.Context, req api.SyncChangesRequest) (*api.SyncChangesResponse, error) {
	var resp api.SyncChangesResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/changes", req, &resp); err != nil {
		return nil, fmt.Errorf("sync changes request failed: %w", err)
	}
	return &resp, nil
}

// ResolveConflict отправляет стратегию на POST /api/v1/sync/resolve-conflict
func (c *Client) ResolveConflict(ctx context.Context, req api.ResolveConflictRequest) error {
	var resp api.ResolveConflictResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/resolve-conflict", req, &resp); err != nil {
		return fmt.Errorf("resolve conflict request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос. Ответ 401 при известных учетных
// данных означает отсутствующий или истекший токен: клиент проходит
// аутентификацию заново и повторяет исходный запрос один раз.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	status, err := c.send(ctx, method, path, body, result)
	if status != http.StatusUnauthorized || path == authPath {
		return err
	}

	c.mu.RLock()
	deviceID, userID := c.deviceID, c.userID
	c.mu.RUnlock()

	if deviceID == "" {
		return err
	}

	if authErr := c.Authenticate(ctx, deviceID, userID); authErr != nil {
		return authErr
	}

	_, err = c.send(ctx, method, path, body, result)
	return err
}

// send выполняет один HTTP запрос и возвращает код ответа
func (c *Client) send(ctx context.Context, method, path string, body, result any) (int, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return resp.StatusCode, fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return resp.StatusCode, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}
