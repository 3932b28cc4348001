package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftsync/driftsync/pkg/api"
)

func TestAuthenticate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/device", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.DeviceAuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "device-a", req.DeviceID)
		assert.Equal(t, "user-1", req.UserID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: "test-token", ExpiresIn: 3600})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	require.NoError(t, client.Authenticate(context.Background(), "device-a", "user-1"))

	// Токен используется в последующих запросах
	authed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(api.SyncChangesResponse{})
	}))
	defer authed.Close()

	client.baseURL = authed.URL
	_, err := client.SyncChanges(context.Background(), api.SyncChangesRequest{})
	require.NoError(t, err)
}

func TestSyncChanges(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/sync/changes", r.URL.Path)

		var req api.SyncChangesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Changes, 1)
		assert.Equal(t, "c1", req.Changes[0].ID)
		assert.Equal(t, int64(3), req.VectorClock["device-a"])

		_ = json.NewEncoder(w).Encode(api.SyncChangesResponse{
			VectorClock: map[string]int64{"device-a": 3, "device-b": 1},
			Conflicts: []api.ConflictDescriptor{{
				ChangeID: "c1",
				Reason:   "concurrent update",
			}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.SetToken("tok")

	resp, err := client.SyncChanges(context.Background(), api.SyncChangesRequest{
		VectorClock: map[string]int64{"device-a": 3},
		Changes:     []api.Change{{ID: "c1", Operation: "update", ResourceID: "res-1"}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.VectorClock["device-b"])
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, "concurrent update", resp.Conflicts[0].Reason)
}

func TestResolveConflict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/sync/resolve-conflict", r.URL.Path)

		var req api.ResolveConflictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "c1", req.ChangeID)
		assert.Equal(t, "local", req.Strategy)

		_ = json.NewEncoder(w).Encode(api.ResolveConflictResponse{Resolved: true})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.ResolveConflict(context.Background(), api.ResolveConflictRequest{
		ChangeID: "c1",
		Strategy: "local",
	})
	require.NoError(t, err)
}

func TestDoRequest_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{
			Error:   "Bad Request",
			Message: "invalid request body",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.SyncChanges(context.Background(), api.SyncChangesRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "Bad Request")
}

func TestDoRequest_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.ResolveConflict(context.Background(), api.ResolveConflictRequest{ChangeID: "c1", Strategy: "local"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSetCredentials_LazyAuthentication(t *testing.T) {
	var authCalls, syncCalls int

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/device", func(w http.ResponseWriter, r *http.Request) {
		authCalls++

		var req api.DeviceAuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "device-a", req.DeviceID)
		assert.Equal(t, "user-1", req.UserID)

		_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: "fresh-token", ExpiresIn: 3600})
	})
	mux.HandleFunc("/api/v1/sync/changes", func(w http.ResponseWriter, r *http.Request) {
		syncCalls++

		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "Unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(api.SyncChangesResponse{VectorClock: map[string]int64{"device-a": 1}})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.SetCredentials("device-a", "user-1")

	// Токена еще нет: первый запрос отклоняется, клиент аутентифицируется
	// и повторяет его сам
	resp, err := client.SyncChanges(context.Background(), api.SyncChangesRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.VectorClock["device-a"])

	assert.Equal(t, 1, authCalls)
	assert.Equal(t, 2, syncCalls, "rejected request is retried once after authentication")

	// Токен получен, следующий запрос проходит без повторной аутентификации
	_, err = client.SyncChanges(context.Background(), api.SyncChangesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, authCalls)
	assert.Equal(t, 3, syncCalls)
}

func TestSetCredentials_RefreshesExpiredToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/device", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.TokenResponse{AccessToken: "renewed", ExpiresIn: 3600})
	})
	mux.HandleFunc("/api/v1/sync/resolve-conflict", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer renewed" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(api.ResolveConflictResponse{Resolved: true})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	client.SetCredentials("device-a", "user-1")
	client.SetToken("expired")

	err := client.ResolveConflict(context.Background(), api.ResolveConflictRequest{ChangeID: "c1", Strategy: "local"})
	require.NoError(t, err)
}

func TestUnauthenticated_NoCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	// Без учетных данных 401 возвращается вызывающему как есть
	client := NewClient(server.URL, time.Second)
	_, err := client.SyncChanges(context.Background(), api.SyncChangesRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestDoRequest_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.SyncChanges(ctx, api.SyncChangesRequest{})
	assert.Error(t, err)
}
