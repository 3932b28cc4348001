package api

import "time"

// Change представляет одно изменение в формате обмена с сервером
type Change struct {
	Timestamp       time.Time        `json:"timestamp"`
	ID              string           `json:"id"`
	Operation       string           `json:"operation"`
	ResourceID      string           `json:"resource_id"`
	ResourceType    string           `json:"resource_type"`
	UserID          string           `json:"user_id"`
	DeviceID        string           `json:"device_id"`
	Hash            string           `json:"hash"`
	PreviousValue   map[string]any   `json:"previous_value,omitempty"`
	NewValue        map[string]any   `json:"new_value,omitempty"`
	VectorClock     map[string]int64 `json:"vector_clock"`
	ParentChangeIDs []string         `json:"parent_change_ids,omitempty"`
	Version         int64            `json:"version"`
}

// SyncChangesRequest представляет запрос на синхронизацию от клиента
type SyncChangesRequest struct {
	VectorClock map[string]int64 `json:"vector_clock"`
	Changes     []Change         `json:"changes"`
}

// ConflictDescriptor описывает изменение, которое сервер не смог применить
// из-за конкурентной версии того же ресурса
type ConflictDescriptor struct {
	RemoteChange *Change `json:"remote_change,omitempty"`
	ChangeID     string  `json:"change_id"`
	ResourceID   string  `json:"resource_id"`
	ResourceType string  `json:"resource_type"`
	Reason       string  `json:"reason"`
}

// SyncChangesResponse представляет ответ сервера на синхронизацию
type SyncChangesResponse struct {
	VectorClock map[string]int64     `json:"vector_clock,omitempty"`
	Conflicts   []ConflictDescriptor `json:"conflicts,omitempty"`
}

// ResolveConflictRequest представляет выбор стратегии разрешения конфликта
type ResolveConflictRequest struct {
	ChangeID string `json:"change_id"`
	Strategy string `json:"strategy"` // "local" или "remote"
}

// ResolveConflictResponse подтверждает принятие стратегии сервером
type ResolveConflictResponse struct {
	Resolved bool `json:"resolved"`
}
