package models

import (
	"time"

	"github.com/driftsync/driftsync/internal/vclock"
)

// Operation тип операции, зафиксированной изменением
type Operation string

// Поддерживаемые операции
const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Valid проверяет, что операция известна
func (o Operation) Valid() bool {
	switch o {
	case OpCreate, OpUpdate, OpDelete:
		return true
	}
	return false
}

// Change представляет одну локальную мутацию в журнале изменений.
// Version — монотонно возрастающий без пропусков счетчик изменений
// собственного устройства, начинается с 1. VectorClock — снимок полных
// векторных часов устройства на момент записи.
type Change struct {
	Timestamp       time.Time      `json:"timestamp"`
	AppliedAt       *time.Time     `json:"applied_at,omitempty"` // момент подтверждения сервером
	PreviousValue   map[string]any `json:"previous_value,omitempty"`
	NewValue        map[string]any `json:"new_value,omitempty"`
	VectorClock     vclock.Clock   `json:"vector_clock"`
	ID              string         `json:"id"`
	Operation       Operation      `json:"operation"`
	ResourceID      string         `json:"resource_id"`
	ResourceType    string         `json:"resource_type"`
	UserID          string         `json:"user_id"`
	DeviceID        string         `json:"device_id"`
	Hash            string         `json:"hash"`
	ParentChangeIDs []string       `json:"parent_change_ids,omitempty"`
	Version         int64          `json:"version"`
}

// IsApplied возвращает true, если изменение подтверждено сервером
func (c *Change) IsApplied() bool {
	return c.AppliedAt != nil
}

// Clone создает глубокую копию изменения
func (c *Change) Clone() *Change {
	clone := *c

	if c.AppliedAt != nil {
		appliedAt := *c.AppliedAt
		clone.AppliedAt = &appliedAt
	}
	clone.PreviousValue = cloneValue(c.PreviousValue)
	clone.NewValue = cloneValue(c.NewValue)
	clone.VectorClock = c.VectorClock.Clone()
	clone.ParentChangeIDs = append([]string(nil), c.ParentChangeIDs...)

	return &clone
}

// ApplyChange применяет изменение к текущему значению ресурса.
// Чистая функция: create/update возвращают NewValue, delete возвращает nil
// (ресурс отсутствует), неизвестная операция оставляет current без изменений.
func ApplyChange(change *Change, current map[string]any) map[string]any {
	switch change.Operation {
	case OpCreate, OpUpdate:
		return cloneValue(change.NewValue)
	case OpDelete:
		return nil
	default:
		return current
	}
}

// Replay восстанавливает значение ресурса, последовательно применяя
// изменения в сохраненном порядке.
func Replay(changes []*Change) map[string]any {
	var data map[string]any
	for _, change := range changes {
		data = ApplyChange(change, data)
	}
	return data
}

// cloneValue создает глубокую копию значения ресурса.
// Вложенные значения ограничены типами, которые дает json.Unmarshal:
// map[string]any, []any и скаляры.
func cloneValue(value map[string]any) map[string]any {
	if value == nil {
		return nil
	}

	clone := make(map[string]any, len(value))
	for key, v := range value {
		clone[key] = cloneAny(v)
	}
	return clone
}

func cloneAny(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneValue(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = cloneAny(item)
		}
		return items
	default:
		return v
	}
}
