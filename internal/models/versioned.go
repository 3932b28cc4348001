package models

import "time"

// VersionedData представляет версионированный снимок ресурса,
// производный от его истории изменений.
// Инвариант: Deleted == true означает, что Replay(Changes) возвращает nil.
type VersionedData struct {
	LastModified     time.Time      `json:"last_modified"`
	Data             map[string]any `json:"data,omitempty"` // nil = ресурс отсутствует
	ID               string         `json:"id"`
	LastModifiedBy   string         `json:"last_modified_by"`
	Changes          []*Change      `json:"changes"`
	Version          int64          `json:"version"`
	Deleted          bool           `json:"deleted"`
	ConflictResolved bool           `json:"conflict_resolved"`
}

// Clone создает глубокую копию снимка
func (v *VersionedData) Clone() *VersionedData {
	clone := *v

	clone.Data = cloneValue(v.Data)
	clone.Changes = make([]*Change, len(v.Changes))
	for i, change := range v.Changes {
		clone.Changes[i] = change.Clone()
	}

	return &clone
}
