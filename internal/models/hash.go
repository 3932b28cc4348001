package models

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// hashPayload фиксирует порядок полей для детерминированной сериализации.
// encoding/json сортирует ключи map, поэтому одинаковое содержимое
// всегда дает одинаковый хеш.
type hashPayload struct {
	PreviousValue map[string]any `json:"previous_value"`
	NewValue      map[string]any `json:"new_value"`
	Operation     Operation      `json:"operation"`
	ResourceID    string         `json:"resource_id"`
}

// ContentHash вычисляет BLAKE2b-256 хеш содержимого изменения.
// Хеш служит для дешевого обнаружения дубликатов и искажений,
// а не для криптографической защиты целостности.
func ContentHash(operation Operation, resourceID string, newValue, previousValue map[string]any) (string, error) {
	payload, err := json.Marshal(hashPayload{
		Operation:     operation,
		ResourceID:    resourceID,
		NewValue:      newValue,
		PreviousValue: previousValue,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal hash payload: %w", err)
	}

	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// VerifyContentHash проверяет, что хеш изменения соответствует его
// содержимому. Расхождение означает искажение или ручную правку записи.
func VerifyContentHash(change *Change) error {
	computed, err := ContentHash(change.Operation, change.ResourceID, change.NewValue, change.PreviousValue)
	if err != nil {
		return fmt.Errorf("failed to compute content hash: %w", err)
	}

	if computed != change.Hash {
		return fmt.Errorf("content hash mismatch for change %s", change.ID)
	}

	return nil
}
