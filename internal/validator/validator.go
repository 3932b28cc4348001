// Package validator проверяет структурные и причинные инварианты
// версионированных записей и умеет восстанавливать (repair) данные
// записи повторным применением ее истории изменений.
package validator

import (
	"fmt"
	"time"

	"github.com/driftsync/driftsync/internal/models"
)

// Error описывает одно нарушение инварианта
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result результат проверки записи
type Result struct {
	Errors  []Error `json:"errors"`
	IsValid bool    `json:"is_valid"`
}

// Validate проверяет версионированную запись:
//   - идентификатор присутствует;
//   - версия неотрицательна;
//   - время последнего изменения задано и не в будущем;
//   - версии в истории изменений образуют непрерывную возрастающую
//     последовательность, начинающуюся с 1;
//   - хеш каждого изменения соответствует его содержимому;
//   - deleted == true означает, что повтор истории дает отсутствие данных.
//
// Ошибки не фатальны: вызывающий получает структурированный список
// и может применить Repair как путь восстановления.
func Validate(data *models.VersionedData) Result {
	result := Result{Errors: []Error{}}

	if data == nil {
		result.Errors = append(result.Errors, Error{Field: "", Message: "versioned data is nil"})
		return result
	}

	if data.ID == "" {
		result.Errors = append(result.Errors, Error{Field: "id", Message: "id is required"})
	}

	if data.Version < 0 {
		result.Errors = append(result.Errors, Error{
			Field:   "version",
			Message: fmt.Sprintf("version must be non-negative, got %d", data.Version),
		})
	}

	switch {
	case data.LastModified.IsZero():
		result.Errors = append(result.Errors, Error{Field: "last_modified", Message: "last_modified is required"})
	case data.LastModified.After(time.Now()):
		result.Errors = append(result.Errors, Error{Field: "last_modified", Message: "last_modified is in the future"})
	}

	result.Errors = append(result.Errors, validateHistory(data.Changes)...)

	if data.Deleted && models.Replay(data.Changes) != nil {
		result.Errors = append(result.Errors, Error{
			Field:   "deleted",
			Message: "record is marked deleted but change history reconstructs data",
		})
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// validateHistory проверяет непрерывность версий и целостность хешей
func validateHistory(changes []*models.Change) []Error {
	errors := []Error{}

	for i, change := range changes {
		expected := int64(i + 1)
		if change.Version != expected {
			errors = append(errors, Error{
				Field: "changes",
				Message: fmt.Sprintf("change %s has version %d, expected %d: history must be a contiguous sequence starting at 1",
					change.ID, change.Version, expected),
			})
			// Дальше последовательность уже сломана, одной ошибки достаточно
			break
		}
	}

	for _, change := range changes {
		if change.Hash == "" {
			continue
		}
		if err := models.VerifyContentHash(change); err != nil {
			errors = append(errors, Error{
				Field:   "changes",
				Message: fmt.Sprintf("integrity: %v", err),
			})
		}
	}

	return errors
}

// Repair восстанавливает запись, чье кешированное значение data разошлось
// с собственной историей изменений: история повторяется в сохраненном
// порядке (create/update устанавливают data, delete очищает), версия
// пересчитывается как len(changes) + 1. Вход не модифицируется.
func Repair(data *models.VersionedData) *models.VersionedData {
	repaired := data.Clone()

	repaired.Data = models.Replay(repaired.Changes)
	repaired.Version = int64(len(repaired.Changes)) + 1
	repaired.Deleted = repaired.Data == nil && len(repaired.Changes) > 0

	if last := lastChange(repaired.Changes); last != nil {
		repaired.LastModified = last.Timestamp
		repaired.LastModifiedBy = last.UserID
	}

	return repaired
}

func lastChange(changes []*models.Change) *models.Change {
	if len(changes) == 0 {
		return nil
	}
	return changes[len(changes)-1]
}
