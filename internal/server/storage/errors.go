package storage

import "errors"

var (
	// ErrChangeNotFound изменение не найдено в принятой истории
	ErrChangeNotFound = errors.New("change not found")
	// ErrConflictNotFound конфликт не найден или уже разрешен
	ErrConflictNotFound = errors.New("conflict not found")
)
