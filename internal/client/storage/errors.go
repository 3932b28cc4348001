package storage

import "errors"

// Common client storage errors
var (
	// ErrChangeNotFound indicates that change was not found
	ErrChangeNotFound = errors.New("change not found")

	// ErrMetadataNotFound indicates that metadata key was not found
	ErrMetadataNotFound = errors.New("metadata not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
