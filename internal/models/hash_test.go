package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentHash_Deterministic(t *testing.T) {
	value := map[string]any{"b": 2, "a": 1, "nested": map[string]any{"y": true, "x": false}}

	first, err := ContentHash(OpUpdate, "res-1", value, nil)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := ContentHash(OpUpdate, "res-1", value, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same content must always hash the same")
	assert.Len(t, first, 64, "BLAKE2b-256 hex digest is 64 characters")
}

func TestContentHash_SensitiveToContent(t *testing.T) {
	base, err := ContentHash(OpUpdate, "res-1", map[string]any{"a": 1}, nil)
	require.NoError(t, err)

	differentValue, err := ContentHash(OpUpdate, "res-1", map[string]any{"a": 2}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, base, differentValue)

	differentOp, err := ContentHash(OpCreate, "res-1", map[string]any{"a": 1}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, base, differentOp)

	differentResource, err := ContentHash(OpUpdate, "res-2", map[string]any{"a": 1}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, base, differentResource)

	differentPrev, err := ContentHash(OpUpdate, "res-1", map[string]any{"a": 1}, map[string]any{"a": 0})
	require.NoError(t, err)
	assert.NotEqual(t, base, differentPrev)
}

func TestVerifyContentHash(t *testing.T) {
	hash, err := ContentHash(OpUpdate, "res-1", map[string]any{"a": 1}, nil)
	require.NoError(t, err)

	change := &Change{
		ID:         "c1",
		Operation:  OpUpdate,
		ResourceID: "res-1",
		NewValue:   map[string]any{"a": 1},
		Hash:       hash,
	}

	assert.NoError(t, VerifyContentHash(change))

	change.NewValue = map[string]any{"a": 2}
	assert.Error(t, VerifyContentHash(change), "tampered content must fail verification")
}
