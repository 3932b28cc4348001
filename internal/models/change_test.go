package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftsync/driftsync/internal/vclock"
)

func TestOperation_Valid(t *testing.T) {
	assert.True(t, OpCreate.Valid())
	assert.True(t, OpUpdate.Valid())
	assert.True(t, OpDelete.Valid())
	assert.False(t, Operation("rename").Valid())
	assert.False(t, Operation("").Valid())
}

func TestApplyChange(t *testing.T) {
	current := map[string]any{"title": "old"}

	tests := []struct {
		name     string
		change   *Change
		expected map[string]any
	}{
		{
			name:     "create sets new value",
			change:   &Change{Operation: OpCreate, NewValue: map[string]any{"title": "new"}},
			expected: map[string]any{"title": "new"},
		},
		{
			name:     "update replaces value",
			change:   &Change{Operation: OpUpdate, NewValue: map[string]any{"title": "updated"}},
			expected: map[string]any{"title": "updated"},
		},
		{
			name:     "delete clears value",
			change:   &Change{Operation: OpDelete},
			expected: nil,
		},
		{
			name:     "unknown operation keeps current",
			change:   &Change{Operation: Operation("rename")},
			expected: map[string]any{"title": "old"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyChange(tt.change, current))
		})
	}
}

func TestApplyChange_DoesNotAliasNewValue(t *testing.T) {
	change := &Change{Operation: OpUpdate, NewValue: map[string]any{"tags": []any{"a"}}}

	result := ApplyChange(change, nil)
	result["tags"] = []any{"b"}

	assert.Equal(t, []any{"a"}, change.NewValue["tags"], "applied value must be a deep copy")
}

func TestReplay(t *testing.T) {
	changes := []*Change{
		{Operation: OpCreate, NewValue: map[string]any{"title": "v1"}},
		{Operation: OpUpdate, NewValue: map[string]any{"title": "v2", "done": true}},
	}

	assert.Equal(t, map[string]any{"title": "v2", "done": true}, Replay(changes))
}

func TestReplay_DeleteLast(t *testing.T) {
	changes := []*Change{
		{Operation: OpCreate, NewValue: map[string]any{"title": "v1"}},
		{Operation: OpDelete},
	}

	assert.Nil(t, Replay(changes), "history ending in delete reconstructs absence")
}

func TestReplay_Empty(t *testing.T) {
	assert.Nil(t, Replay(nil))
}

func TestChange_Clone(t *testing.T) {
	appliedAt := time.Now()
	original := &Change{
		ID:          "c1",
		Operation:   OpUpdate,
		NewValue:    map[string]any{"nested": map[string]any{"n": int64(1)}},
		VectorClock: vclock.Clock{"a": 1},
		AppliedAt:   &appliedAt,
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.NewValue["nested"].(map[string]any)["n"] = int64(2)
	clone.VectorClock.Tick("a")
	*clone.AppliedAt = appliedAt.Add(time.Hour)

	assert.Equal(t, int64(1), original.NewValue["nested"].(map[string]any)["n"])
	assert.Equal(t, int64(1), original.VectorClock.Get("a"))
	assert.Equal(t, appliedAt, *original.AppliedAt)
}

func TestChange_IsApplied(t *testing.T) {
	change := &Change{}
	assert.False(t, change.IsApplied())

	now := time.Now()
	change.AppliedAt = &now
	assert.True(t, change.IsApplied())
}
