package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftsync/driftsync/internal/models"
)

func TestMerge_NonOverlappingEdits(t *testing.T) {
	result := Merge(Context{
		Base:   map[string]any{"a": 1, "b": 2},
		Local:  map[string]any{"a": 1, "b": 3},
		Remote: map[string]any{"a": 5, "b": 2},
	})

	assert.Equal(t, map[string]any{"a": 5, "b": 3}, result.Merged,
		"edits to different fields merge without conflict")
	assert.Empty(t, result.Conflicts)
}

func TestMerge_BothSidesAgree(t *testing.T) {
	result := Merge(Context{
		Base:   map[string]any{"x": "old"},
		Local:  map[string]any{"x": "new"},
		Remote: map[string]any{"x": "new"},
	})

	assert.Equal(t, map[string]any{"x": "new"}, result.Merged)
	assert.Empty(t, result.Conflicts, "identical edits are not a conflict")
}

func TestMerge_ConflictStrategies(t *testing.T) {
	base := map[string]any{"x": "A"}
	local := map[string]any{"x": "B"}
	remote := map[string]any{"x": "C"}

	tests := []struct {
		name     string
		strategy models.Strategy
		expected any
	}{
		{"local wins", models.StrategyLocal, "B"},
		{"remote wins", models.StrategyRemote, "C"},
		{"merge falls back to local for scalars", models.StrategyMerge, "B"},
		{"manual still fills merged", models.StrategyManual, "B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Merge(Context{
				Base:     base,
				Local:    local,
				Remote:   remote,
				Strategy: tt.strategy,
			})

			assert.Equal(t, tt.expected, result.Merged["x"])

			require.Len(t, result.Conflicts, 1)
			marker := result.Conflicts[0]
			assert.Equal(t, "x", marker.Field)
			assert.Equal(t, "A", marker.Base)
			assert.Equal(t, "B", marker.Local)
			assert.Equal(t, "C", marker.Remote)
			assert.Equal(t, tt.strategy, marker.Resolution)
		})
	}
}

func TestMerge_DeletedField(t *testing.T) {
	result := Merge(Context{
		Base:   map[string]any{"a": 1, "b": 2},
		Local:  map[string]any{"a": 1},
		Remote: map[string]any{"a": 1, "b": 2},
	})

	assert.Equal(t, map[string]any{"a": 1}, result.Merged,
		"local deletion of an untouched field survives the merge")
	assert.Empty(t, result.Conflicts)
}

func TestMerge_DeleteVersusEdit(t *testing.T) {
	result := Merge(Context{
		Base:     map[string]any{"b": 2},
		Local:    map[string]any{},
		Remote:   map[string]any{"b": 7},
		Strategy: models.StrategyRemote,
	})

	require.Len(t, result.Conflicts, 1, "delete against edit is a real conflict")
	assert.Equal(t, 7, result.Merged["b"])
}

func TestMerge_ChangeCredit(t *testing.T) {
	localChanges := []*models.Change{{ID: "l1"}, {ID: "l2"}}
	remoteChanges := []*models.Change{{ID: "r1"}}

	t.Run("both sides applied on disjoint edits", func(t *testing.T) {
		result := Merge(Context{
			Base:          map[string]any{"a": 1, "b": 2},
			Local:         map[string]any{"a": 1, "b": 3},
			Remote:        map[string]any{"a": 5, "b": 2},
			LocalChanges:  localChanges,
			RemoteChanges: remoteChanges,
		})

		assert.ElementsMatch(t, []string{"l1", "l2", "r1"}, result.AppliedChanges)
		assert.Empty(t, result.DiscardedChanges)
	})

	t.Run("losing side is discarded", func(t *testing.T) {
		result := Merge(Context{
			Base:          map[string]any{"x": "A"},
			Local:         map[string]any{"x": "B"},
			Remote:        map[string]any{"x": "C"},
			Strategy:      models.StrategyLocal,
			LocalChanges:  localChanges,
			RemoteChanges: remoteChanges,
		})

		assert.ElementsMatch(t, []string{"l1", "l2"}, result.AppliedChanges)
		assert.ElementsMatch(t, []string{"r1"}, result.DiscardedChanges)
	})

	t.Run("partially applied side is not discarded", func(t *testing.T) {
		result := Merge(Context{
			Base:          map[string]any{"x": "A", "y": 1},
			Local:         map[string]any{"x": "B", "y": 1},
			Remote:        map[string]any{"x": "C", "y": 2},
			Strategy:      models.StrategyLocal,
			LocalChanges:  localChanges,
			RemoteChanges: remoteChanges,
		})

		// Remote проиграл по x, но его правка y вошла в merged
		assert.Equal(t, 2, result.Merged["y"])
		assert.Empty(t, result.DiscardedChanges)
	})
}

func TestMerge_InvalidStrategyDefaultsToLocal(t *testing.T) {
	result := Merge(Context{
		Base:     map[string]any{"x": "A"},
		Local:    map[string]any{"x": "B"},
		Remote:   map[string]any{"x": "C"},
		Strategy: models.Strategy("wat"),
	})

	assert.Equal(t, "B", result.Merged["x"])
}

func TestSmartMerge_Arrays(t *testing.T) {
	base := []any{"a", "b"}
	local := []any{"a", "b", "c"}
	remote := []any{"a", "b", "d"}

	merged := SmartMerge(base, local, remote)

	assert.Equal(t, []any{"a", "b", "c", "d"}, merged,
		"array merge is a deduplicated union ordered base, local additions, remote additions")
}

func TestSmartMerge_ArraysDeduplicate(t *testing.T) {
	merged := SmartMerge([]any{"a"}, []any{"a", "x"}, []any{"x", "y"})

	assert.Equal(t, []any{"a", "x", "y"}, merged)
}

func TestSmartMerge_Objects(t *testing.T) {
	base := map[string]any{"size": 1, "color": "red"}
	local := map[string]any{"size": 2, "color": "red"}
	remote := map[string]any{"size": 1, "color": "blue"}

	merged := SmartMerge(base, local, remote)

	assert.Equal(t, map[string]any{"size": 2, "color": "blue"}, merged,
		"object merge recurses per field")
}

func TestSmartMerge_NestedScalarConflictPrefersLocal(t *testing.T) {
	base := map[string]any{"v": 1}
	local := map[string]any{"v": 2}
	remote := map[string]any{"v": 3}

	merged := SmartMerge(base, local, remote)

	assert.Equal(t, map[string]any{"v": 2}, merged)
}

func TestSmartMerge_ScalarPrefersLocal(t *testing.T) {
	assert.Equal(t, "local", SmartMerge("base", "local", "remote"))
}

func TestSmartMerge_MixedTypesPreferLocal(t *testing.T) {
	assert.Equal(t, []any{"a"}, SmartMerge("base", []any{"a"}, map[string]any{"x": 1}))
}

func TestDetectConflict(t *testing.T) {
	tests := []struct {
		name     string
		base     any
		local    any
		remote   any
		expected bool
	}{
		{"all distinct", "A", "B", "C", true},
		{"local equals base", "A", "A", "C", false},
		{"remote equals base", "A", "B", "A", false},
		{"local equals remote", "A", "B", "B", false},
		{"all equal", "A", "A", "A", false},
		{"distinct maps", map[string]any{"a": 1}, map[string]any{"a": 2}, map[string]any{"a": 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectConflict(tt.base, tt.local, tt.remote))
		})
	}
}
