// Package resolver реализует чистое трехстороннее слияние: общий предок
// и два разошедшихся состояния сводятся в одно значение, непересекающиеся
// правки применяются автоматически, настоящие конфликты помечаются.
package resolver

import (
	"reflect"
	"sort"

	"github.com/driftsync/driftsync/internal/models"
)

// Context входные данные слияния
type Context struct {
	Base          map[string]any
	Local         map[string]any
	Remote        map[string]any
	LocalChanges  []*models.Change
	RemoteChanges []*models.Change
	Strategy      models.Strategy
}

// Result результат слияния. AppliedChanges и DiscardedChanges содержат
// идентификаторы изменений, чей вклад вошел в merged или был отброшен.
type Result struct {
	Merged           map[string]any
	Conflicts        []models.ConflictMarker
	AppliedChanges   []string
	DiscardedChanges []string
}

// Merge выполняет трехстороннее слияние по полям. Для каждого поля,
// присутствующего в base, local или remote:
//   - local == remote: значение совпадает, конфликта нет;
//   - local == base: менялась только удаленная сторона, берем remote;
//   - remote == base: менялась только локальная сторона, берем local;
//   - все три различны: настоящий конфликт, помечается ConflictMarker
//     и разрешается по Strategy.
//
// Стратегия manual заполняет merged так же, как merge: значение обязано
// существовать, даже если конфликт отмечен для внешнего разрешения.
func Merge(mc Context) Result {
	result := Result{
		Merged:    make(map[string]any),
		Conflicts: []models.ConflictMarker{},
	}

	strategy := mc.Strategy
	if !strategy.Valid() {
		strategy = models.StrategyLocal
	}

	var localApplied, remoteApplied, localDiscarded, remoteDiscarded bool

	for _, field := range fieldUnion(mc.Base, mc.Local, mc.Remote) {
		base, inBase := lookup(mc.Base, field)
		local, inLocal := lookup(mc.Local, field)
		remote, inRemote := lookup(mc.Remote, field)

		switch {
		case inLocal == inRemote && valuesEqual(local, remote):
			// Обе стороны сошлись (или обе удалили поле)
			if inLocal {
				result.Merged[field] = local
			}

		case inLocal == inBase && valuesEqual(local, base):
			// Менялась только удаленная сторона
			if inRemote {
				result.Merged[field] = remote
			}
			remoteApplied = true

		case inRemote == inBase && valuesEqual(remote, base):
			// Менялась только локальная сторона
			if inLocal {
				result.Merged[field] = local
			}
			localApplied = true

		default:
			result.Conflicts = append(result.Conflicts, models.ConflictMarker{
				Field:      field,
				Base:       base,
				Local:      local,
				Remote:     remote,
				Resolution: strategy,
			})

			switch strategy {
			case models.StrategyLocal:
				if inLocal {
					result.Merged[field] = local
				}
				localApplied = true
				remoteDiscarded = true
			case models.StrategyRemote:
				if inRemote {
					result.Merged[field] = remote
				}
				remoteApplied = true
				localDiscarded = true
			case models.StrategyMerge, models.StrategyManual:
				result.Merged[field] = SmartMerge(base, local, remote)
				localApplied = true
				remoteApplied = true
			}
		}
	}

	result.AppliedChanges = creditChanges(mc.LocalChanges, localApplied, mc.RemoteChanges, remoteApplied)
	// Изменение, чей вклад частично вошел в merged, не считается отброшенным
	result.DiscardedChanges = creditChanges(
		mc.LocalChanges, localDiscarded && !localApplied,
		mc.RemoteChanges, remoteDiscarded && !remoteApplied)

	return result
}

// SmartMerge сливает единичное конфликтующее значение.
// Массивы: дедуплицированное объединение, порядок — base, затем
// добавленные локально, затем добавленные удаленно. Объекты: рекурсия
// по полям с теми же тремя случаями, при вложенном настоящем конфликте
// скаляров выбирается local. Скаляры: local.
func SmartMerge(base, local, remote any) any {
	localArr, localIsArr := local.([]any)
	remoteArr, remoteIsArr := remote.([]any)
	if localIsArr && remoteIsArr {
		baseArr, _ := base.([]any)
		return mergeArrays(baseArr, localArr, remoteArr)
	}

	localObj, localIsObj := local.(map[string]any)
	remoteObj, remoteIsObj := remote.(map[string]any)
	if localIsObj && remoteIsObj {
		baseObj, _ := base.(map[string]any)
		return mergeObjects(baseObj, localObj, remoteObj)
	}

	return local
}

// DetectConflict возвращает true только когда base, local и remote
// попарно различны; совпадение любых двух означает отсутствие конфликта.
func DetectConflict(base, local, remote any) bool {
	return !valuesEqual(base, local) &&
		!valuesEqual(local, remote) &&
		!valuesEqual(base, remote)
}

func mergeArrays(base, local, remote []any) []any {
	merged := make([]any, 0, len(base)+len(local)+len(remote))

	appendMissing := func(items []any) {
		for _, item := range items {
			if !containsValue(merged, item) {
				merged = append(merged, item)
			}
		}
	}

	appendMissing(base)
	appendMissing(local)
	appendMissing(remote)

	return merged
}

func mergeObjects(base, local, remote map[string]any) map[string]any {
	merged := make(map[string]any)

	for _, field := range fieldUnion(base, local, remote) {
		b, inBase := lookup(base, field)
		l, inLocal := lookup(local, field)
		r, inRemote := lookup(remote, field)

		switch {
		case inLocal == inRemote && valuesEqual(l, r):
			if inLocal {
				merged[field] = l
			}
		case inLocal == inBase && valuesEqual(l, b):
			if inRemote {
				merged[field] = r
			}
		case inRemote == inBase && valuesEqual(r, b):
			if inLocal {
				merged[field] = l
			}
		default:
			merged[field] = SmartMerge(b, l, r)
		}
	}

	return merged
}

func fieldUnion(maps ...map[string]any) []string {
	seen := make(map[string]struct{})
	for _, m := range maps {
		for field := range m {
			seen[field] = struct{}{}
		}
	}

	fields := make([]string, 0, len(seen))
	for field := range seen {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return fields
}

func lookup(m map[string]any, field string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m[field]
	return v, ok
}

func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func containsValue(items []any, value any) bool {
	for _, item := range items {
		if valuesEqual(item, value) {
			return true
		}
	}
	return false
}

func creditChanges(local []*models.Change, creditLocal bool, remote []*models.Change, creditRemote bool) []string {
	ids := []string{}
	if creditLocal {
		for _, change := range local {
			ids = append(ids, change.ID)
		}
	}
	if creditRemote {
		for _, change := range remote {
			ids = append(ids, change.ID)
		}
	}
	return ids
}
