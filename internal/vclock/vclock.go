// Package vclock реализует векторные часы: счетчики по устройствам,
// позволяющие установить причинный порядок между изменениями,
// созданными конкурентно на разных устройствах.
package vclock

// Clock отображает device_id в монотонно возрастающий счетчик.
type Clock map[string]int64

// New создает пустые векторные часы.
func New() Clock {
	return make(Clock)
}

// Tick увеличивает счетчик устройства на единицу и возвращает новое значение.
// Используется при создании нового локального изменения.
func (c Clock) Tick(deviceID string) int64 {
	c[deviceID]++
	return c[deviceID]
}

// Get возвращает счетчик устройства (0, если устройство неизвестно).
func (c Clock) Get(deviceID string) int64 {
	return c[deviceID]
}

// Merge вливает удаленные часы в текущие: для каждого устройства берется
// максимум из двух счетчиков. Операция коммутативна, идемпотентна
// и ассоциативна, поэтому ее безопасно применять повторно и в любом порядке.
func (c Clock) Merge(other Clock) {
	for deviceID, counter := range other {
		if counter > c[deviceID] {
			c[deviceID] = counter
		}
	}
}

// Clone создает независимую копию часов.
func (c Clock) Clone() Clock {
	clone := make(Clock, len(c))
	for deviceID, counter := range c {
		clone[deviceID] = counter
	}
	return clone
}

// Dominates возвращает true, если текущие часы покрывают other:
// каждый счетчик в other не превышает соответствующий счетчик в c.
func (c Clock) Dominates(other Clock) bool {
	for deviceID, counter := range other {
		if c[deviceID] < counter {
			return false
		}
	}
	return true
}

// Concurrent возвращает true, если ни одни часы не покрывают другие,
// то есть изменения были сделаны конкурентно.
func (c Clock) Concurrent(other Clock) bool {
	return !c.Dominates(other) && !other.Dominates(c)
}

// Equal сравнивает два набора часов поэлементно.
// Нулевые счетчики считаются эквивалентными отсутствующим.
func (c Clock) Equal(other Clock) bool {
	return c.Dominates(other) && other.Dominates(c)
}
