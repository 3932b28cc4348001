package models

// Strategy определяет способ разрешения трехстороннего конфликта
type Strategy string

// Поддерживаемые стратегии
const (
	StrategyLocal  Strategy = "local"  // оставить локальное значение
	StrategyRemote Strategy = "remote" // взять удаленное значение
	StrategyManual Strategy = "manual" // отметить для ручного разрешения
	StrategyMerge  Strategy = "merge"  // автоматическое слияние
)

// Valid проверяет, что стратегия известна
func (s Strategy) Valid() bool {
	switch s {
	case StrategyLocal, StrategyRemote, StrategyManual, StrategyMerge:
		return true
	}
	return false
}

// ConflictMarker описывает поле, для которого base, local и remote
// попарно различны. Создается только при настоящем трехстороннем конфликте.
type ConflictMarker struct {
	Base       any      `json:"base"`
	Local      any      `json:"local"`
	Remote     any      `json:"remote"`
	Field      string   `json:"field"`
	Resolution Strategy `json:"resolution"`
}
