package models

// Status - стадия жизненного цикла инцидента
type Status string

const (
	StatusReported   Status = "Reported"
	StatusDispatched Status = "Dispatched"
	StatusEnRoute    Status = "En Route"
	StatusResolved   Status = "Resolved"
)

// Statuses - канонический порядок стадий
var Statuses = []Status{
	StatusReported,
	StatusDispatched,
	StatusEnRoute,
	StatusResolved,
}

// Rank возвращает позицию статуса в каноническом порядке или -1 для неизвестного значения
func (s Status) Rank() int {
	for i, known := range Statuses {
		if s == known {
			return i
		}
	}
	return -1
}

func (s Status) IsValid() bool {
	return s.Rank() >= 0
}

// IsActive - инцидент еще не закрыт
func (s Status) IsActive() bool {
	return s.IsValid() && s != StatusResolved
}

// AllowedPredecessors возвращает статусы, из которых допустим переход в s.
// В строгом режиме движение только вперед (с пропуском стадий), повтор текущего статуса разрешен.
// В мягком режиме разрешен любой переход, включая откат назад.
func (s Status) AllowedPredecessors(lenient bool) []Status {
	if !s.IsValid() {
		return nil
	}
	if lenient {
		return append([]Status(nil), Statuses...)
	}
	return append([]Status(nil), Statuses[:s.Rank()+1]...)
}

// CanTransition проверяет переход from -> to
func CanTransition(from, to Status, lenient bool) bool {
	for _, p := range to.AllowedPredecessors(lenient) {
		if p == from {
			return true
		}
	}
	return false
}

// ParseStatus приводит внешнее значение к каноническому статусу.
// Регистр и пробелы не учитываются: "en route", "EnRoute" и "En Route" равнозначны.
func ParseStatus(raw string) (Status, bool) {
	key := foldKey(raw)
	if key == "" {
		return "", false
	}
	for _, known := range Statuses {
		if foldKey(string(known)) == key {
			return known, true
		}
	}
	return "", false
}
