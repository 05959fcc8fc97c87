package models

// YearRange - включительный диапазон лет
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains проверяет попадание года в диапазон
func (r YearRange) Contains(year int) bool {
	return r.Min <= year && year <= r.Max
}

// FilterPredicate описывает один запрос к статистике.
// Значение неизменяемое: методы возвращают копии.
type FilterPredicate struct {
	neighborhoods    map[string]struct{}
	years            *YearRange
	shifts           map[Shift]struct{}
	categories       map[Category]struct{}
	allNeighborhoods bool
}

// NewFilterPredicate создаёт предикат из выбранных значений фильтров.
// years == nil означает, что диапазон лет не выбран.
func NewFilterPredicate(neighborhoods []string, years *YearRange, shifts []Shift, categories []Category) FilterPredicate {
	p := FilterPredicate{
		neighborhoods: make(map[string]struct{}, len(neighborhoods)),
		shifts:        make(map[Shift]struct{}, len(shifts)),
		categories:    make(map[Category]struct{}, len(categories)),
	}
	for _, n := range neighborhoods {
		p.neighborhoods[n] = struct{}{}
	}
	if years != nil {
		y := *years
		p.years = &y
	}
	for _, s := range shifts {
		p.shifts[s] = struct{}{}
	}
	for _, c := range categories {
		p.categories[c] = struct{}{}
	}
	return p
}

// IsEmpty сообщает, что все четыре измерения фильтра пусты одновременно
// (состояние "не инициализирован").
func (p FilterPredicate) IsEmpty() bool {
	return len(p.neighborhoods) == 0 && !p.allNeighborhoods &&
		p.years == nil &&
		len(p.shifts) == 0 &&
		len(p.categories) == 0
}

// Citywide возвращает предикат с теми же годами, сменами и категориями,
// но без ограничения по районам. Используется для базовой линии "Average".
func (p FilterPredicate) Citywide() FilterPredicate {
	c := p
	c.neighborhoods = nil
	c.allNeighborhoods = true
	return c
}

// Years возвращает выбранный диапазон лет
func (p FilterPredicate) Years() (YearRange, bool) {
	if p.years == nil {
		return YearRange{}, false
	}
	return *p.years, true
}

// Matches проверяет, удовлетворяет ли запись всем измерениям фильтра
func (p FilterPredicate) Matches(r JoinedRecord) bool {
	if !p.allNeighborhoods {
		if _, ok := p.neighborhoods[r.Neighborhood]; !ok || r.Neighborhood == "" {
			return false
		}
	}
	if _, ok := p.shifts[r.Shift]; !ok {
		return false
	}
	if _, ok := p.categories[r.Category]; !ok {
		return false
	}
	if p.years == nil || !p.years.Contains(r.Year()) {
		return false
	}
	return true
}
