package models

import (
	"time"
)

// Category - категория правонарушения (закрытый набор из шести значений)
type Category string

const (
	CategoryDeath        Category = "Infractions entrainant la mort"
	CategoryBreakIn      Category = "Introduction"
	CategoryMischief     Category = "Méfait"
	CategoryTheftFromCar Category = "Vol dans / sur véhicule à moteur"
	CategoryCarTheft     Category = "Vol de véhicule à moteur"
	CategoryRobbery      Category = "Vols qualifiés"
)

// Categories возвращает все категории в фиксированном порядке
func Categories() []Category {
	return []Category{
		CategoryDeath,
		CategoryBreakIn,
		CategoryMischief,
		CategoryTheftFromCar,
		CategoryCarTheft,
		CategoryRobbery,
	}
}

// ParseCategory проверяет, что строка является известной категорией
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Shift - смена (время суток), в которую произошёл инцидент
type Shift string

const (
	ShiftDay     Shift = "jour"
	ShiftEvening Shift = "soir"
	ShiftNight   Shift = "nuit"
)

// Shifts возвращает все смены
func Shifts() []Shift {
	return []Shift{ShiftDay, ShiftEvening, ShiftNight}
}

// ParseShift проверяет, что строка является известной сменой
func ParseShift(s string) (Shift, bool) {
	switch Shift(s) {
	case ShiftDay, ShiftEvening, ShiftNight:
		return Shift(s), true
	}
	return "", false
}

// ShiftAt определяет смену по времени суток:
// jour 08:01-16:00, soir 16:01-00:00, nuit 00:01-08:00
func ShiftAt(t time.Time) Shift {
	minutes := t.Hour()*60 + t.Minute()
	switch {
	case minutes > 8*60 && minutes <= 16*60:
		return ShiftDay
	case minutes > 16*60 || minutes == 0:
		return ShiftEvening
	default:
		return ShiftNight
	}
}

// IncidentRecord - одно зарегистрированное правонарушение
type IncidentRecord struct {
	Category    Category  `json:"category"`
	OccurredOn  time.Time `json:"occurred_on"`
	StationCode string    `json:"station_code"`
	Shift       Shift     `json:"shift"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
}

// Year возвращает год инцидента
func (r IncidentRecord) Year() int {
	return r.OccurredOn.Year()
}

// YearMonth возвращает первый день месяца инцидента (ключ временного ряда)
func (r IncidentRecord) YearMonth() time.Time {
	return time.Date(r.OccurredOn.Year(), r.OccurredOn.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// HasCoordinates сообщает, заданы ли обе координаты
func (r IncidentRecord) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// NeighborhoodInfo - строка справочника "полицейский участок -> район"
type NeighborhoodInfo struct {
	StationCode string `json:"station_code"`
	Name        string `json:"neighborhood_name"`
	Population  int    `json:"population"`
}

// JoinedRecord - инцидент, присоединённый к справочнику районов по коду участка.
// Neighborhood пустой, если участок не найден в справочнике.
type JoinedRecord struct {
	IncidentRecord
	Neighborhood string `json:"neighborhood,omitempty"`
	Population   int    `json:"population,omitempty"`
}
