package domain

import (
	"math"
	"time"
)

// Interval временной интервал бронирования [Start, End]
type Interval struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the interval is well-formed (start strictly before end)
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Overlaps проверяет пересечение двух интервалов.
// Сравнение включающее с обеих сторон: соприкасающиеся границы считаются
// пересечением. Это же условие используют конфликтные запросы в репозиториях
// (start_date <= $end AND end_date >= $start).
func (i Interval) Overlaps(other Interval) bool {
	return !i.Start.After(other.End) && !other.Start.After(i.End)
}

// Days returns the number of whole billing days in the interval, minimum 1
func (i Interval) Days() int {
	days := int(math.Ceil(i.End.Sub(i.Start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// RentalAmount вычисляет стоимость аренды: дневная цена умноженная
// на число дней (неполный день округляется вверх, минимум один день)
func RentalAmount(dailyPrice float64, interval Interval) float64 {
	return dailyPrice * float64(interval.Days())
}
