package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInterval_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		want     bool
	}{
		{
			name:     "start before end",
			interval: Interval{Start: date(2025, 10, 1), End: date(2025, 10, 3)},
			want:     true,
		},
		{
			name:     "start equals end",
			interval: Interval{Start: date(2025, 10, 1), End: date(2025, 10, 1)},
			want:     false,
		},
		{
			name:     "start after end",
			interval: Interval{Start: date(2025, 10, 3), End: date(2025, 10, 1)},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.interval.IsValid())
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{Start: date(2025, 10, 10), End: date(2025, 10, 15)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{
			name:  "fully inside",
			other: Interval{Start: date(2025, 10, 11), End: date(2025, 10, 14)},
			want:  true,
		},
		{
			name:  "fully covers",
			other: Interval{Start: date(2025, 10, 1), End: date(2025, 10, 30)},
			want:  true,
		},
		{
			name:  "partial left",
			other: Interval{Start: date(2025, 10, 8), End: date(2025, 10, 12)},
			want:  true,
		},
		{
			name:  "partial right",
			other: Interval{Start: date(2025, 10, 14), End: date(2025, 10, 20)},
			want:  true,
		},
		{
			name:  "touching start boundary counts as overlap",
			other: Interval{Start: date(2025, 10, 5), End: date(2025, 10, 10)},
			want:  true,
		},
		{
			name:  "touching end boundary counts as overlap",
			other: Interval{Start: date(2025, 10, 15), End: date(2025, 10, 20)},
			want:  true,
		},
		{
			name:  "strictly before",
			other: Interval{Start: date(2025, 10, 1), End: date(2025, 10, 9)},
			want:  false,
		},
		{
			name:  "strictly after",
			other: Interval{Start: date(2025, 10, 16), End: date(2025, 10, 20)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			// пересечение симметрично
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestInterval_Days(t *testing.T) {
	tests := []struct {
		name     string
		interval Interval
		want     int
	}{
		{
			name:     "exactly two days",
			interval: Interval{Start: date(2025, 10, 1), End: date(2025, 10, 3)},
			want:     2,
		},
		{
			name:     "partial day rounds up",
			interval: Interval{Start: date(2025, 10, 1), End: date(2025, 10, 2).Add(6 * time.Hour)},
			want:     2,
		},
		{
			name:     "less than a day counts as one",
			interval: Interval{Start: date(2025, 10, 1), End: date(2025, 10, 1).Add(3 * time.Hour)},
			want:     1,
		},
		{
			name:     "zero-length interval counts as one",
			interval: Interval{Start: date(2025, 10, 1), End: date(2025, 10, 1)},
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.interval.Days())
		})
	}
}

func TestRentalAmount(t *testing.T) {
	// 100 в день за двое суток
	interval := Interval{Start: date(2025, 10, 1), End: date(2025, 10, 3)}
	assert.Equal(t, 200.0, RentalAmount(100.0, interval))

	// неполный третий день оплачивается целиком
	interval = Interval{Start: date(2025, 10, 1), End: date(2025, 10, 3).Add(time.Hour)}
	assert.Equal(t, 300.0, RentalAmount(100.0, interval))
}
