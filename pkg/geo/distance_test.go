package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	// совпадающие точки
	assert.InDelta(t, 0.0, Distance(40.7128, -74.0060, 40.7128, -74.0060), 1e-9)

	// Москва - Санкт-Петербург, около 634 км
	d := Distance(55.7558, 37.6173, 59.9343, 30.3351)
	assert.InDelta(t, 634.0, d, 5.0)

	// один градус широты на экваторе, около 111 км
	d = Distance(0, 0, 1, 0)
	assert.InDelta(t, 111.2, d, 1.0)
}

func TestIsNear(t *testing.T) {
	stationLat, stationLon := 40.7128, -74.0060

	// точное совпадение координат проходит геозону
	assert.True(t, IsNear(40.7128, -74.0060, stationLat, stationLon, 1.0))

	// примерно 500 метров от станции
	assert.True(t, IsNear(40.7173, -74.0060, stationLat, stationLon, 1.0))

	// другая сторона планеты
	assert.False(t, IsNear(0, 0, stationLat, stationLon, 1.0))

	// чуть дальше километра
	assert.False(t, IsNear(40.7228, -74.0060, stationLat, stationLon, 1.0))
}
