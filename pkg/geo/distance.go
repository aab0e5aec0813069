package geo

import "math"

// earthRadiusKm радиус Земли в километрах
const earthRadiusKm = 6371.0

// Distance вычисляет расстояние большого круга между двумя точками
// (формула haversine). Результат в километрах.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := radians(lat1)
	rlat2 := radians(lat2)
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// IsNear проверяет, что точка находится не дальше maxDistanceKm от цели
func IsNear(lat1, lon1, lat2, lon2, maxDistanceKm float64) bool {
	return Distance(lat1, lon1, lat2, lon2) <= maxDistanceKm
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
