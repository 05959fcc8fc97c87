package stats

import (
	"github.com/golang/geo/s2"

	"github.com/shenikar/crime_stats/internal/models"
)

// Центр карты по умолчанию (Монреаль)
const (
	DefaultCenterLat = 45.511833
	DefaultCenterLon = -73.622806
)

// GeoPoints возвращает точки для карты. Записи без координат пропускаются.
func GeoPoints(subset []models.JoinedRecord) []models.GeoPoint {
	points := make([]models.GeoPoint, 0, len(subset))
	for _, r := range subset {
		if !r.HasCoordinates() {
			continue
		}
		points = append(points, models.GeoPoint{
			Latitude:   *r.Latitude,
			Longitude:  *r.Longitude,
			Category:   r.Category,
			OccurredOn: r.OccurredOn,
		})
	}
	return points
}

// Bounds вычисляет охватывающий прямоугольник точек и его центр.
// Для пустого набора возвращается центр по умолчанию с нулевым охватом.
func Bounds(points []models.GeoPoint) models.GeoBounds {
	if len(points) == 0 {
		return models.GeoBounds{
			MinLatitude:  DefaultCenterLat,
			MinLongitude: DefaultCenterLon,
			MaxLatitude:  DefaultCenterLat,
			MaxLongitude: DefaultCenterLon,
			CenterLat:    DefaultCenterLat,
			CenterLon:    DefaultCenterLon,
		}
	}

	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Latitude, p.Longitude))
	}
	lo, hi, center := rect.Lo(), rect.Hi(), rect.Center()

	return models.GeoBounds{
		MinLatitude:  lo.Lat.Degrees(),
		MinLongitude: lo.Lng.Degrees(),
		MaxLatitude:  hi.Lat.Degrees(),
		MaxLongitude: hi.Lng.Degrees(),
		CenterLat:    center.Lat.Degrees(),
		CenterLon:    center.Lng.Degrees(),
	}
}
