package models

import (
	"fmt"
	"math"
	"strconv"
)

// LatLng is a coordinate pair in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p LatLng) String() string {
	return fmt.Sprintf("%g,%g", p.Lat, p.Lng)
}

const earthRadiusMeters = 6371000

// DistanceMeters returns the great-circle distance to another point, using
// the haversine formula. Good enough for sorting nearby departments; travel
// time still comes from the routing provider.
func (p LatLng) DistanceMeters(q LatLng) float64 {
	latA := p.Lat * math.Pi / 180
	latB := q.Lat * math.Pi / 180
	dLat := (q.Lat - p.Lat) * math.Pi / 180
	dLng := (q.Lng - p.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// ParseLatLng parses the decimal-string coordinates stored on departments
// and establishments.
func ParseLatLng(latitude, longitude string) (LatLng, error) {
	lat, err := strconv.ParseFloat(latitude, 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("invalid latitude %q: %w", latitude, err)
	}
	lng, err := strconv.ParseFloat(longitude, 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("invalid longitude %q: %w", longitude, err)
	}
	return LatLng{Lat: lat, Lng: lng}, nil
}
