package mobility

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean radius used for the spherical Earth approximation.
const EarthRadiusKm = 6371.0

// Coordinate is a resolved latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewCoordinate returns nil unless both values are present.
func NewCoordinate(lat, lon *float64) *Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	return &Coordinate{Lat: *lat, Lon: *lon}
}

func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90,90]", ErrInvalidCoordinate, c.Lat)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180,180]", ErrInvalidCoordinate, c.Lon)
	}
	return nil
}

// Distance returns the haversine great-circle distance in kilometers,
// rounded to one decimal place.
func Distance(lat1, lon1, lat2, lon2 float64) (float64, error) {
	return DistanceBetween(Coordinate{Lat: lat1, Lon: lon1}, Coordinate{Lat: lat2, Lon: lon2})
}

func DistanceBetween(a, b Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	// Clamp float drift so Sqrt(1-h) never sees a negative.
	h = math.Min(1, math.Max(0, h))
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return roundKm(EarthRadiusKm * c), nil
}

func roundKm(v float64) float64 {
	return math.Round(v*10) / 10
}
