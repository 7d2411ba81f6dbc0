package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used for all great-circle math.
const EarthRadiusMeters = 6371000.0

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IsValid reports whether both components are finite and inside Earth ranges.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// DistanceMeters returns the great-circle distance between two points in
// meters. This is the single canonical distance function of the system;
// every km-scale caller derives from it via DistanceKm.
func DistanceMeters(a, b Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// DistanceKm returns the great-circle distance in kilometers.
func DistanceKm(a, b Coordinate) float64 {
	return DistanceMeters(a, b) / 1000.0
}

// BearingDegrees returns the initial bearing (forward azimuth) from a to b
// in [0, 360), where 0 is North and 90 is East. At zero distance the bearing
// is mathematically undefined; 0 is returned instead of NaN.
func BearingDegrees(from, to Coordinate) float64 {
	if from.Lat == to.Lat && from.Lng == to.Lng {
		return 0
	}

	lat1 := from.Lat * math.Pi / 180
	lat2 := to.Lat * math.Pi / 180
	lngDiff := (to.Lng - from.Lng) * math.Pi / 180

	y := math.Sin(lngDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lngDiff)
	bearing := math.Atan2(y, x) * 180 / math.Pi

	return math.Mod(bearing+360, 360)
}

// MinDistanceToPathMeters returns the smallest distance from p to any segment
// of the polyline. An empty path yields +Inf, a single-point path the distance
// to that point. Used by deviation detection against a planned route.
func MinDistanceToPathMeters(p Coordinate, path []Coordinate) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	if len(path) == 1 {
		return DistanceMeters(p, path[0])
	}

	min := math.Inf(1)
	for i := 0; i < len(path)-1; i++ {
		d := distanceToSegmentMeters(p, path[i], path[i+1])
		if d < min {
			min = d
		}
	}
	return min
}

// distanceToSegmentMeters projects p onto the segment a-b using a local
// equirectangular approximation, which is accurate at city scale.
func distanceToSegmentMeters(p, a, b Coordinate) float64 {
	refLat := a.Lat * math.Pi / 180
	ax, ay := 0.0, 0.0
	bx := (b.Lng - a.Lng) * math.Cos(refLat)
	by := b.Lat - a.Lat
	px := (p.Lng - a.Lng) * math.Cos(refLat)
	py := p.Lat - a.Lat

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return DistanceMeters(p, a)
	}

	t := (px*dx + py*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Coordinate{
		Lat: a.Lat + t*(b.Lat-a.Lat),
		Lng: a.Lng + t*(b.Lng-a.Lng),
	}
	return DistanceMeters(p, closest)
}
