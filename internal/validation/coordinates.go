package validation

import (
	"fmt"
	"math"
)

// CoordinateError describes a coordinate validation failure.
type CoordinateError struct {
	Field   string
	Value   float64
	Message string
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%s: %s (value: %.6f)", e.Field, e.Message, e.Value)
}

// ValidateLatitude checks a latitude component.
func ValidateLatitude(lat float64, fieldName string) error {
	if math.IsNaN(lat) {
		return &CoordinateError{Field: fieldName, Value: lat, Message: "NaN is not allowed"}
	}

	if math.IsInf(lat, 0) {
		return &CoordinateError{Field: fieldName, Value: lat, Message: "infinite value is not allowed"}
	}

	if lat < -90 || lat > 90 {
		return &CoordinateError{Field: fieldName, Value: lat, Message: "must be between -90 and 90"}
	}

	return nil
}

// ValidateLongitude checks a longitude component.
func ValidateLongitude(lng float64, fieldName string) error {
	if math.IsNaN(lng) {
		return &CoordinateError{Field: fieldName, Value: lng, Message: "NaN is not allowed"}
	}

	if math.IsInf(lng, 0) {
		return &CoordinateError{Field: fieldName, Value: lng, Message: "infinite value is not allowed"}
	}

	if lng < -180 || lng > 180 {
		return &CoordinateError{Field: fieldName, Value: lng, Message: "must be between -180 and 180"}
	}

	return nil
}

// ValidateCoordinatePair checks a (lat, lng) pair; prefix names the fields
// in the error ("start_lat" etc.).
func ValidateCoordinatePair(lat, lng float64, prefix string) error {
	if err := ValidateLatitude(lat, prefix+"Lat"); err != nil {
		return err
	}

	if err := ValidateLongitude(lng, prefix+"Lng"); err != nil {
		return err
	}

	return nil
}

// ValidateSingaporeRegion checks that a coordinate falls inside the island's
// bounding box (roughly lat 1.15 to 1.48, lng 103.59 to 104.10).
func ValidateSingaporeRegion(lat, lng float64) error {
	const (
		minLat = 1.15
		maxLat = 1.48
		minLng = 103.59
		maxLng = 104.10
	)

	if lat < minLat || lat > maxLat {
		return &CoordinateError{
			Field:   "latitude",
			Value:   lat,
			Message: fmt.Sprintf("outside the Singapore range (%.2f to %.2f)", minLat, maxLat),
		}
	}

	if lng < minLng || lng > maxLng {
		return &CoordinateError{
			Field:   "longitude",
			Value:   lng,
			Message: fmt.Sprintf("outside the Singapore range (%.2f to %.2f)", minLng, maxLng),
		}
	}

	return nil
}

// IsZeroCoordinate reports whether a coordinate is (0, 0), the null island
// sentinel many devices emit before a GPS fix.
func IsZeroCoordinate(lat, lng float64) bool {
	return lat == 0 && lng == 0
}
