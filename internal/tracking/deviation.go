package tracking

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
)

// defaultDeviationThresholdMeters is how far off the planned route a
// position may drift before caregivers are alerted. GPS noise in urban
// canyons sits well under this.
const defaultDeviationThresholdMeters = 150.0

// DeviationThresholdMeters reads the configured threshold, falling back
// to the default on absent or invalid values.
func DeviationThresholdMeters() float64 {
	raw := os.Getenv("DEVIATION_THRESHOLD_M")
	if raw == "" {
		return defaultDeviationThresholdMeters
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return defaultDeviationThresholdMeters
	}
	return v
}

// DecodeRoutePolyline parses the JSON coordinate list stored with a share.
func DecodeRoutePolyline(raw string) ([]geo.Coordinate, error) {
	var path []geo.Coordinate
	if err := json.Unmarshal([]byte(raw), &path); err != nil {
		return nil, fmt.Errorf("decode route polyline: %w", err)
	}
	return path, nil
}

// CheckDeviation compares a position against the planned route. Returns a
// populated alert when the position is further than threshold meters from
// every point of the route, nil otherwise. An empty route means nothing to
// deviate from.
func CheckDeviation(shareID string, userID int64, pos geo.Coordinate, route []geo.Coordinate, thresholdM float64) *models.DeviationAlert {
	if len(route) == 0 {
		return nil
	}
	dist := geo.MinDistanceToPathMeters(pos, route)
	if dist <= thresholdM {
		return nil
	}
	return &models.DeviationAlert{
		ShareID:        shareID,
		UserID:         userID,
		Latitude:       pos.Lat,
		Longitude:      pos.Lng,
		DistanceMeters: dist,
		ThresholdM:     thresholdM,
		DetectedAt:     time.Now().UTC(),
	}
}
