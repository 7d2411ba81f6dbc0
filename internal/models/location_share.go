package models

import "time"

// LocationShare is a live tracking session: a patient streaming positions to
// linked caregivers, optionally checked against a planned route polyline.
type LocationShare struct {
	ID            string    `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	Latitude      float64   `json:"latitude" db:"latitude"`
	Longitude     float64   `json:"longitude" db:"longitude"`
	RoutePolyline *string   `json:"route_polyline,omitempty" db:"route_polyline"` // JSON encoded []geo.Coordinate
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	ExpiresAt     time.Time `json:"expires_at" db:"expires_at"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	LastUpdatedAt time.Time `json:"last_updated_at" db:"last_updated_at"`
}

// LocationShareCreateRequest starts a tracking session.
type LocationShareCreateRequest struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	RoutePolyline *string `json:"route_polyline,omitempty"`
	DurationHours int     `json:"duration_hours"`
}

// LocationShareUpdateRequest is one position update from the device.
type LocationShareUpdateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationShareResponse is returned when a share is created.
type LocationShareResponse struct {
	ShareID       string `json:"share_id"`
	ShareURL      string `json:"share_url"`
	TimeRemaining int64  `json:"time_remaining_seconds"`
}

// DeviationAlert is emitted when a tracked position drifts off the planned
// route beyond the configured threshold.
type DeviationAlert struct {
	ShareID        string    `json:"share_id"`
	UserID         int64     `json:"user_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
	ThresholdM     float64   `json:"threshold_meters"`
	DetectedAt     time.Time `json:"detected_at"`
}
