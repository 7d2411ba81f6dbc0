package models

import "time"

// TripHistory is one saved trip.
type TripHistory struct {
	ID              string     `json:"id" db:"id"`
	UserID          int64      `json:"user_id" db:"user_id"`
	OriginLat       float64    `json:"origin_lat" db:"origin_lat"`
	OriginLng       float64    `json:"origin_lng" db:"origin_lng"`
	DestinationLat  float64    `json:"destination_lat" db:"destination_lat"`
	DestinationLng  float64    `json:"destination_lng" db:"destination_lng"`
	DestinationName string     `json:"destination_name" db:"destination_name"`
	Mode            string     `json:"mode" db:"mode"`
	DistanceKm      float64    `json:"distance_km" db:"distance_km"`
	DurationMin     float64    `json:"duration_min" db:"duration_min"`
	StartedAt       time.Time  `json:"started_at" db:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}

// FrequentLocation is a destination aggregated from past trips.
type FrequentLocation struct {
	Name       string    `json:"name"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	VisitCount int       `json:"visit_count"`
	FirstVisit time.Time `json:"first_visit"`
	LastVisit  time.Time `json:"last_visit"`
}

// TripHistoryCreateRequest saves a completed or started trip.
type TripHistoryCreateRequest struct {
	OriginLat       float64 `json:"origin_lat"`
	OriginLng       float64 `json:"origin_lng"`
	DestinationLat  float64 `json:"destination_lat"`
	DestinationLng  float64 `json:"destination_lng"`
	DestinationName string  `json:"destination_name"`
	Mode            string  `json:"mode"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMin     float64 `json:"duration_min"`
}
