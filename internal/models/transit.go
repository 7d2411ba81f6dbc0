package models

import (
	"time"

	"github.com/yourorg/wayfindsg/internal/geo"
)

// BusStop is one physical bus stop as reported by the transit data provider.
type BusStop struct {
	Code        string         `json:"code"`
	Description string         `json:"description"`
	RoadName    string         `json:"road_name,omitempty"`
	Coord       geo.Coordinate `json:"coordinates"`
}

// BusRouteEntry is one (service, direction, stop) tuple from the provider's
// route table. Two stops are connected by a service when they share
// (ServiceNo, Direction) and the destination's StopSequence is strictly
// greater than the origin's.
type BusRouteEntry struct {
	ServiceNo    string `json:"service_no"`
	Direction    int    `json:"direction"`
	StopCode     string `json:"stop_code"`
	StopSequence int    `json:"stop_sequence"`
}

// BusArrival is a live arrival estimate at a stop.
type BusArrival struct {
	ServiceNo        string    `json:"service_no"`
	NextArrival      time.Time `json:"next_arrival"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	Load             string    `json:"load"` // SEA | SDA | LSD per provider convention
}

// ServiceAlert is a rail service disruption notice.
type ServiceAlert struct {
	Line    string `json:"line"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// GeocodeResult is one place returned by the geocoding provider.
type GeocodeResult struct {
	Name    string         `json:"name"`
	Address string         `json:"address,omitempty"`
	Coord   geo.Coordinate `json:"coordinates"`
}

// ErrorResponse is a simple error shape for API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
