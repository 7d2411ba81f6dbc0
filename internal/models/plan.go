package models

import (
	"time"

	"github.com/yourorg/wayfindsg/internal/geo"
)

// SegmentKind identifies the travel mode of one itinerary segment.
type SegmentKind string

const (
	SegmentWalk SegmentKind = "walk"
	SegmentRail SegmentKind = "rail"
	SegmentBus  SegmentKind = "bus"
)

// Direction is the turn announcement class for a walking instruction.
// Voice guidance on the client keys haptic patterns off these values.
type Direction string

const (
	DirectionLeft     Direction = "left"
	DirectionRight    Direction = "right"
	DirectionUTurn    Direction = "uturn"
	DirectionStraight Direction = "straight"
)

// Instruction is one step of turn-by-turn walking guidance.
type Instruction struct {
	Text           string    `json:"text"`
	Direction      Direction `json:"direction"`
	DistanceMeters float64   `json:"distanceMeters,omitempty"`
}

// Segment is one leg of an itinerary. Kind decides which of the optional
// fields are populated. Path is never empty: even the straight-line walking
// fallback carries both endpoints.
type Segment struct {
	Kind        SegmentKind      `json:"kind"`
	Path        []geo.Coordinate `json:"path"`
	DistanceKm  float64          `json:"distanceKm"`
	DurationMin float64          `json:"durationMin"`

	// walk
	Instructions []Instruction `json:"instructions,omitempty"`
	Source       string        `json:"source,omitempty"`

	// rail
	Line        string `json:"line,omitempty"`
	FromStation string `json:"fromStation,omitempty"`
	ToStation   string `json:"toStation,omitempty"`
	ViaStation  string `json:"viaStation,omitempty"`
	StopCount   int    `json:"stopCount,omitempty"`
	Transfers   int    `json:"transfers,omitempty"`

	// bus
	ServiceNo string       `json:"serviceNo,omitempty"`
	FromStop  string       `json:"fromStop,omitempty"`
	ToStop    string       `json:"toStop,omitempty"`
	Arrivals  []BusArrival `json:"arrivals,omitempty"`
}

// Itinerary is one complete door-to-door option.
type Itinerary struct {
	Mode             string    `json:"mode"`
	Segments         []Segment `json:"segments"`
	TotalDistanceKm  float64   `json:"totalDistanceKm"`
	TotalDurationMin float64   `json:"totalDurationMin"`
	Summary          string    `json:"summary"`
}

// Alternatives always lists both evaluated options. Either pointer may be
// nil when that option could not be computed.
type Alternatives struct {
	Walking *Itinerary `json:"walking"`
	Transit *Itinerary `json:"transit"`
}

// PlanMetadata echoes the request back alongside the computation time.
type PlanMetadata struct {
	StartLocation geo.Coordinate `json:"startLocation"`
	DestLocation  geo.Coordinate `json:"destLocation"`
	CalculatedAt  time.Time      `json:"calculatedAt"`
}

// PlanResponse is the success body of the route planning endpoint.
type PlanResponse struct {
	Success          bool         `json:"success"`
	TotalDistanceKm  float64      `json:"totalDistanceKm"`
	RecommendedRoute *Itinerary   `json:"recommendedRoute"`
	Alternatives     Alternatives `json:"alternatives"`
	Metadata         PlanMetadata `json:"metadata"`
}

// PlanErrorResponse is the degraded-mode body for unexpected failures.
type PlanErrorResponse struct {
	Error    string `json:"error"`
	Fallback bool   `json:"fallback"`
}
