package planner

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/transitgraph"
)

var (
	jurongEast = geo.Coordinate{Lat: 1.333152, Lng: 103.742286}
	cityHall   = geo.Coordinate{Lat: 1.292936, Lng: 103.852585}
	// two points about 500 m apart in Tiong Bahru
	shortFrom = geo.Coordinate{Lat: 1.2860, Lng: 103.8270}
	shortTo   = geo.Coordinate{Lat: 1.2885, Lng: 103.8305}
	// middle of the Strait, outside any station radius
	openSeaFrom = geo.Coordinate{Lat: 1.20, Lng: 104.05}
	openSeaTo   = geo.Coordinate{Lat: 1.21, Lng: 104.06}
)

type stubWalker struct {
	durationMin float64
}

func (s *stubWalker) Resolve(ctx context.Context, from, to geo.Coordinate) models.Segment {
	km := geo.DistanceKm(from, to)
	min := s.durationMin
	if min == 0 {
		min = km / 4.5 * 60
	}
	return models.Segment{
		Kind:        models.SegmentWalk,
		Path:        []geo.Coordinate{from, to},
		DistanceKm:  km,
		DurationMin: min,
		Source:      "stub",
	}
}

type stubRail struct {
	seg   *models.Segment
	calls int
}

func (s *stubRail) Find(origins, dests []transitgraph.Station) *models.Segment {
	s.calls++
	return s.seg
}

type stubBus struct {
	seg   *models.Segment
	err   error
	calls int
}

func (s *stubBus) Find(ctx context.Context, from, to geo.Coordinate) (*models.Segment, error) {
	s.calls++
	return s.seg, s.err
}

func railSegment() *models.Segment {
	return &models.Segment{
		Kind:        models.SegmentRail,
		Path:        []geo.Coordinate{jurongEast, cityHall},
		DistanceKm:  13.0,
		DurationMin: 25,
		Line:        "East West Line",
		FromStation: "Jurong East",
		ToStation:   "City Hall",
		StopCount:   10,
	}
}

func newComposer(rail *stubRail, bus *stubBus) *Composer {
	return NewComposer(transitgraph.New(), &stubWalker{}, rail, bus)
}

func TestPlanAlwaysReturnsBothAlternatives(t *testing.T) {
	c := newComposer(&stubRail{seg: railSegment()}, &stubBus{})

	resp := c.Plan(context.Background(), jurongEast, cityHall, ModeFastest)

	if !resp.Success {
		t.Error("Success = false")
	}
	if resp.RecommendedRoute == nil {
		t.Fatal("RecommendedRoute is nil")
	}
	if resp.Alternatives.Walking == nil {
		t.Error("Alternatives.Walking is nil")
	}
	if resp.Alternatives.Transit == nil {
		t.Error("Alternatives.Transit is nil")
	}
	if resp.TotalDistanceKm <= 0 {
		t.Errorf("TotalDistanceKm = %v", resp.TotalDistanceKm)
	}
	if resp.Metadata.StartLocation != jurongEast || resp.Metadata.DestLocation != cityHall {
		t.Error("metadata does not echo the request")
	}
}

func TestPlanFastestPrefersTransitOnLongTrip(t *testing.T) {
	c := newComposer(&stubRail{seg: railSegment()}, &stubBus{})

	resp := c.Plan(context.Background(), jurongEast, cityHall, ModeFastest)

	if resp.RecommendedRoute.Mode != ModeTransit {
		t.Fatalf("recommended mode = %q, want transit (13 km trip)", resp.RecommendedRoute.Mode)
	}
	// access walk + rail + egress walk, with a single boarding wait
	if len(resp.RecommendedRoute.Segments) != 3 {
		t.Errorf("segments = %d, want walk/rail/walk", len(resp.RecommendedRoute.Segments))
	}
	it := resp.RecommendedRoute
	var segTotal float64
	for _, seg := range it.Segments {
		segTotal += seg.DurationMin
	}
	if math.Abs(it.TotalDurationMin-(segTotal+mrtWaitMin)) > 1e-9 {
		t.Errorf("TotalDurationMin = %v, want segments %v + wait %v", it.TotalDurationMin, segTotal, mrtWaitMin)
	}
}

func TestPlanShortTripRecommendsWalking(t *testing.T) {
	c := newComposer(&stubRail{seg: railSegment()}, &stubBus{})

	resp := c.Plan(context.Background(), shortFrom, shortTo, ModeFastest)

	if resp.RecommendedRoute.Mode != ModeWalking {
		t.Errorf("recommended mode = %q, want walking for sub-1.5 km trip", resp.RecommendedRoute.Mode)
	}
}

func TestPlanWalkingModeOverridesTransit(t *testing.T) {
	c := newComposer(&stubRail{seg: railSegment()}, &stubBus{})

	resp := c.Plan(context.Background(), jurongEast, cityHall, ModeWalking)

	if resp.RecommendedRoute.Mode != ModeWalking {
		t.Errorf("recommended mode = %q, want walking per request", resp.RecommendedRoute.Mode)
	}
	if resp.Alternatives.Transit == nil {
		t.Error("transit alternative missing despite walking preference")
	}
}

func TestPlanTransitModeFallsBackToWalking(t *testing.T) {
	c := newComposer(&stubRail{}, &stubBus{})

	resp := c.Plan(context.Background(), openSeaFrom, openSeaTo, ModeTransit)

	if resp.RecommendedRoute.Mode != ModeWalking {
		t.Errorf("recommended mode = %q, want walking fallback", resp.RecommendedRoute.Mode)
	}
	if resp.Alternatives.Transit != nil {
		t.Errorf("transit alternative = %+v, want nil", resp.Alternatives.Transit)
	}
}

func TestPlanBusFallbackWhenNoRail(t *testing.T) {
	bus := &stubBus{seg: &models.Segment{
		Kind:        models.SegmentBus,
		Path:        []geo.Coordinate{jurongEast, cityHall},
		DistanceKm:  14.0,
		DurationMin: 40,
		ServiceNo:   "197",
		FromStop:    "Jurong East Int",
		ToStop:      "City Hall Stn",
		StopCount:   20,
	}}
	c := newComposer(&stubRail{}, bus)

	resp := c.Plan(context.Background(), jurongEast, cityHall, ModeTransit)

	if resp.Alternatives.Transit == nil {
		t.Fatal("transit alternative nil, want bus itinerary")
	}
	if bus.calls == 0 {
		t.Error("bus finder never consulted")
	}
	it := resp.Alternatives.Transit
	if len(it.Segments) != 3 || it.Segments[1].Kind != models.SegmentBus {
		t.Fatalf("segments = %+v, want walk/bus/walk", it.Segments)
	}
	var segTotal float64
	for _, seg := range it.Segments {
		segTotal += seg.DurationMin
	}
	if math.Abs(it.TotalDurationMin-(segTotal+busWaitMin)) > 1e-9 {
		t.Errorf("TotalDurationMin = %v, want segments %v + wait %v", it.TotalDurationMin, segTotal, busWaitMin)
	}
}

func TestPlanBusErrorDegradesToWalking(t *testing.T) {
	c := newComposer(&stubRail{}, &stubBus{err: errors.New("datamall down")})

	resp := c.Plan(context.Background(), jurongEast, cityHall, ModeFastest)

	if resp.RecommendedRoute == nil || resp.RecommendedRoute.Mode != ModeWalking {
		t.Fatalf("recommended = %+v, want walking despite bus failure", resp.RecommendedRoute)
	}
	if resp.Alternatives.Transit != nil {
		t.Errorf("transit alternative = %+v, want nil", resp.Alternatives.Transit)
	}
}

func TestPlanSkipsRailOutsideStationRadius(t *testing.T) {
	rail := &stubRail{seg: railSegment()}
	c := newComposer(rail, &stubBus{})

	c.Plan(context.Background(), openSeaFrom, openSeaTo, ModeFastest)

	if rail.calls != 0 {
		t.Errorf("rail finder called %d times with no stations in range", rail.calls)
	}
}
