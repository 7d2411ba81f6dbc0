package walking

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/graphhopper"
	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/onemap"
)

// walkingSpeedKmh is used to estimate duration when a provider does not
// report one, and for the straight-line fallback.
const walkingSpeedKmh = 4.5

// ProviderRoute is the normalized output of one walking directions provider.
type ProviderRoute struct {
	Path         []geo.Coordinate
	Instructions []string
	DistanceKm   float64
	DurationMin  float64 // 0 when the provider supplies no duration
}

// Provider is one walking directions source. Returning (nil, nil) and
// returning an error are equivalent: both mean "try the next provider".
type Provider interface {
	Name() string
	Route(ctx context.Context, from, to geo.Coordinate) (*ProviderRoute, error)
}

// Resolver tries providers in priority order and falls back to a straight
// line when all of them fail. Resolve never returns an error: the fallback
// is pure arithmetic, so a walking segment is always produced. The planner's
// graceful-degradation promise rests on that guarantee.
type Resolver struct {
	providers []Provider
}

// NewResolver builds a resolver over an explicit provider chain.
func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// NewDefaultResolver wires the production chain: OneMap first, GraphHopper
// second, straight line last.
func NewDefaultResolver(om *onemap.Client, gh *graphhopper.Client) *Resolver {
	return NewResolver(
		&onemapProvider{client: om},
		&graphhopperProvider{client: gh},
	)
}

// Resolve produces a walking segment between two coordinates.
func (r *Resolver) Resolve(ctx context.Context, from, to geo.Coordinate) models.Segment {
	for _, p := range r.providers {
		route, err := p.Route(ctx, from, to)
		if err != nil {
			log.Printf("walking provider %s failed: %v", p.Name(), err)
			continue
		}
		if route == nil || len(route.Path) == 0 {
			log.Printf("walking provider %s returned no route", p.Name())
			continue
		}
		return normalize(route, p.Name())
	}

	return straightLineSegment(from, to)
}

// normalize turns a raw provider route into a Walk segment.
func normalize(route *ProviderRoute, source string) models.Segment {
	durationMin := route.DurationMin
	if durationMin <= 0 {
		durationMin = route.DistanceKm / walkingSpeedKmh * 60
	}

	instructions := make([]models.Instruction, 0, len(route.Instructions))
	for _, text := range route.Instructions {
		instructions = append(instructions, models.Instruction{
			Text:      text,
			Direction: ClassifyDirection(text),
		})
	}

	return models.Segment{
		Kind:         models.SegmentWalk,
		Path:         route.Path,
		DistanceKm:   route.DistanceKm,
		DurationMin:  durationMin,
		Instructions: instructions,
		Source:       source,
	}
}

// straightLineSegment is the terminal fallback: a two-point path with
// haversine distance. No I/O, cannot fail.
func straightLineSegment(from, to geo.Coordinate) models.Segment {
	distanceKm := geo.DistanceKm(from, to)

	return models.Segment{
		Kind:        models.SegmentWalk,
		Path:        []geo.Coordinate{from, to},
		DistanceKm:  distanceKm,
		DurationMin: distanceKm / walkingSpeedKmh * 60,
		Instructions: []models.Instruction{{
			Text:      fmt.Sprintf("Walk straight towards your destination (%.0f m)", distanceKm*1000),
			Direction: models.DirectionStraight,
		}},
		Source: "straight-line",
	}
}

// ClassifyDirection maps a maneuver text to a turn announcement class by
// keyword matching: left, right, uturn/u-turn, default straight.
func ClassifyDirection(text string) models.Direction {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "uturn") || strings.Contains(lower, "u-turn"):
		return models.DirectionUTurn
	case strings.Contains(lower, "left"):
		return models.DirectionLeft
	case strings.Contains(lower, "right"):
		return models.DirectionRight
	default:
		return models.DirectionStraight
	}
}

// provider adapters

type onemapProvider struct {
	client *onemap.Client
}

func (p *onemapProvider) Name() string { return "onemap" }

func (p *onemapProvider) Route(ctx context.Context, from, to geo.Coordinate) (*ProviderRoute, error) {
	route, err := p.client.WalkingRoute(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return &ProviderRoute{
		Path:         route.Path,
		Instructions: route.Instructions,
		DistanceKm:   route.DistanceMeters / 1000,
		DurationMin:  route.DurationSec / 60,
	}, nil
}

type graphhopperProvider struct {
	client *graphhopper.Client
}

func (p *graphhopperProvider) Name() string { return "graphhopper" }

func (p *graphhopperProvider) Route(ctx context.Context, from, to geo.Coordinate) (*ProviderRoute, error) {
	resp, err := p.client.GetFootRoute(ctx, from.Lat, from.Lng, to.Lat, to.Lng)
	if err != nil {
		return nil, err
	}
	if len(resp.Paths) == 0 {
		return nil, nil
	}

	path := resp.Paths[0]

	// GraphHopper geometry is [lon, lat] pairs.
	coords := make([]geo.Coordinate, 0, len(path.Points.Coordinates))
	for _, c := range path.Points.Coordinates {
		if len(c) < 2 {
			continue
		}
		coords = append(coords, geo.Coordinate{Lat: c[1], Lng: c[0]})
	}

	instructions := make([]string, 0, len(path.Instructions))
	for _, inst := range path.Instructions {
		instructions = append(instructions, inst.Text)
	}

	return &ProviderRoute{
		Path:         coords,
		Instructions: instructions,
		DistanceKm:   path.Distance / 1000,
		DurationMin:  float64(path.Time) / 1000 / 60,
	}, nil
}
