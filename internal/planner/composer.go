package planner

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/transitgraph"
)

const (
	// walkingPreferenceKm: at or under this straight-line distance the
	// trip is walkable and transit is not recommended, though it is
	// still computed as an alternative.
	walkingPreferenceKm = 1.5
	// railCandidateRadiusMeters bounds the walk to a station.
	railCandidateRadiusMeters = 1500.0
	// mrtWaitMin and busWaitMin are boarding wait estimates added once
	// per transit itinerary.
	mrtWaitMin = 4.0
	busWaitMin = 8.0
)

// Travel mode preferences accepted by Plan.
const (
	ModeWalking = "walking"
	ModeTransit = "transit"
	ModeFastest = "fastest"
)

// WalkResolver produces a walking segment. It never fails.
type WalkResolver interface {
	Resolve(ctx context.Context, from, to geo.Coordinate) models.Segment
}

// RailFinder searches the rail network over station candidate sets.
type RailFinder interface {
	Find(origins, dests []transitgraph.Station) *models.Segment
}

// BusFinder searches for a direct bus service between two points.
type BusFinder interface {
	Find(ctx context.Context, from, to geo.Coordinate) (*models.Segment, error)
}

// Composer evaluates walking and transit in parallel and assembles the
// plan response. It degrades instead of failing: the walking option is
// always available, so a recommendation always exists.
type Composer struct {
	graph   *transitgraph.Graph
	walking WalkResolver
	rail    RailFinder
	bus     BusFinder
}

func NewComposer(graph *transitgraph.Graph, walking WalkResolver, rail RailFinder, bus BusFinder) *Composer {
	return &Composer{graph: graph, walking: walking, rail: rail, bus: bus}
}

// Plan computes both itinerary options and picks a recommendation
// according to the requested mode.
func (c *Composer) Plan(ctx context.Context, from, to geo.Coordinate, mode string) models.PlanResponse {
	totalKm := geo.DistanceKm(from, to)

	var (
		wg          sync.WaitGroup
		walkingItin *models.Itinerary
		transitItin *models.Itinerary
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		walkingItin = c.walkingItinerary(ctx, from, to)
	}()
	go func() {
		defer wg.Done()
		transitItin = c.transitItinerary(ctx, from, to)
	}()
	wg.Wait()

	recommended := c.recommend(mode, totalKm, walkingItin, transitItin)

	return models.PlanResponse{
		Success:          true,
		TotalDistanceKm:  totalKm,
		RecommendedRoute: recommended,
		Alternatives: models.Alternatives{
			Walking: walkingItin,
			Transit: transitItin,
		},
		Metadata: models.PlanMetadata{
			StartLocation: from,
			DestLocation:  to,
			CalculatedAt:  time.Now().UTC(),
		},
	}
}

// recommend applies the selection policy. Walking is the universal
// fallback: it is never nil.
func (c *Composer) recommend(mode string, totalKm float64, walking, transit *models.Itinerary) *models.Itinerary {
	switch {
	case mode == ModeWalking || totalKm <= walkingPreferenceKm:
		return walking
	case mode == ModeTransit:
		if transit != nil {
			return transit
		}
		return walking
	default: // fastest
		if duration(transit) < duration(walking) {
			return transit
		}
		return walking
	}
}

// duration treats a missing itinerary as infinitely slow.
func duration(it *models.Itinerary) float64 {
	if it == nil {
		return math.Inf(1)
	}
	return it.TotalDurationMin
}

func (c *Composer) walkingItinerary(ctx context.Context, from, to geo.Coordinate) *models.Itinerary {
	seg := c.walking.Resolve(ctx, from, to)

	return &models.Itinerary{
		Mode:             ModeWalking,
		Segments:         []models.Segment{seg},
		TotalDistanceKm:  seg.DistanceKm,
		TotalDurationMin: seg.DurationMin,
		Summary:          fmt.Sprintf("Walk %.1f km (about %.0f min)", seg.DistanceKm, seg.DurationMin),
	}
}

// transitItinerary tries rail first and falls back to a direct bus.
// Returns nil when neither mode can serve the trip.
func (c *Composer) transitItinerary(ctx context.Context, from, to geo.Coordinate) *models.Itinerary {
	if it := c.railItinerary(ctx, from, to); it != nil {
		return it
	}
	return c.busItinerary(ctx, from, to)
}

func (c *Composer) railItinerary(ctx context.Context, from, to geo.Coordinate) *models.Itinerary {
	origins := c.graph.NearbyStations(from, railCandidateRadiusMeters)
	dests := c.graph.NearbyStations(to, railCandidateRadiusMeters)
	if len(origins) == 0 || len(dests) == 0 {
		return nil
	}

	railSeg := c.rail.Find(origins, dests)
	if railSeg == nil {
		return nil
	}

	accessWalk := c.walking.Resolve(ctx, from, railSeg.Path[0])
	egressWalk := c.walking.Resolve(ctx, railSeg.Path[len(railSeg.Path)-1], to)

	summary := fmt.Sprintf("Take the %s from %s to %s (%d stops)",
		railSeg.Line, railSeg.FromStation, railSeg.ToStation, railSeg.StopCount)
	if railSeg.Transfers > 0 {
		summary = fmt.Sprintf("%s, change at %s", summary, railSeg.ViaStation)
	}

	return stitch(ModeTransit, summary, mrtWaitMin, accessWalk, *railSeg, egressWalk)
}

func (c *Composer) busItinerary(ctx context.Context, from, to geo.Coordinate) *models.Itinerary {
	busSeg, err := c.bus.Find(ctx, from, to)
	if err != nil {
		log.Printf("bus route search failed: %v", err)
		return nil
	}
	if busSeg == nil {
		return nil
	}

	accessWalk := c.walking.Resolve(ctx, from, busSeg.Path[0])
	egressWalk := c.walking.Resolve(ctx, busSeg.Path[len(busSeg.Path)-1], to)

	summary := fmt.Sprintf("Take bus %s from %s to %s (%d stops)",
		busSeg.ServiceNo, busSeg.FromStop, busSeg.ToStop, busSeg.StopCount)

	return stitch(ModeTransit, summary, busWaitMin, accessWalk, *busSeg, egressWalk)
}

// stitch assembles segments into an itinerary, adding the boarding wait
// once to the total.
func stitch(mode, summary string, waitMin float64, segments ...models.Segment) *models.Itinerary {
	it := &models.Itinerary{
		Mode:             mode,
		Segments:         segments,
		TotalDurationMin: waitMin,
		Summary:          summary,
	}
	for _, seg := range segments {
		it.TotalDistanceKm += seg.DistanceKm
		it.TotalDurationMin += seg.DurationMin
	}
	return it
}
