package bus

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
)

const (
	// stopSearchRadiusMeters bounds the walk to a bus stop.
	stopSearchRadiusMeters = 500.0
	// maxCandidateStops caps how many stops per side enter the pairing
	// search, keeping it cheap against the full route table.
	maxCandidateStops = 5
	// minutesPerStop is the flat travel estimate per bus stop hop.
	minutesPerStop = 2.0
)

// TransitDataProvider supplies the static stop and route tables plus live
// arrivals. *datamall.Client satisfies it.
type TransitDataProvider interface {
	ListBusStops(ctx context.Context) ([]models.BusStop, error)
	ListBusRoutes(ctx context.Context) ([]models.BusRouteEntry, error)
	GetBusArrivals(ctx context.Context, stopCode string) ([]models.BusArrival, error)
}

// Finder locates a single direct bus service between two points. It is
// greedy: the first service found running from an origin candidate to a
// destination candidate wins, with candidates ordered by walking distance.
type Finder struct {
	provider TransitDataProvider
}

func NewFinder(provider TransitDataProvider) *Finder {
	return &Finder{provider: provider}
}

// Find returns a bus segment or nil when no direct service connects the
// two points. Errors from the data provider are returned as-is so the
// planner can degrade instead of guessing.
func (f *Finder) Find(ctx context.Context, from, to geo.Coordinate) (*models.Segment, error) {
	stops, err := f.provider.ListBusStops(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bus stops: %w", err)
	}

	originStops := nearestStops(stops, from, maxCandidateStops)
	destStops := nearestStops(stops, to, maxCandidateStops)
	if len(originStops) == 0 || len(destStops) == 0 {
		return nil, nil
	}

	routes, err := f.provider.ListBusRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bus routes: %w", err)
	}

	// Index the route table by stop code once; the table has tens of
	// thousands of entries and we probe it per candidate pair.
	byStop := make(map[string][]models.BusRouteEntry)
	for _, entry := range routes {
		byStop[entry.StopCode] = append(byStop[entry.StopCode], entry)
	}

	for _, origin := range originStops {
		for _, dest := range destStops {
			if origin.Code == dest.Code {
				continue
			}
			match := matchService(byStop[origin.Code], byStop[dest.Code])
			if match == nil {
				continue
			}
			return f.segment(ctx, origin, dest, *match), nil
		}
	}
	return nil, nil
}

// serviceMatch is a boarding/alighting pair on one service run.
type serviceMatch struct {
	serviceNo string
	stopDelta int
}

// matchService finds the first service that serves both stops in the same
// direction with the destination strictly later in the run. Strict ordering
// rejects boarding a bus that already passed the destination.
func matchService(originEntries, destEntries []models.BusRouteEntry) *serviceMatch {
	for _, o := range originEntries {
		for _, d := range destEntries {
			if o.ServiceNo != d.ServiceNo || o.Direction != d.Direction {
				continue
			}
			if d.StopSequence <= o.StopSequence {
				continue
			}
			return &serviceMatch{
				serviceNo: o.ServiceNo,
				stopDelta: d.StopSequence - o.StopSequence,
			}
		}
	}
	return nil
}

func (f *Finder) segment(ctx context.Context, origin, dest models.BusStop, match serviceMatch) *models.Segment {
	seg := &models.Segment{
		Kind:        models.SegmentBus,
		Path:        []geo.Coordinate{origin.Coord, dest.Coord},
		DistanceKm:  geo.DistanceKm(origin.Coord, dest.Coord),
		DurationMin: float64(match.stopDelta) * minutesPerStop,
		ServiceNo:   match.serviceNo,
		FromStop:    origin.Description,
		ToStop:      dest.Description,
		StopCount:   match.stopDelta,
	}

	// Live arrivals are decoration: a failure here must not sink an
	// otherwise good route.
	arrivals, err := f.provider.GetBusArrivals(ctx, origin.Code)
	if err != nil {
		log.Printf("bus arrivals lookup for stop %s failed: %v", origin.Code, err)
		return seg
	}
	for _, a := range arrivals {
		if a.ServiceNo == match.serviceNo {
			seg.Arrivals = append(seg.Arrivals, a)
		}
	}
	return seg
}

// nearestStops filters stops within the search radius and returns up to
// limit of them, closest first.
func nearestStops(stops []models.BusStop, point geo.Coordinate, limit int) []models.BusStop {
	type candidate struct {
		stop models.BusStop
		dist float64
	}
	var within []candidate
	for _, s := range stops {
		d := geo.DistanceMeters(point, s.Coord)
		if d <= stopSearchRadiusMeters {
			within = append(within, candidate{stop: s, dist: d})
		}
	}
	sort.Slice(within, func(i, j int) bool { return within[i].dist < within[j].dist })

	if len(within) > limit {
		within = within[:limit]
	}
	result := make([]models.BusStop, 0, len(within))
	for _, c := range within {
		result = append(result, c.stop)
	}
	return result
}
