package rail

import (
	"fmt"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/transitgraph"
)

const (
	// minutesPerStop is the flat travel estimate per station hop.
	minutesPerStop = 2.5
	// transferPenaltyMin covers walking between platforms and waiting
	// for the connecting train.
	transferPenaltyMin = 5.0
)

// Finder searches the rail network for a route between candidate station
// sets. It tries direct lines first and single-transfer routes second;
// deeper itineraries are out of reach of this network's topology in
// practice and are not searched.
type Finder struct {
	graph *transitgraph.Graph
}

func NewFinder(graph *transitgraph.Graph) *Finder {
	return &Finder{graph: graph}
}

// Find returns a rail segment connecting some origin candidate to some
// destination candidate, or nil when no direct or single-transfer route
// exists. Candidates are expected in ascending distance order; the first
// workable pair wins, so closer stations are preferred.
func (f *Finder) Find(origins, dests []transitgraph.Station) *models.Segment {
	if seg := f.findDirect(origins, dests); seg != nil {
		return seg
	}
	return f.findWithTransfer(origins, dests)
}

func (f *Finder) findDirect(origins, dests []transitgraph.Station) *models.Segment {
	for _, from := range origins {
		for _, to := range dests {
			if from.Code == to.Code {
				continue
			}
			shared := f.graph.SharedLines(from, to)
			if len(shared) == 0 {
				continue
			}
			return f.directSegment(from, to, shared[0])
		}
	}
	return nil
}

func (f *Finder) directSegment(from, to transitgraph.Station, line transitgraph.LineID) *models.Segment {
	stops := f.graph.StopCountBetween(from, to, line)

	return &models.Segment{
		Kind:        models.SegmentRail,
		Path:        []geo.Coordinate{from.Coord, to.Coord},
		DistanceKm:  geo.DistanceKm(from.Coord, to.Coord),
		DurationMin: float64(stops) * minutesPerStop,
		Line:        f.lineName(line),
		FromStation: from.Name,
		ToStation:   to.Name,
		StopCount:   stops,
	}
}

func (f *Finder) findWithTransfer(origins, dests []transitgraph.Station) *models.Segment {
	interchanges := f.graph.Interchanges()

	for _, from := range origins {
		for _, to := range dests {
			if from.Code == to.Code {
				continue
			}
			for _, via := range interchanges {
				if via.Code == from.Code || via.Code == to.Code {
					continue
				}
				firstLeg := f.graph.SharedLines(from, via)
				if len(firstLeg) == 0 {
					continue
				}
				secondLeg := f.graph.SharedLines(via, to)
				if len(secondLeg) == 0 {
					continue
				}
				line1, line2 := firstLeg[0], secondLeg[0]
				if line1 == line2 {
					// same line both legs means a direct route,
					// which findDirect already ruled out
					continue
				}
				return f.transferSegment(from, via, to, line1, line2)
			}
		}
	}
	return nil
}

func (f *Finder) transferSegment(from, via, to transitgraph.Station, line1, line2 transitgraph.LineID) *models.Segment {
	stops := f.graph.StopCountBetween(from, via, line1) + f.graph.StopCountBetween(via, to, line2)

	return &models.Segment{
		Kind:        models.SegmentRail,
		Path:        []geo.Coordinate{from.Coord, via.Coord, to.Coord},
		DistanceKm:  geo.DistanceKm(from.Coord, via.Coord) + geo.DistanceKm(via.Coord, to.Coord),
		DurationMin: float64(stops)*minutesPerStop + transferPenaltyMin,
		Line:        fmt.Sprintf("%s / %s", f.lineName(line1), f.lineName(line2)),
		FromStation: from.Name,
		ToStation:   to.Name,
		ViaStation:  via.Name,
		StopCount:   stops,
		Transfers:   1,
	}
}

func (f *Finder) lineName(id transitgraph.LineID) string {
	if line, ok := f.graph.LineByID(id); ok {
		return line.Name
	}
	return string(id)
}
