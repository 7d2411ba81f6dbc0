package transitgraph

import (
	"sort"

	"github.com/yourorg/wayfindsg/internal/geo"
)

// missingStationPenalty is returned by StopCountBetween when either station
// is not actually on the requested line (data inconsistency). Route finding
// stays total instead of failing on bad data.
const missingStationPenalty = 10

// Graph is the static rail network. It is built once at startup and is
// read-only afterwards, so concurrent use needs no locking.
type Graph struct {
	stations []Station
	byCode   map[string]int
	byLine   map[LineID][]int
	lines    map[LineID]Line
}

// New builds the graph from the built-in Singapore network table.
func New() *Graph {
	return newGraph(stationTable, lines)
}

// newGraph exists so tests can load a small synthetic network.
func newGraph(stations []Station, lineDefs []Line) *Graph {
	g := &Graph{
		stations: stations,
		byCode:   make(map[string]int, len(stations)),
		byLine:   make(map[LineID][]int),
		lines:    make(map[LineID]Line, len(lineDefs)),
	}
	for _, l := range lineDefs {
		g.lines[l.ID] = l
	}
	for i, s := range stations {
		g.byCode[s.Code] = i
		for _, l := range s.Lines {
			g.byLine[l] = append(g.byLine[l], i)
		}
	}
	return g
}

// Stations returns every station in declaration order.
func (g *Graph) Stations() []Station {
	return g.stations
}

// StationByCode looks a station up by its stable code (e.g. "NS25").
func (g *Graph) StationByCode(code string) (Station, bool) {
	i, ok := g.byCode[code]
	if !ok {
		return Station{}, false
	}
	return g.stations[i], true
}

// LineByID returns the display metadata for a line.
func (g *Graph) LineByID(id LineID) (Line, bool) {
	l, ok := g.lines[id]
	return l, ok
}

// NearbyStations returns every station within radiusMeters of point, sorted
// by ascending distance. Radius is in meters, the system's canonical unit.
func (g *Graph) NearbyStations(point geo.Coordinate, radiusMeters float64) []Station {
	type candidate struct {
		station Station
		dist    float64
	}

	var found []candidate
	for _, s := range g.stations {
		d := geo.DistanceMeters(point, s.Coord)
		if d <= radiusMeters {
			found = append(found, candidate{station: s, dist: d})
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i].dist < found[j].dist })

	out := make([]Station, len(found))
	for i, c := range found {
		out[i] = c.station
	}
	return out
}

// SharedLines returns the lines serving both stations, in the order they
// appear in a's line list. The ordering is observable: the rail finder rides
// the first shared line it sees.
func (g *Graph) SharedLines(a, b Station) []LineID {
	bLines := make(map[LineID]bool, len(b.Lines))
	for _, l := range b.Lines {
		bLines[l] = true
	}

	var shared []LineID
	for _, l := range a.Lines {
		if bLines[l] {
			shared = append(shared, l)
		}
	}
	return shared
}

// StopCountBetween returns the number of stops between two stations on a
// line, computed as the absolute index difference within the line's ordered
// station subsequence. If either station is missing from the line (data
// inconsistency), a fixed penalty of 10 is returned rather than an error.
func (g *Graph) StopCountBetween(a, b Station, line LineID) int {
	ai, bi := -1, -1
	for pos, idx := range g.byLine[line] {
		switch g.stations[idx].Code {
		case a.Code:
			ai = pos
		case b.Code:
			bi = pos
		}
	}

	if ai < 0 || bi < 0 {
		return missingStationPenalty
	}
	if ai > bi {
		return ai - bi
	}
	return bi - ai
}

// Interchanges returns every station served by more than one line, in
// declaration order.
func (g *Graph) Interchanges() []Station {
	var out []Station
	for _, s := range g.stations {
		if s.Interchange() {
			out = append(out, s)
		}
	}
	return out
}

// Lines returns all line definitions.
func (g *Graph) Lines() []Line {
	return lines
}
