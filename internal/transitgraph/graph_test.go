package transitgraph

import (
	"testing"

	"github.com/yourorg/wayfindsg/internal/geo"
)

func mustStation(t *testing.T, g *Graph, code string) Station {
	t.Helper()
	s, ok := g.StationByCode(code)
	if !ok {
		t.Fatalf("station %s not in table", code)
	}
	return s
}

func TestStationCodesUnique(t *testing.T) {
	g := New()
	seen := make(map[string]bool)
	for _, s := range g.Stations() {
		if seen[s.Code] {
			t.Errorf("duplicate station code %s", s.Code)
		}
		seen[s.Code] = true
		if len(s.Lines) == 0 {
			t.Errorf("station %s has no lines", s.Code)
		}
		if !s.Coord.IsValid() {
			t.Errorf("station %s has invalid coordinates", s.Code)
		}
	}
}

func TestInterchangeDerivedFromLines(t *testing.T) {
	g := New()

	cityHall := mustStation(t, g, "NS25")
	if !cityHall.Interchange() {
		t.Error("City Hall serves NSL and EWL, must be an interchange")
	}

	bedok := mustStation(t, g, "EW5")
	if bedok.Interchange() {
		t.Error("Bedok serves one line, must not be an interchange")
	}

	for _, s := range g.Interchanges() {
		if len(s.Lines) < 2 {
			t.Errorf("%s returned as interchange with %d lines", s.Code, len(s.Lines))
		}
	}
}

func TestNearbyStationsSortedAscending(t *testing.T) {
	g := New()
	point := geo.Coordinate{Lat: 1.2995, Lng: 103.8455} // near Dhoby Ghaut

	stations := g.NearbyStations(point, 1500)
	if len(stations) == 0 {
		t.Fatal("expected stations within 1.5 km of Dhoby Ghaut")
	}
	if stations[0].Code != "NS24" {
		t.Errorf("expected Dhoby Ghaut first, got %s", stations[0].Code)
	}

	prev := -1.0
	for _, s := range stations {
		d := geo.DistanceMeters(point, s.Coord)
		if d < prev {
			t.Fatalf("stations not sorted by ascending distance at %s", s.Code)
		}
		if d > 1500 {
			t.Fatalf("station %s is %.0f m away, outside the radius", s.Code, d)
		}
		prev = d
	}
}

func TestNearbyStationsEmptyFarAway(t *testing.T) {
	g := New()
	// Middle of the Singapore Strait.
	if got := g.NearbyStations(geo.Coordinate{Lat: 1.20, Lng: 104.10}, 1500); len(got) != 0 {
		t.Errorf("expected no stations, got %d", len(got))
	}
}

func TestSharedLinesOrderFollowsFirstStation(t *testing.T) {
	g := New()
	jurongEast := mustStation(t, g, "NS1")
	cityHall := mustStation(t, g, "NS25")

	shared := g.SharedLines(jurongEast, cityHall)
	if len(shared) != 2 {
		t.Fatalf("expected 2 shared lines, got %v", shared)
	}
	// Jurong East lists EWL first, so EWL must come first.
	if shared[0] != EastWestLine {
		t.Errorf("expected EWL first per Jurong East's line order, got %v", shared)
	}

	bedok := mustStation(t, g, "EW5")
	punggol := mustStation(t, g, "NE17")
	if shared := g.SharedLines(bedok, punggol); len(shared) != 0 {
		t.Errorf("expected no shared lines, got %v", shared)
	}
}

func TestStopCountBetweenExactIndexDifference(t *testing.T) {
	g := New()

	// Compute expected values from the table itself: position within the
	// ordered per-line subsequence.
	indexOnLine := func(code string, line LineID) int {
		pos := 0
		for _, s := range g.Stations() {
			onLine := false
			for _, l := range s.Lines {
				if l == line {
					onLine = true
				}
			}
			if !onLine {
				continue
			}
			if s.Code == code {
				return pos
			}
			pos++
		}
		return -1
	}

	cases := []struct {
		a, b string
		line LineID
	}{
		{"NS1", "NS25", EastWestLine},
		{"NS25", "NS1", EastWestLine},
		{"NS2", "NS20", NorthSouthLine},
		{"NE4", "NE17", NorthEastLine},
	}

	for _, c := range cases {
		a := mustStation(t, g, c.a)
		b := mustStation(t, g, c.b)
		ia, ib := indexOnLine(c.a, c.line), indexOnLine(c.b, c.line)
		if ia < 0 || ib < 0 {
			t.Fatalf("bad test fixture: %s or %s not on %s", c.a, c.b, c.line)
		}
		want := ia - ib
		if want < 0 {
			want = -want
		}
		if got := g.StopCountBetween(a, b, c.line); got != want {
			t.Errorf("StopCountBetween(%s,%s,%s) = %d, want %d", c.a, c.b, c.line, got, want)
		}
	}
}

func TestStopCountBetweenMissingStationPenalty(t *testing.T) {
	g := New()
	bedok := mustStation(t, g, "EW5")
	punggol := mustStation(t, g, "NE17")

	// Punggol is not on the East West Line; the penalty keeps routing total.
	if got := g.StopCountBetween(bedok, punggol, EastWestLine); got != 10 {
		t.Errorf("expected fixed penalty 10, got %d", got)
	}
}

func TestStationByCodeMiss(t *testing.T) {
	g := New()
	if _, ok := g.StationByCode("XX99"); ok {
		t.Error("expected miss for unknown code")
	}
}
