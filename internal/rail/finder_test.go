package rail

import (
	"math"
	"testing"

	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/transitgraph"
)

func mustStation(t *testing.T, g *transitgraph.Graph, code string) transitgraph.Station {
	t.Helper()
	s, ok := g.StationByCode(code)
	if !ok {
		t.Fatalf("station %s not in graph", code)
	}
	return s
}

func TestFindDirectJurongEastToCityHall(t *testing.T) {
	g := transitgraph.New()
	f := NewFinder(g)

	jurongEast := mustStation(t, g, "NS1")
	cityHall := mustStation(t, g, "NS25")

	seg := f.Find([]transitgraph.Station{jurongEast}, []transitgraph.Station{cityHall})
	if seg == nil {
		t.Fatal("Find returned nil, want direct route")
	}
	if seg.Kind != models.SegmentRail {
		t.Errorf("Kind = %q, want rail", seg.Kind)
	}
	if seg.Transfers != 0 {
		t.Errorf("Transfers = %d, want direct route", seg.Transfers)
	}
	// Jurong East lists the East West Line first, so it wins over the
	// North South Line both stations also share.
	if seg.Line != "East West Line" {
		t.Errorf("Line = %q, want East West Line", seg.Line)
	}
	if seg.FromStation != "Jurong East" || seg.ToStation != "City Hall" {
		t.Errorf("endpoints = %q -> %q", seg.FromStation, seg.ToStation)
	}
	if seg.StopCount <= 0 {
		t.Errorf("StopCount = %d, want positive", seg.StopCount)
	}
	wantMin := float64(seg.StopCount) * minutesPerStop
	if math.Abs(seg.DurationMin-wantMin) > 1e-9 {
		t.Errorf("DurationMin = %v, want %v", seg.DurationMin, wantMin)
	}
	if len(seg.Path) != 2 {
		t.Errorf("len(Path) = %d, want 2", len(seg.Path))
	}
}

func TestFindPrefersEarlierCandidates(t *testing.T) {
	g := transitgraph.New()
	f := NewFinder(g)

	origins := []transitgraph.Station{
		mustStation(t, g, "NS2"), // Bukit Batok, closer candidate
		mustStation(t, g, "NS1"),
	}
	dests := []transitgraph.Station{mustStation(t, g, "NS20")}

	seg := f.Find(origins, dests)
	if seg == nil {
		t.Fatal("Find returned nil")
	}
	if seg.FromStation != "Bukit Batok" {
		t.Errorf("FromStation = %q, want first candidate Bukit Batok", seg.FromStation)
	}
}

func TestFindSingleTransfer(t *testing.T) {
	g := transitgraph.New()
	f := NewFinder(g)

	bukitBatok := mustStation(t, g, "NS2") // North South Line only
	boonKeng := mustStation(t, g, "NE9")   // North East Line only

	seg := f.Find([]transitgraph.Station{bukitBatok}, []transitgraph.Station{boonKeng})
	if seg == nil {
		t.Fatal("Find returned nil, want transfer route")
	}
	if seg.Transfers != 1 {
		t.Fatalf("Transfers = %d, want 1", seg.Transfers)
	}
	if seg.ViaStation == "" {
		t.Error("ViaStation empty on transfer route")
	}
	via, ok := g.StationByCode("NS24") // Dhoby Ghaut, first NSL/NEL interchange in declaration order
	if !ok {
		t.Fatal("NS24 not in graph")
	}
	if seg.ViaStation != via.Name {
		t.Errorf("ViaStation = %q, want %q", seg.ViaStation, via.Name)
	}
	wantMin := float64(seg.StopCount)*minutesPerStop + transferPenaltyMin
	if math.Abs(seg.DurationMin-wantMin) > 1e-9 {
		t.Errorf("DurationMin = %v, want stops*%v+%v = %v", seg.DurationMin, minutesPerStop, transferPenaltyMin, wantMin)
	}
	if len(seg.Path) != 3 {
		t.Errorf("len(Path) = %d, want 3", len(seg.Path))
	}
}

func TestFindDirectBeatsTransfer(t *testing.T) {
	g := transitgraph.New()
	f := NewFinder(g)

	// Both candidates pairs could route with a transfer, but NS2-NS20
	// share a line directly; the direct search must win.
	seg := f.Find(
		[]transitgraph.Station{mustStation(t, g, "NS2")},
		[]transitgraph.Station{mustStation(t, g, "NS20")},
	)
	if seg == nil {
		t.Fatal("Find returned nil")
	}
	if seg.Transfers != 0 {
		t.Errorf("Transfers = %d, want 0 for direct pair", seg.Transfers)
	}
}

func TestFindNoCandidates(t *testing.T) {
	g := transitgraph.New()
	f := NewFinder(g)

	if seg := f.Find(nil, nil); seg != nil {
		t.Errorf("Find(nil, nil) = %+v, want nil", seg)
	}
	only := []transitgraph.Station{mustStation(t, g, "NS2")}
	if seg := f.Find(only, only); seg != nil {
		t.Errorf("Find with identical single candidate = %+v, want nil", seg)
	}
}
