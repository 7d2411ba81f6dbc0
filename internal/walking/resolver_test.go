package walking

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
)

var (
	testFrom = geo.Coordinate{Lat: 1.333152, Lng: 103.742286}
	testTo   = geo.Coordinate{Lat: 1.292936, Lng: 103.852585}
)

type fakeProvider struct {
	name  string
	route *ProviderRoute
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Route(ctx context.Context, from, to geo.Coordinate) (*ProviderRoute, error) {
	f.calls++
	return f.route, f.err
}

func TestResolvePrimaryWins(t *testing.T) {
	primary := &fakeProvider{
		name: "primary",
		route: &ProviderRoute{
			Path:         []geo.Coordinate{testFrom, {Lat: 1.31, Lng: 103.80}, testTo},
			Instructions: []string{"Head east", "Turn left onto Victoria St"},
			DistanceKm:   13.2,
			DurationMin:  176,
		},
	}
	secondary := &fakeProvider{name: "secondary"}

	seg := NewResolver(primary, secondary).Resolve(context.Background(), testFrom, testTo)

	if seg.Source != "primary" {
		t.Fatalf("Source = %q, want primary", seg.Source)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called %d times despite primary success", secondary.calls)
	}
	if seg.Kind != models.SegmentWalk {
		t.Errorf("Kind = %q, want walk", seg.Kind)
	}
	if len(seg.Path) != 3 {
		t.Errorf("len(Path) = %d, want 3", len(seg.Path))
	}
	if len(seg.Instructions) != 2 {
		t.Fatalf("len(Instructions) = %d, want 2", len(seg.Instructions))
	}
	if seg.Instructions[1].Direction != models.DirectionLeft {
		t.Errorf("Instructions[1].Direction = %q, want left", seg.Instructions[1].Direction)
	}
}

func TestResolveSecondaryOnPrimaryFailure(t *testing.T) {
	primary := &fakeProvider{name: "primary", err: errors.New("timeout")}
	secondary := &fakeProvider{
		name: "secondary",
		route: &ProviderRoute{
			Path:       []geo.Coordinate{testFrom, testTo},
			DistanceKm: 13.0,
			// no duration: must be derived from walking speed
		},
	}

	seg := NewResolver(primary, secondary).Resolve(context.Background(), testFrom, testTo)

	if seg.Source != "secondary" {
		t.Fatalf("Source = %q, want secondary", seg.Source)
	}
	wantMin := 13.0 / 4.5 * 60
	if math.Abs(seg.DurationMin-wantMin) > 1e-9 {
		t.Errorf("DurationMin = %v, want %v", seg.DurationMin, wantMin)
	}
}

func TestResolveEmptyRouteTreatedAsFailure(t *testing.T) {
	primary := &fakeProvider{name: "primary", route: &ProviderRoute{}}
	secondary := &fakeProvider{
		name:  "secondary",
		route: &ProviderRoute{Path: []geo.Coordinate{testFrom, testTo}, DistanceKm: 1},
	}

	seg := NewResolver(primary, secondary).Resolve(context.Background(), testFrom, testTo)

	if seg.Source != "secondary" {
		t.Fatalf("Source = %q, want secondary", seg.Source)
	}
}

func TestResolveStraightLineFallback(t *testing.T) {
	primary := &fakeProvider{name: "primary", err: errors.New("down")}
	secondary := &fakeProvider{name: "secondary", err: errors.New("also down")}

	seg := NewResolver(primary, secondary).Resolve(context.Background(), testFrom, testTo)

	if seg.Source != "straight-line" {
		t.Fatalf("Source = %q, want straight-line", seg.Source)
	}
	if len(seg.Path) != 2 {
		t.Fatalf("len(Path) = %d, want 2", len(seg.Path))
	}
	if seg.Path[0] != testFrom || seg.Path[1] != testTo {
		t.Errorf("Path = %v, want endpoints only", seg.Path)
	}

	wantKm := geo.DistanceKm(testFrom, testTo)
	if math.Abs(seg.DistanceKm-wantKm) > 1e-9 {
		t.Errorf("DistanceKm = %v, want %v", seg.DistanceKm, wantKm)
	}
	wantMin := wantKm / 4.5 * 60
	if math.Abs(seg.DurationMin-wantMin) > 1e-9 {
		t.Errorf("DurationMin = %v, want %v", seg.DurationMin, wantMin)
	}
	if len(seg.Instructions) != 1 || seg.Instructions[0].Direction != models.DirectionStraight {
		t.Errorf("fallback instructions = %+v, want single straight instruction", seg.Instructions)
	}
}

func TestResolveNoProviders(t *testing.T) {
	seg := NewResolver().Resolve(context.Background(), testFrom, testTo)
	if seg.Source != "straight-line" {
		t.Fatalf("Source = %q, want straight-line", seg.Source)
	}
}

func TestClassifyDirection(t *testing.T) {
	cases := []struct {
		text string
		want models.Direction
	}{
		{"Turn left onto North Bridge Road", models.DirectionLeft},
		{"Sharp Left", models.DirectionLeft},
		{"Turn right onto Bras Basah Road", models.DirectionRight},
		{"Keep RIGHT at the fork", models.DirectionRight},
		{"Make a U-turn at the junction", models.DirectionUTurn},
		{"uturn ahead", models.DirectionUTurn},
		{"Continue straight for 300 m", models.DirectionStraight},
		{"Head east on Jurong Gateway Road", models.DirectionStraight},
		{"", models.DirectionStraight},
	}

	for _, tc := range cases {
		if got := ClassifyDirection(tc.text); got != tc.want {
			t.Errorf("ClassifyDirection(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}
