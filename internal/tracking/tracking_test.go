package tracking

import (
	"testing"
	"time"

	"github.com/yourorg/wayfindsg/internal/geo"
)

// Route down North Bridge Road, roughly City Hall towards Bugis.
var plannedRoute = []geo.Coordinate{
	{Lat: 1.292936, Lng: 103.852585},
	{Lat: 1.296000, Lng: 103.854000},
	{Lat: 1.300929, Lng: 103.855996},
}

func TestCheckDeviationOnRoute(t *testing.T) {
	onPath := geo.Coordinate{Lat: 1.296050, Lng: 103.854020}

	if alert := CheckDeviation("s1", 7, onPath, plannedRoute, 150); alert != nil {
		t.Errorf("alert = %+v for position ~6 m off the path", alert)
	}
}

func TestCheckDeviationOffRoute(t *testing.T) {
	// Fort Canning, several hundred meters west of the route
	offPath := geo.Coordinate{Lat: 1.294500, Lng: 103.846000}

	alert := CheckDeviation("s1", 7, offPath, plannedRoute, 150)
	if alert == nil {
		t.Fatal("no alert for position far off the route")
	}
	if alert.ShareID != "s1" || alert.UserID != 7 {
		t.Errorf("alert identity = %q/%d", alert.ShareID, alert.UserID)
	}
	if alert.DistanceMeters <= alert.ThresholdM {
		t.Errorf("DistanceMeters = %v not above threshold %v", alert.DistanceMeters, alert.ThresholdM)
	}
}

func TestCheckDeviationEmptyRoute(t *testing.T) {
	pos := geo.Coordinate{Lat: 1.29, Lng: 103.85}
	if alert := CheckDeviation("s1", 7, pos, nil, 150); alert != nil {
		t.Errorf("alert = %+v with no planned route", alert)
	}
}

func TestDeviationThresholdDefault(t *testing.T) {
	t.Setenv("DEVIATION_THRESHOLD_M", "")
	if got := DeviationThresholdMeters(); got != 150 {
		t.Errorf("default threshold = %v, want 150", got)
	}
	t.Setenv("DEVIATION_THRESHOLD_M", "75.5")
	if got := DeviationThresholdMeters(); got != 75.5 {
		t.Errorf("threshold = %v, want 75.5", got)
	}
	t.Setenv("DEVIATION_THRESHOLD_M", "not-a-number")
	if got := DeviationThresholdMeters(); got != 150 {
		t.Errorf("threshold = %v, want default on bad value", got)
	}
}

func TestDecodeRoutePolyline(t *testing.T) {
	raw := `[{"lat":1.29,"lng":103.85},{"lat":1.30,"lng":103.86}]`
	path, err := DecodeRoutePolyline(raw)
	if err != nil {
		t.Fatalf("DecodeRoutePolyline: %v", err)
	}
	if len(path) != 2 || path[0].Lat != 1.29 {
		t.Errorf("path = %+v", path)
	}
	if _, err := DecodeRoutePolyline("{broken"); err == nil {
		t.Error("no error for malformed polyline")
	}
}

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("share-1")
	defer cancel()

	other, cancelOther := h.Subscribe("share-2")
	defer cancelOther()

	h.Publish(Update{ShareID: "share-1", Latitude: 1.29, Longitude: 103.85, UpdatedAt: time.Now()})

	select {
	case u := <-ch:
		if u.Latitude != 1.29 {
			t.Errorf("Latitude = %v", u.Latitude)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received update")
	}

	select {
	case u := <-other:
		t.Errorf("wrong share received update %+v", u)
	default:
	}
}

func TestHubCancelRemovesWatcher(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe("share-1")
	if n := h.WatcherCount("share-1"); n != 1 {
		t.Fatalf("WatcherCount = %d, want 1", n)
	}
	cancel()
	if n := h.WatcherCount("share-1"); n != 0 {
		t.Errorf("WatcherCount after cancel = %d, want 0", n)
	}
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe("share-1")
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			h.Publish(Update{ShareID: "share-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on slow subscriber")
	}
}
