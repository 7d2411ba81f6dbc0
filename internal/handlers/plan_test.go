package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
)

type fakePlanner struct {
	calls int
	panic bool
	resp  models.PlanResponse
}

func (f *fakePlanner) Plan(ctx context.Context, from, to geo.Coordinate, mode string) models.PlanResponse {
	f.calls++
	if f.panic {
		panic("planner exploded")
	}
	return f.resp
}

func newPlanApp(p *fakePlanner) *fiber.App {
	app := fiber.New()
	app.Get("/api/route/plan", NewRoutePlanHandler(p).PlanRoute)
	return app
}

func planRequest(query string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/api/route/plan?"+query, nil)
}

const validQuery = "startLat=1.333152&startLng=103.742286&destLat=1.292936&destLng=103.852585"

func TestPlanRouteSuccess(t *testing.T) {
	p := &fakePlanner{resp: models.PlanResponse{
		Success:         true,
		TotalDistanceKm: 13.0,
		RecommendedRoute: &models.Itinerary{
			Mode:             "transit",
			TotalDurationMin: 35,
		},
	}}
	app := newPlanApp(p)

	resp, err := app.Test(planRequest(validQuery))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var body models.PlanResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.RecommendedRoute == nil {
		t.Errorf("body = %+v", body)
	}
	if p.calls != 1 {
		t.Errorf("planner calls = %d, want 1", p.calls)
	}
}

func TestPlanRouteValidation(t *testing.T) {
	cases := []struct {
		name  string
		query string
	}{
		{"missing startLat", "startLng=103.74&destLat=1.29&destLng=103.85"},
		{"missing destLng", "startLat=1.33&startLng=103.74&destLat=1.29"},
		{"non numeric", "startLat=abc&startLng=103.74&destLat=1.29&destLng=103.85"},
		{"latitude out of range", "startLat=91&startLng=103.74&destLat=1.29&destLng=103.85"},
		{"longitude out of range", "startLat=1.33&startLng=181&destLat=1.29&destLng=103.85"},
		{"bad mode", validQuery + "&mode=teleport"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &fakePlanner{}
			app := newPlanApp(p)

			resp, err := app.Test(planRequest(tc.query))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if p.calls != 0 {
				t.Errorf("planner called %d times on invalid input", p.calls)
			}
			var body models.ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error == "" {
				t.Error("error message empty")
			}
		})
	}
}

func TestPlanRouteModeAccepted(t *testing.T) {
	for _, mode := range []string{"walking", "transit", "fastest"} {
		p := &fakePlanner{resp: models.PlanResponse{Success: true}}
		app := newPlanApp(p)

		resp, err := app.Test(planRequest(fmt.Sprintf("%s&mode=%s", validQuery, mode)))
		if err != nil {
			t.Fatalf("app.Test(%s): %v", mode, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("mode %s: status = %d, want 200", mode, resp.StatusCode)
		}
	}
}

func TestPlanRoutePanicBecomesFallback(t *testing.T) {
	p := &fakePlanner{panic: true}
	app := newPlanApp(p)

	resp, err := app.Test(planRequest(validQuery))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	var body models.PlanErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
	if !body.Fallback {
		t.Errorf("Fallback = false, want true: %q", raw)
	}
	if body.Error == "" {
		t.Error("error message empty")
	}
}
