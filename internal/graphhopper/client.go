// GraphHopper client. Used as the secondary walking directions provider:
// a self-hosted routing engine reached over HTTP, tried when OneMap fails.
package graphhopper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Client calls the GraphHopper routing API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client from the environment; defaults to a local
// GraphHopper instance.
func NewClient() *Client {
	baseURL := os.Getenv("GRAPHHOPPER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8989"
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 6 * time.Second},
	}
}

// Point is a geographic point in GraphHopper's request format.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteRequest describes one routing query.
type RouteRequest struct {
	Points        []Point
	Profile       string // "foot", "car"
	Locale        string
	Instructions  bool
	PointsEncoded bool
}

// RouteResponse is the subset of GraphHopper's response the resolver needs.
type RouteResponse struct {
	Paths []Path `json:"paths"`
}

// Path is one computed route.
type Path struct {
	Distance     float64       `json:"distance"` // meters
	Time         int64         `json:"time"`     // milliseconds
	Points       PointList     `json:"points"`
	Instructions []Instruction `json:"instructions"`
}

// PointList holds route geometry as a GeoJSON-style coordinate array
// ([lon, lat] pairs) when points_encoded=false.
type PointList struct {
	Type        string      `json:"type,omitempty"`
	Coordinates [][]float64 `json:"coordinates,omitempty"`
}

// Instruction is one navigation step.
type Instruction struct {
	Distance   float64 `json:"distance"`
	Sign       int     `json:"sign"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
	StreetName string  `json:"street_name,omitempty"`
}

// GetRoute runs one routing query.
func (c *Client) GetRoute(ctx context.Context, req RouteRequest) (*RouteResponse, error) {
	u, err := url.Parse(c.baseURL + "/route")
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}

	q := u.Query()
	for _, p := range req.Points {
		q.Add("point", fmt.Sprintf("%f,%f", p.Lat, p.Lon))
	}
	q.Set("profile", req.Profile)
	q.Set("locale", req.Locale)
	q.Set("points_encoded", fmt.Sprintf("%t", req.PointsEncoded))
	q.Set("instructions", fmt.Sprintf("%t", req.Instructions))
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("graphhopper error %d: %s", resp.StatusCode, string(body))
	}

	var routeResp RouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &routeResp, nil
}

// GetFootRoute requests a simple pedestrian route between two points.
func (c *Client) GetFootRoute(ctx context.Context, fromLat, fromLon, toLat, toLon float64) (*RouteResponse, error) {
	return c.GetRoute(ctx, RouteRequest{
		Points: []Point{
			{Lat: fromLat, Lon: fromLon},
			{Lat: toLat, Lon: toLon},
		},
		Profile:       "foot",
		Locale:        "en",
		PointsEncoded: false,
		Instructions:  true,
	})
}

// HealthCheck reports whether the routing engine is reachable.
func (c *Client) HealthCheck() error {
	resp, err := c.httpClient.Get(c.baseURL + "/health")
	if err != nil {
		return fmt.Errorf("graphhopper unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graphhopper health check failed: %d", resp.StatusCode)
	}

	return nil
}
