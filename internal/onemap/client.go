// OneMap client. Covers two provider roles: free-text place search
// (geocoding) and walking directions (the primary provider in the walking
// route chain). OneMap returns route geometry as an encoded polyline.
package onemap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
)

// Client talks to the OneMap REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a client from the environment. ONEMAP_TOKEN is required
// for the routing endpoints; search is public.
func NewClient() *Client {
	baseURL := os.Getenv("ONEMAP_URL")
	if baseURL == "" {
		baseURL = "https://www.onemap.gov.sg"
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      os.Getenv("ONEMAP_TOKEN"),
		httpClient: &http.Client{Timeout: 6 * time.Second},
	}
}

type searchResult struct {
	SearchVal string `json:"SEARCHVAL"`
	Address   string `json:"ADDRESS"`
	Latitude  string `json:"LATITUDE"`
	Longitude string `json:"LONGITUDE"`
}

type searchResponse struct {
	Found   int            `json:"found"`
	Results []searchResult `json:"results"`
}

// Search resolves a free-text place name to candidate coordinates.
func (c *Client) Search(ctx context.Context, query string) ([]models.GeocodeResult, error) {
	params := url.Values{}
	params.Set("searchVal", query)
	params.Set("returnGeom", "Y")
	params.Set("getAddrDetails", "Y")

	u := fmt.Sprintf("%s/api/common/elastic/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("onemap search: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("onemap search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("onemap search: status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("onemap search: decode: %w", err)
	}

	results := make([]models.GeocodeResult, 0, len(body.Results))
	for _, r := range body.Results {
		lat, errLat := strconv.ParseFloat(r.Latitude, 64)
		lng, errLng := strconv.ParseFloat(r.Longitude, 64)
		if errLat != nil || errLng != nil {
			continue
		}
		results = append(results, models.GeocodeResult{
			Name:    r.SearchVal,
			Address: r.Address,
			Coord:   geo.Coordinate{Lat: lat, Lng: lng},
		})
	}

	return results, nil
}

type routeSummary struct {
	TotalTime     float64 `json:"total_time"`     // seconds
	TotalDistance float64 `json:"total_distance"` // meters
}

type routeResponse struct {
	RouteGeometry     string          `json:"route_geometry"`
	RouteSummary      routeSummary    `json:"route_summary"`
	RouteInstructions [][]interface{} `json:"route_instructions"`
	Status            int             `json:"status"`
}

// WalkRoute is a normalized walking route from OneMap.
type WalkRoute struct {
	Path           []geo.Coordinate
	Instructions   []string
	DistanceMeters float64
	DurationSec    float64
}

// WalkingRoute requests turn-by-turn walking directions between two points.
// Returns an error (never a partial result) on any provider failure so the
// caller can fall through to the next provider.
func (c *Client) WalkingRoute(ctx context.Context, from, to geo.Coordinate) (*WalkRoute, error) {
	params := url.Values{}
	params.Set("start", fmt.Sprintf("%f,%f", from.Lat, from.Lng))
	params.Set("end", fmt.Sprintf("%f,%f", to.Lat, to.Lng))
	params.Set("routeType", "walk")

	u := fmt.Sprintf("%s/api/public/routingsvc/route?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("onemap route: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("onemap route: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("onemap route: status %d", resp.StatusCode)
	}

	var body routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("onemap route: decode: %w", err)
	}

	path := decodePolyline(body.RouteGeometry)
	if len(path) == 0 {
		return nil, fmt.Errorf("onemap route: empty geometry")
	}

	instructions := make([]string, 0, len(body.RouteInstructions))
	for _, raw := range body.RouteInstructions {
		// Instruction rows are positional: [maneuver, street, ...].
		var parts []string
		for i := 0; i < len(raw) && i < 2; i++ {
			if s, ok := raw[i].(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			instructions = append(instructions, strings.Join(parts, " onto "))
		}
	}

	return &WalkRoute{
		Path:           path,
		Instructions:   instructions,
		DistanceMeters: body.RouteSummary.TotalDistance,
		DurationSec:    body.RouteSummary.TotalTime,
	}, nil
}

// decodePolyline decodes a Google-format encoded polyline (precision 1e5)
// into coordinates. Malformed input yields the points decoded so far.
func decodePolyline(encoded string) []geo.Coordinate {
	var coords []geo.Coordinate
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		for _, target := range []*int{&lat, &lng} {
			result, shift := 0, 0
			for {
				if index >= len(encoded) {
					return coords
				}
				b := int(encoded[index]) - 63
				index++
				result |= (b & 0x1f) << shift
				shift += 5
				if b < 0x20 {
					break
				}
			}
			delta := result >> 1
			if result&1 != 0 {
				delta = ^delta
			}
			*target += delta
		}
		coords = append(coords, geo.Coordinate{
			Lat: float64(lat) / 1e5,
			Lng: float64(lng) / 1e5,
		})
	}

	return coords
}
