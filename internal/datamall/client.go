// LTA DataMall client. Implements the transit data provider: bus stops,
// bus routes, live bus arrivals and train service alerts. All endpoints
// return {"value": [...]} pages of up to 500 records selected with $skip.
package datamall

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

	"github.com/yourorg/wayfindsg/internal/cache"
	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
)

const (
	pageSize = 500

	// Pagination caps keep a cold cache from turning one planning request
	// into an unbounded call storm. A truncated table is a known limitation
	// of the provider contract, not an error.
	maxStopPages  = 60
	maxRoutePages = 120
)

// ProviderError marks any upstream failure (network, non-2xx, bad payload).
// Callers recover from it locally; it never surfaces to the API client.
type ProviderError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("datamall %s: status %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("datamall %s: %v", e.Endpoint, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Client talks to the DataMall OData service.
type Client struct {
	baseURL    string
	accountKey string
	httpClient *http.Client
	cache      *cache.Cache
}

// NewClient builds a client from the environment. The read-through cache
// keeps the full stop/route tables for 5 minutes so bus planning does not
// re-fetch them on every request.
func NewClient() *Client {
	baseURL := os.Getenv("DATAMALL_URL")
	if baseURL == "" {
		baseURL = "http://datamall2.mytransport.sg/ltaodataservice"
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		accountKey: os.Getenv("DATAMALL_ACCOUNT_KEY"),
		httpClient: &http.Client{Timeout: 6 * time.Second},
		cache:      cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Stop halts the cache cleanup goroutine. Call on shutdown.
func (c *Client) Stop() {
	c.cache.Stop()
}

// wire formats

type busStopRecord struct {
	BusStopCode string  `json:"BusStopCode"`
	RoadName    string  `json:"RoadName"`
	Description string  `json:"Description"`
	Latitude    float64 `json:"Latitude"`
	Longitude   float64 `json:"Longitude"`
}

type busRouteRecord struct {
	ServiceNo    string `json:"ServiceNo"`
	Direction    int    `json:"Direction"`
	StopSequence int    `json:"StopSequence"`
	BusStopCode  string `json:"BusStopCode"`
}

type nextBus struct {
	EstimatedArrival string `json:"EstimatedArrival"`
	Load             string `json:"Load"`
}

type busArrivalService struct {
	ServiceNo string  `json:"ServiceNo"`
	NextBus   nextBus `json:"NextBus"`
}

type busArrivalResponse struct {
	BusStopCode string              `json:"BusStopCode"`
	Services    []busArrivalService `json:"Services"`
}

type trainAlertMessage struct {
	Content string `json:"Content"`
}

type trainAlertValue struct {
	Status  int                 `json:"Status"` // 1 normal, 2 disrupted
	Line    string              `json:"AffectedSegments,omitempty"`
	Message []trainAlertMessage `json:"Message"`
}

type trainAlertResponse struct {
	Value trainAlertValue `json:"value"`
}

// getPage fetches one OData page into out (a pointer to {"value": [...]}).
func (c *Client) getPage(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return &ProviderError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("AccountKey", c.accountKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ProviderError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ProviderError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Endpoint: endpoint, Err: fmt.Errorf("decode: %w", err)}
	}

	return nil
}

// ListBusStops returns every known bus stop, following $skip pagination up
// to the page cap. Cached for 5 minutes.
func (c *Client) ListBusStops(ctx context.Context) ([]models.BusStop, error) {
	if v, found := c.cache.Get("busstops:all"); found {
		return v.([]models.BusStop), nil
	}

	var all []models.BusStop
	for page := 0; page < maxStopPages; page++ {
		var body struct {
			Value []busStopRecord `json:"value"`
		}
		params := url.Values{}
		if page > 0 {
			params.Set("$skip", strconv.Itoa(page*pageSize))
		}
		if err := c.getPage(ctx, "/BusStops", params, &body); err != nil {
			// A failed follow-up page still leaves usable partial data.
			if page > 0 {
				break
			}
			return nil, err
		}
		for _, r := range body.Value {
			all = append(all, models.BusStop{
				Code:        r.BusStopCode,
				Description: r.Description,
				RoadName:    r.RoadName,
				Coord:       geo.Coordinate{Lat: r.Latitude, Lng: r.Longitude},
			})
		}
		if len(body.Value) < pageSize {
			break
		}
	}

	c.cache.Set("busstops:all", all)
	return all, nil
}

// ListBusRoutes returns the full (service, direction, stop, sequence) route
// table, paginated like ListBusStops. Cached for 5 minutes.
func (c *Client) ListBusRoutes(ctx context.Context) ([]models.BusRouteEntry, error) {
	if v, found := c.cache.Get("busroutes:all"); found {
		return v.([]models.BusRouteEntry), nil
	}

	var all []models.BusRouteEntry
	for page := 0; page < maxRoutePages; page++ {
		var body struct {
			Value []busRouteRecord `json:"value"`
		}
		params := url.Values{}
		if page > 0 {
			params.Set("$skip", strconv.Itoa(page*pageSize))
		}
		if err := c.getPage(ctx, "/BusRoutes", params, &body); err != nil {
			if page > 0 {
				break
			}
			return nil, err
		}
		for _, r := range body.Value {
			all = append(all, models.BusRouteEntry{
				ServiceNo:    r.ServiceNo,
				Direction:    r.Direction,
				StopCode:     r.BusStopCode,
				StopSequence: r.StopSequence,
			})
		}
		if len(body.Value) < pageSize {
			break
		}
	}

	c.cache.Set("busroutes:all", all)
	return all, nil
}

// GetBusArrivals returns the live arrival snapshot for one stop. Cached for
// 30 seconds only; this is real-time data.
func (c *Client) GetBusArrivals(ctx context.Context, stopCode string) ([]models.BusArrival, error) {
	key := "arrivals:" + stopCode
	if v, found := c.cache.Get(key); found {
		return v.([]models.BusArrival), nil
	}

	var body busArrivalResponse
	params := url.Values{}
	params.Set("BusStopCode", stopCode)
	if err := c.getPage(ctx, "/v3/BusArrival", params, &body); err != nil {
		return nil, err
	}

	now := time.Now()
	arrivals := make([]models.BusArrival, 0, len(body.Services))
	for _, s := range body.Services {
		if s.NextBus.EstimatedArrival == "" {
			continue
		}
		eta, err := time.Parse(time.RFC3339, s.NextBus.EstimatedArrival)
		if err != nil {
			continue
		}
		mins := int(eta.Sub(now).Minutes())
		if mins < 0 {
			mins = 0
		}
		arrivals = append(arrivals, models.BusArrival{
			ServiceNo:        s.ServiceNo,
			NextArrival:      eta,
			EstimatedMinutes: mins,
			Load:             s.NextBus.Load,
		})
	}

	c.cache.SetWithTTL(key, arrivals, 30*time.Second)
	return arrivals, nil
}

// GetTrainAlerts returns current rail disruption notices. Cached for one
// minute.
func (c *Client) GetTrainAlerts(ctx context.Context) ([]models.ServiceAlert, error) {
	if v, found := c.cache.Get("trainalerts"); found {
		return v.([]models.ServiceAlert), nil
	}

	var body trainAlertResponse
	if err := c.getPage(ctx, "/TrainServiceAlerts", nil, &body); err != nil {
		return nil, err
	}

	status := "normal"
	if body.Value.Status == 2 {
		status = "disrupted"
	}

	var message string
	if len(body.Value.Message) > 0 {
		message = body.Value.Message[0].Content
	}

	alerts := []models.ServiceAlert{{
		Line:    body.Value.Line,
		Status:  status,
		Message: message,
	}}

	c.cache.SetWithTTL("trainalerts", alerts, time.Minute)
	return alerts, nil
}
