package handlers

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/wayfindsg/internal/datamall"
	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/validation"
)

type BusArrivalsHandler struct {
	datamall *datamall.Client
}

func NewBusArrivalsHandler(client *datamall.Client) *BusArrivalsHandler {
	return &BusArrivalsHandler{datamall: client}
}

// GetArrivals handles GET /api/bus/arrivals?stop=<code>.
func (h *BusArrivalsHandler) GetArrivals(c *fiber.Ctx) error {
	stopCode := strings.TrimSpace(c.Query("stop"))
	if stopCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "stop is required"})
	}

	arrivals, err := h.datamall.GetBusArrivals(c.Context(), stopCode)
	if err != nil {
		log.Printf("bus arrivals for %s failed: %v", stopCode, err)
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{Error: "arrivals service unavailable"})
	}

	return c.JSON(fiber.Map{
		"stop_code": stopCode,
		"arrivals":  arrivals,
		"count":     len(arrivals),
	})
}

// GetNearbyStops handles GET /api/bus/stops/nearby?lat=X&lng=Y&radius=500.
// Returns stops within the radius, closest first, capped at 10.
func (h *BusArrivalsHandler) GetNearbyStops(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "lat must be a number"})
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "lng must be a number"})
	}
	if err := validation.ValidateCoordinatePair(lat, lng, ""); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: err.Error()})
	}

	radius := 500.0
	if raw := c.Query("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || r <= 0 || r > 2000 {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "radius must be between 1 and 2000 meters"})
		}
		radius = r
	}

	stops, err := h.datamall.ListBusStops(c.Context())
	if err != nil {
		log.Printf("nearby stops lookup failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{Error: "bus stop data unavailable"})
	}

	point := geo.Coordinate{Lat: lat, Lng: lng}
	type stopWithDistance struct {
		models.BusStop
		DistanceMeters float64 `json:"distance_meters"`
	}
	var nearby []stopWithDistance
	for _, s := range stops {
		d := geo.DistanceMeters(point, s.Coord)
		if d <= radius {
			nearby = append(nearby, stopWithDistance{BusStop: s, DistanceMeters: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceMeters < nearby[j].DistanceMeters })
	if len(nearby) > 10 {
		nearby = nearby[:10]
	}

	return c.JSON(fiber.Map{
		"stops": nearby,
		"count": len(nearby),
	})
}
