package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/transitgraph"
	"github.com/yourorg/wayfindsg/internal/validation"
)

type StationsHandler struct {
	graph *transitgraph.Graph
}

func NewStationsHandler(graph *transitgraph.Graph) *StationsHandler {
	return &StationsHandler{graph: graph}
}

// ListStations handles GET /api/stations.
func (h *StationsHandler) ListStations(c *fiber.Ctx) error {
	stations := h.graph.Stations()
	return c.JSON(fiber.Map{
		"stations": stations,
		"lines":    h.graph.Lines(),
		"count":    len(stations),
	})
}

// GetStation handles GET /api/stations/:code.
func (h *StationsHandler) GetStation(c *fiber.Ctx) error {
	code := c.Params("code")
	station, ok := h.graph.StationByCode(code)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "station not found"})
	}
	return c.JSON(station)
}

// GetNearbyStations handles GET /api/stations/nearby?lat=X&lng=Y&radius=1500.
func (h *StationsHandler) GetNearbyStations(c *fiber.Ctx) error {
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

	radius := 1500.0
	if raw := c.Query("radius"); raw != "" {
		r, err := strconv.ParseFloat(raw, 64)
		if err != nil || r <= 0 || r > 5000 {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "radius must be between 1 and 5000 meters"})
		}
		radius = r
	}

	stations := h.graph.NearbyStations(geo.Coordinate{Lat: lat, Lng: lng}, radius)
	return c.JSON(fiber.Map{
		"stations": stations,
		"count":    len(stations),
	})
}
