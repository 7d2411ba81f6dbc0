package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/onemap"
)

type GeocodingHandler struct {
	onemap *onemap.Client
}

func NewGeocodingHandler(client *onemap.Client) *GeocodingHandler {
	return &GeocodingHandler{onemap: client}
}

// Search handles GET /api/geocode/search?q=<query>.
// Free-text place lookup so the traveler can say "City Hall" instead of
// typing coordinates.
func (h *GeocodingHandler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "q is required"})
	}

	results, err := h.onemap.Search(c.Context(), query)
	if err != nil {
		log.Printf("geocode search %q failed: %v", query, err)
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{Error: "geocoding service unavailable"})
	}

	return c.JSON(fiber.Map{
		"query":   query,
		"results": results,
		"count":   len(results),
	})
}
