package handlers

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/wayfindsg/internal/graphhopper"
)

// HealthResponse reports the state of the system and its collaborators.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
	Version   string            `json:"version,omitempty"`
}

type HealthHandler struct {
	graphhopper *graphhopper.Client
}

func NewHealthHandler(gh *graphhopper.Client) *HealthHandler {
	return &HealthHandler{graphhopper: gh}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	services := make(map[string]string)
	overall := "healthy"

	setupMu.RLock()
	db := dbConn
	setupMu.RUnlock()

	if db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			services["database"] = "unhealthy: " + err.Error()
			overall = "degraded"
		} else {
			services["database"] = "healthy"
		}
	} else {
		services["database"] = "not_initialized"
		overall = "degraded"
	}

	if h.graphhopper != nil {
		if err := h.graphhopper.HealthCheck(); err != nil {
			// Secondary walking provider: its loss degrades quality, not
			// availability, so the overall status stays green.
			services["graphhopper"] = "unhealthy: " + err.Error()
		} else {
			services["graphhopper"] = "healthy"
		}
	} else {
		services["graphhopper"] = "not_configured"
	}

	statusCode := fiber.StatusOK
	if overall == "degraded" {
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
		Services:  services,
		Version:   os.Getenv("APP_VERSION"),
	})
}
