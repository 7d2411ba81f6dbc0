package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/wayfindsg/internal/datamall"
	"github.com/yourorg/wayfindsg/internal/models"
)

type TrainAlertsHandler struct {
	datamall *datamall.Client
}

func NewTrainAlertsHandler(client *datamall.Client) *TrainAlertsHandler {
	return &TrainAlertsHandler{datamall: client}
}

// GetAlerts handles GET /api/train/alerts.
func (h *TrainAlertsHandler) GetAlerts(c *fiber.Ctx) error {
	alerts, err := h.datamall.GetTrainAlerts(c.Context())
	if err != nil {
		log.Printf("train alerts lookup failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{Error: "train alert service unavailable"})
	}

	disrupted := 0
	for _, a := range alerts {
		if a.Status != "normal" {
			disrupted++
		}
	}

	return c.JSON(fiber.Map{
		"alerts":    alerts,
		"disrupted": disrupted,
	})
}
