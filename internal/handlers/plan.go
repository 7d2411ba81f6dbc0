package handlers

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/planner"
	"github.com/yourorg/wayfindsg/internal/validation"
)

// RoutePlanner computes a plan response. *planner.Composer satisfies it.
type RoutePlanner interface {
	Plan(ctx context.Context, from, to geo.Coordinate, mode string) models.PlanResponse
}

type RoutePlanHandler struct {
	planner RoutePlanner
}

func NewRoutePlanHandler(p RoutePlanner) *RoutePlanHandler {
	return &RoutePlanHandler{planner: p}
}

// PlanRoute handles GET /api/route/plan.
// Query: startLat, startLng, destLat, destLng (required), mode (optional:
// walking | transit | fastest).
//
// Input validation happens before any provider is consulted, so a bad
// request costs nothing downstream. Anything that goes wrong after
// validation is converted to a degraded 500 with fallback=true rather
// than an opaque crash.
func (h *RoutePlanHandler) PlanRoute(c *fiber.Ctx) error {
	from, to, mode, errMsg := parsePlanQuery(c)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: errMsg})
	}

	resp, ok := h.safePlan(c.Context(), from, to, mode)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(models.PlanErrorResponse{
			Error:    "route planning failed, please retry",
			Fallback: true,
		})
	}
	return c.JSON(resp)
}

// safePlan isolates the planning engine behind a recover boundary.
func (h *RoutePlanHandler) safePlan(ctx context.Context, from, to geo.Coordinate, mode string) (resp models.PlanResponse, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("route planning panic: %v", r)
			ok = false
		}
	}()
	return h.planner.Plan(ctx, from, to, mode), true
}

// parsePlanQuery validates the four coordinate parameters and the optional
// mode. Returns a non-empty message on the first problem found.
func parsePlanQuery(c *fiber.Ctx) (from, to geo.Coordinate, mode, errMsg string) {
	parse := func(name string) (float64, string) {
		raw := c.Query(name)
		if raw == "" {
			return 0, name + " is required"
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, name + " must be a number"
		}
		return v, ""
	}

	var msg string
	if from.Lat, msg = parse("startLat"); msg != "" {
		return from, to, "", msg
	}
	if from.Lng, msg = parse("startLng"); msg != "" {
		return from, to, "", msg
	}
	if to.Lat, msg = parse("destLat"); msg != "" {
		return from, to, "", msg
	}
	if to.Lng, msg = parse("destLng"); msg != "" {
		return from, to, "", msg
	}

	if err := validation.ValidateCoordinatePair(from.Lat, from.Lng, "start"); err != nil {
		return from, to, "", err.Error()
	}
	if err := validation.ValidateCoordinatePair(to.Lat, to.Lng, "dest"); err != nil {
		return from, to, "", err.Error()
	}

	mode = strings.ToLower(c.Query("mode", planner.ModeFastest))
	switch mode {
	case planner.ModeWalking, planner.ModeTransit, planner.ModeFastest:
	default:
		return from, to, "", "mode must be walking, transit or fastest"
	}
	return from, to, mode, ""
}
