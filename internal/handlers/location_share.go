package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/yourorg/wayfindsg/internal/geo"
	"github.com/yourorg/wayfindsg/internal/models"
	"github.com/yourorg/wayfindsg/internal/notify"
	"github.com/yourorg/wayfindsg/internal/tracking"
	"github.com/yourorg/wayfindsg/internal/validation"
)

type LocationShareHandler struct {
	db       *sql.DB
	hub      *tracking.Hub
	notifier *notify.Notifier
}

func NewLocationShareHandler(db *sql.DB, hub *tracking.Hub, notifier *notify.Notifier) *LocationShareHandler {
	return &LocationShareHandler{db: db, hub: hub, notifier: notifier}
}

// CreateShare handles POST /api/shares. The patient starts a tracking
// session, optionally attaching the planned route for deviation checks.
func (h *LocationShareHandler) CreateShare(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}

	var req models.LocationShareCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid request body"})
	}
	if err := validation.ValidateCoordinatePair(req.Latitude, req.Longitude, ""); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: err.Error()})
	}
	if req.DurationHours < 1 || req.DurationHours > 24 {
		req.DurationHours = 8
	}
	if req.RoutePolyline != nil {
		if _, err := tracking.DecodeRoutePolyline(*req.RoutePolyline); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "route_polyline is not a valid coordinate list"})
		}
	}

	shareID := uuid.New().String()
	expiresAt := time.Now().Add(time.Duration(req.DurationHours) * time.Hour)

	_, err := h.db.Exec(`
		INSERT INTO location_shares (
			id, user_id, latitude, longitude, route_polyline,
			expires_at, is_active, created_at, last_updated_at
		) VALUES (?, ?, ?, ?, ?, ?, true, NOW(), NOW())
	`, shareID, userID, req.Latitude, req.Longitude, req.RoutePolyline, expiresAt)
	if err != nil {
		log.Printf("create share failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to create location share"})
	}

	return c.Status(fiber.StatusCreated).JSON(models.LocationShareResponse{
		ShareID:       shareID,
		ShareURL:      fmt.Sprintf("wayfindsg://share/%s", shareID),
		TimeRemaining: int64(time.Until(expiresAt).Seconds()),
	})
}

// GetShare handles GET /api/shares/:id. Caregivers poll this when they do
// not hold a websocket open.
func (h *LocationShareHandler) GetShare(c *fiber.Ctx) error {
	shareID := c.Params("id")

	share, err := h.loadActiveShare(shareID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "share not found or expired"})
	}
	if err != nil {
		log.Printf("fetch share %s failed: %v", shareID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to fetch share"})
	}
	return c.JSON(share)
}

// UpdateShare handles PUT /api/shares/:id. One position report from the
// patient's device: persist it, check for route deviation, fan out to
// watching caregivers.
func (h *LocationShareHandler) UpdateShare(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}
	shareID := c.Params("id")

	var req models.LocationShareUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid request body"})
	}
	if err := validation.ValidateCoordinatePair(req.Latitude, req.Longitude, ""); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: err.Error()})
	}

	share, err := h.loadActiveShare(shareID)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "share not found or expired"})
	}
	if err != nil {
		log.Printf("load share %s failed: %v", shareID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to update location"})
	}
	if share.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse{Error: "not your share"})
	}

	if _, err := h.db.Exec(`
		UPDATE location_shares
		SET latitude = ?, longitude = ?, last_updated_at = NOW()
		WHERE id = ?
	`, req.Latitude, req.Longitude, shareID); err != nil {
		log.Printf("update share %s failed: %v", shareID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to update location"})
	}

	alert := h.checkDeviation(share, req.Latitude, req.Longitude)

	h.hub.Publish(tracking.Update{
		ShareID:   shareID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Deviation: alert,
		UpdatedAt: time.Now().UTC(),
	})

	resp := fiber.Map{"message": "location updated"}
	if alert != nil {
		resp["deviation"] = alert
	}
	return c.JSON(resp)
}

func (h *LocationShareHandler) checkDeviation(share *models.LocationShare, lat, lng float64) *models.DeviationAlert {
	if share.RoutePolyline == nil {
		return nil
	}
	route, err := tracking.DecodeRoutePolyline(*share.RoutePolyline)
	if err != nil {
		log.Printf("share %s has unreadable route polyline: %v", share.ID, err)
		return nil
	}

	alert := tracking.CheckDeviation(share.ID, share.UserID,
		geo.Coordinate{Lat: lat, Lng: lng}, route, tracking.DeviationThresholdMeters())
	if alert != nil {
		h.notifier.DeviationAlert(*alert)
	}
	return alert
}

// StopShare handles DELETE /api/shares/:id.
func (h *LocationShareHandler) StopShare(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}
	shareID := c.Params("id")

	result, err := h.db.Exec(`
		UPDATE location_shares
		SET is_active = false, last_updated_at = NOW()
		WHERE id = ? AND user_id = ?
	`, shareID, userID)
	if err != nil {
		log.Printf("stop share %s failed: %v", shareID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to stop sharing"})
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "share not found"})
	}

	return c.JSON(fiber.Map{"message": "sharing stopped"})
}

// GetUserShares handles GET /api/shares.
func (h *LocationShareHandler) GetUserShares(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}

	rows, err := h.db.Query(`
		SELECT id, user_id, latitude, longitude, route_polyline,
		       created_at, expires_at, is_active, last_updated_at
		FROM location_shares
		WHERE user_id = ? AND is_active = true AND expires_at > NOW()
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		log.Printf("fetch shares failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to fetch shares"})
	}
	defer rows.Close()

	shares := []models.LocationShare{}
	for rows.Next() {
		var share models.LocationShare
		if err := rows.Scan(
			&share.ID, &share.UserID, &share.Latitude, &share.Longitude, &share.RoutePolyline,
			&share.CreatedAt, &share.ExpiresAt, &share.IsActive, &share.LastUpdatedAt,
		); err != nil {
			continue
		}
		shares = append(shares, share)
	}

	return c.JSON(fiber.Map{
		"shares": shares,
		"count":  len(shares),
	})
}

func (h *LocationShareHandler) loadActiveShare(shareID string) (*models.LocationShare, error) {
	var share models.LocationShare
	err := h.db.QueryRow(`
		SELECT id, user_id, latitude, longitude, route_polyline,
		       created_at, expires_at, is_active, last_updated_at
		FROM location_shares
		WHERE id = ? AND is_active = true AND expires_at > NOW()
	`, shareID).Scan(
		&share.ID, &share.UserID, &share.Latitude, &share.Longitude, &share.RoutePolyline,
		&share.CreatedAt, &share.ExpiresAt, &share.IsActive, &share.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &share, nil
}

// TrackShare is the websocket endpoint GET /ws/track/:shareID. Caregivers
// receive live position updates as JSON frames until they disconnect or
// the share goes away.
func (h *LocationShareHandler) TrackShare(conn *websocket.Conn) {
	shareID := conn.Params("shareID")
	defer conn.Close()

	if _, err := h.loadActiveShare(shareID); err != nil {
		_ = conn.WriteJSON(models.ErrorResponse{Error: "share not found or expired"})
		return
	}

	updates, cancel := h.hub.Subscribe(shareID)
	defer cancel()

	// Drain reads so ping/pong and close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case u := <-updates:
			if err := conn.WriteJSON(u); err != nil {
				return
			}
		}
	}
}
