package handlers

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/yourorg/wayfindsg/internal/models"
)

type TripHistoryHandler struct {
	db *sql.DB
}

func NewTripHistoryHandler(db *sql.DB) *TripHistoryHandler {
	return &TripHistoryHandler{db: db}
}

// SaveTrip handles POST /api/trips.
func (h *TripHistoryHandler) SaveTrip(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}

	var req models.TripHistoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "invalid request body"})
	}

	tripID := uuid.New().String()
	_, err := h.db.Exec(`
		INSERT INTO trip_history (
			id, user_id, origin_lat, origin_lng,
			destination_lat, destination_lng, destination_name,
			mode, distance_km, duration_min, started_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`,
		tripID, userID,
		req.OriginLat, req.OriginLng,
		req.DestinationLat, req.DestinationLng, req.DestinationName,
		req.Mode, req.DistanceKm, req.DurationMin,
	)
	if err != nil {
		log.Printf("save trip failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to save trip"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "trip saved",
		"trip_id": tripID,
	})
}

// CompleteTrip handles POST /api/trips/:id/complete.
func (h *TripHistoryHandler) CompleteTrip(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}
	tripID := c.Params("id")

	result, err := h.db.Exec(`
		UPDATE trip_history SET completed_at = NOW()
		WHERE id = ? AND user_id = ? AND completed_at IS NULL
	`, tripID, userID)
	if err != nil {
		log.Printf("complete trip failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to complete trip"})
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "trip not found or already completed"})
	}

	return c.JSON(fiber.Map{"message": "trip completed"})
}

// GetUserTrips handles GET /api/trips.
func (h *TripHistoryHandler) GetUserTrips(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	rows, err := h.db.Query(`
		SELECT id, user_id, origin_lat, origin_lng,
		       destination_lat, destination_lng, destination_name,
		       mode, distance_km, duration_min,
		       started_at, completed_at, created_at
		FROM trip_history
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, userID, limit, offset)
	if err != nil {
		log.Printf("fetch trips failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to fetch trips"})
	}
	defer rows.Close()

	trips := []models.TripHistory{}
	for rows.Next() {
		var trip models.TripHistory
		err := rows.Scan(
			&trip.ID, &trip.UserID,
			&trip.OriginLat, &trip.OriginLng,
			&trip.DestinationLat, &trip.DestinationLng, &trip.DestinationName,
			&trip.Mode, &trip.DistanceKm, &trip.DurationMin,
			&trip.StartedAt, &trip.CompletedAt, &trip.CreatedAt,
		)
		if err != nil {
			continue
		}
		trips = append(trips, trip)
	}

	return c.JSON(fiber.Map{
		"trips": trips,
		"count": len(trips),
	})
}

// GetFrequentLocations handles GET /api/trips/frequent.
// Frequent destinations feed the app's one-tap shortcuts, which matter for
// a traveler who struggles with text entry.
func (h *TripHistoryHandler) GetFrequentLocations(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse{Error: "authentication required"})
	}

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	rows, err := h.db.Query(`
		SELECT destination_name,
		       AVG(destination_lat) as lat,
		       AVG(destination_lng) as lng,
		       COUNT(*) as visit_count,
		       MIN(started_at) as first_visit,
		       MAX(started_at) as last_visit
		FROM trip_history
		WHERE user_id = ? AND destination_name <> ''
		GROUP BY destination_name
		ORDER BY visit_count DESC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		log.Printf("fetch frequent locations failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "failed to fetch frequent locations"})
	}
	defer rows.Close()

	locations := []models.FrequentLocation{}
	for rows.Next() {
		var loc models.FrequentLocation
		if err := rows.Scan(&loc.Name, &loc.Latitude, &loc.Longitude, &loc.VisitCount, &loc.FirstVisit, &loc.LastVisit); err != nil {
			continue
		}
		locations = append(locations, loc)
	}

	return c.JSON(fiber.Map{
		"frequent_locations": locations,
		"count":              len(locations),
	})
}
