package routes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/yourorg/wayfindsg/internal/datamall"
	"github.com/yourorg/wayfindsg/internal/graphhopper"
	"github.com/yourorg/wayfindsg/internal/handlers"
	"github.com/yourorg/wayfindsg/internal/middleware"
	"github.com/yourorg/wayfindsg/internal/notify"
	"github.com/yourorg/wayfindsg/internal/onemap"
	"github.com/yourorg/wayfindsg/internal/tracking"
	"github.com/yourorg/wayfindsg/internal/transitgraph"
)

// Dependencies carries the shared services the handlers need.
type Dependencies struct {
	Graph       *transitgraph.Graph
	Planner     handlers.RoutePlanner
	OneMap      *onemap.Client
	GraphHopper *graphhopper.Client
	DataMall    *datamall.Client
	Hub         *tracking.Hub
	Notifier    *notify.Notifier
}

// Register wires every endpoint onto the app.
func Register(app *fiber.App, db *sql.DB, deps Dependencies) {
	api := app.Group("/api")

	// Health check (no rate limiting)
	healthHandler := handlers.NewHealthHandler(deps.GraphHopper)
	api.Get("/health", healthHandler.Health)

	// Authentication, protected against brute force
	api.Post("/register", middleware.AuthRateLimiter(), handlers.Register)
	api.Post("/login", middleware.AuthRateLimiter(), handlers.Login)
	api.Post("/caregiver/link", handlers.RequireAuth, handlers.LinkCaregiver)

	planHandler := handlers.NewRoutePlanHandler(deps.Planner)
	geocodingHandler := handlers.NewGeocodingHandler(deps.OneMap)
	busArrivalsHandler := handlers.NewBusArrivalsHandler(deps.DataMall)
	trainAlertsHandler := handlers.NewTrainAlertsHandler(deps.DataMall)
	stationsHandler := handlers.NewStationsHandler(deps.Graph)
	locationShareHandler := handlers.NewLocationShareHandler(db, deps.Hub, deps.Notifier)
	tripHistoryHandler := handlers.NewTripHistoryHandler(db)

	// Route planning: the core endpoint, fans out to external providers
	api.Get("/route/plan", middleware.PlanRateLimiter(), planHandler.PlanRoute)

	// Geocoding
	api.Get("/geocode/search", geocodingHandler.Search)

	// Bus data
	api.Get("/bus/arrivals", busArrivalsHandler.GetArrivals)
	api.Get("/bus/stops/nearby", busArrivalsHandler.GetNearbyStops)

	// Rail data
	api.Get("/train/alerts", trainAlertsHandler.GetAlerts)
	api.Get("/stations", stationsHandler.ListStations)
	api.Get("/stations/nearby", stationsHandler.GetNearbyStations)
	api.Get("/stations/:code", stationsHandler.GetStation)

	// Location sharing (patient side, authenticated)
	api.Post("/shares", handlers.RequireAuth, locationShareHandler.CreateShare)
	api.Get("/shares", handlers.RequireAuth, locationShareHandler.GetUserShares)
	api.Get("/shares/:id", locationShareHandler.GetShare)
	api.Put("/shares/:id", handlers.RequireAuth, locationShareHandler.UpdateShare)
	api.Delete("/shares/:id", handlers.RequireAuth, locationShareHandler.StopShare)

	// Trip history
	api.Post("/trips", handlers.RequireAuth, tripHistoryHandler.SaveTrip)
	api.Get("/trips", handlers.RequireAuth, tripHistoryHandler.GetUserTrips)
	api.Get("/trips/frequent", handlers.RequireAuth, tripHistoryHandler.GetFrequentLocations)
	api.Post("/trips/:id/complete", handlers.RequireAuth, tripHistoryHandler.CompleteTrip)

	// Caregiver live tracking over websocket. The share ID acts as the
	// access token: it is an unguessable UUID handed out by the patient.
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/track/:shareID", websocket.New(locationShareHandler.TrackShare))
}
