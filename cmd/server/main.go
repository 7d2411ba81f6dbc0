package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/yourorg/wayfindsg/internal/bus"
	"github.com/yourorg/wayfindsg/internal/datamall"
	appdb "github.com/yourorg/wayfindsg/internal/db"
	"github.com/yourorg/wayfindsg/internal/graphhopper"
	"github.com/yourorg/wayfindsg/internal/handlers"
	"github.com/yourorg/wayfindsg/internal/middleware"
	"github.com/yourorg/wayfindsg/internal/notify"
	"github.com/yourorg/wayfindsg/internal/onemap"
	"github.com/yourorg/wayfindsg/internal/planner"
	"github.com/yourorg/wayfindsg/internal/rail"
	"github.com/yourorg/wayfindsg/internal/routes"
	"github.com/yourorg/wayfindsg/internal/tracking"
	"github.com/yourorg/wayfindsg/internal/transitgraph"
	"github.com/yourorg/wayfindsg/internal/walking"
)

func main() {
	_ = godotenv.Load()

	app := fiber.New()
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.GlobalRateLimiter())

	// Shared services. The transit graph is static and the provider
	// clients cache internally, so everything is built once up front.
	graph := transitgraph.New()
	onemapClient := onemap.NewClient()
	ghClient := graphhopper.NewClient()
	datamallClient := datamall.NewClient()

	walkResolver := walking.NewDefaultResolver(onemapClient, ghClient)
	railFinder := rail.NewFinder(graph)
	busFinder := bus.NewFinder(datamallClient)
	composer := planner.NewComposer(graph, walkResolver, railFinder, busFinder)

	hub := tracking.NewHub()
	notifier := notify.NewFromEnv()
	if notifier.Enabled() {
		log.Println("Slack deviation alerts enabled")
	}

	deps := routes.Dependencies{
		Graph:       graph,
		Planner:     composer,
		OneMap:      onemapClient,
		GraphHopper: ghClient,
		DataMall:    datamallClient,
		Hub:         hub,
		Notifier:    notifier,
	}

	// DB comes up in the background so the planner is usable even while
	// the database is still starting.
	var dbReady bool
	go func() {
		for {
			db, err := appdb.Connect()
			if err != nil {
				log.Printf("db connect error: %v (retrying in 5s)", err)
				time.Sleep(5 * time.Second)
				continue
			}
			if err := appdb.EnsureSchema(db); err != nil {
				log.Printf("ensure schema error: %v (retrying in 5s)", err)
				time.Sleep(5 * time.Second)
				continue
			}
			handlers.Setup(db)
			routes.Register(app, db, deps)
			dbReady = true
			log.Printf("database ready and routes registered")
			return
		}
	}()

	// Wait briefly for DB to be ready
	for i := 0; i < 10 && !dbReady; i++ {
		time.Sleep(500 * time.Millisecond)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("shutdown signal received, closing server...")
		datamallClient.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("error shutting down server: %v", err)
		}
		os.Exit(0)
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("server listening on :%s", port)
	log.Println("endpoints:")
	log.Println("   GET  /api/route/plan        - multi-modal trip planning")
	log.Println("   GET  /api/geocode/search    - place name lookup")
	log.Println("   GET  /api/bus/arrivals      - live bus arrivals")
	log.Println("   GET  /api/train/alerts      - rail disruption notices")
	log.Println("   GET  /api/stations          - MRT/LRT station table")
	log.Println("   POST /api/shares            - start location sharing")
	log.Println("   GET  /ws/track/:shareID     - caregiver live tracking")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
