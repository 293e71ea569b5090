package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"time"

	"transport-admin/api"
	"transport-admin/auth"
	"transport-admin/backend"
	"transport-admin/cache"
	"transport-admin/config"
	"transport-admin/database"
	"transport-admin/events"
	"transport-admin/middleware"
	"transport-admin/migration"
	"transport-admin/tracking"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	config.InitConfig()

	if *migrateOnly {
		if err := migration.RunMigrations(); err != nil {
			log.Fatalf("Migration error: %v", err)
		}
		return
	}

	// Token storage: redis when configured, else in-memory.
	var tokens auth.TokenStore = auth.NewMemoryTokenStore()
	var live *cache.LiveIndex
	if config.Cfg.Redis.Addr != "" {
		if err := cache.InitRedis(); err != nil {
			log.Fatal(err)
		}
		tokens = auth.NewRedisTokenStore(cache.RedisClient, 24*time.Hour)
		live = cache.NewLiveIndex(cache.RedisClient)
	}

	client := backend.NewClient(config.Cfg.Backend.BaseURL, tokens)
	session := auth.NewSession(tokens, client)

	var publisher events.Publisher = events.NoopPublisher{}
	if config.Cfg.AMQP.URL != "" {
		amqpPub, err := events.NewAMQPPublisher(config.Cfg.AMQP.URL, config.Cfg.AMQP.Exchange)
		if err != nil {
			log.Fatal(err)
		}
		defer amqpPub.Close()
		publisher = amqpPub
	}

	server := &api.Server{
		Backend:   client,
		Session:   session,
		Publisher: publisher,
		Live:      live,
		Dashboard: &tracking.StaticProvider{
			Delay: time.Duration(config.Cfg.Tracking.FixtureDelayMs) * time.Millisecond,
		},
	}

	// The tracking store replaces the fixture dashboard when a database
	// is configured.
	if database.Configured() {
		if err := database.InitDB(); err != nil {
			log.Fatal(err)
		}
		store := tracking.NewStore(database.DB)
		fences := tracking.NewGeofenceIndex()
		if active, err := store.ListGeofences(context.Background(), true); err == nil {
			fences.Reload(active)
		} else {
			log.Printf("initial geofence load: %v", err)
		}

		hub := tracking.NewHub()
		window := time.Duration(config.Cfg.Tracking.RecentWindowMinutes) * time.Minute

		// A nil *LiveIndex must not become a non-nil LivePositions.
		var positions tracking.LivePositions
		if live != nil {
			positions = live
		}

		server.Store = store
		server.Fences = fences
		server.Hub = hub
		server.Tracker = tracking.NewTracker(store, positions, fences, hub, publisher)
		server.Dashboard = &tracking.StoreProvider{Store: store, Window: window}
	}

	authMW := middleware.NewAuthMiddleware(config.Cfg.Auth.JWTSecret)
	router := api.RegisterRoutes(server, authMW)

	log.Printf("Server started on %s", config.Cfg.Server.Addr)
	log.Fatal(http.ListenAndServe(config.Cfg.Server.Addr, router))
}
