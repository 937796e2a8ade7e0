package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	httpapi "fleetrent-backend/internal/api/http"
	"fleetrent-backend/internal/config"
	"fleetrent-backend/internal/jobs"
	"fleetrent-backend/internal/logger"
	"fleetrent-backend/internal/metrics"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/repository/memory"
	"fleetrent-backend/internal/repository/postgres"
	"fleetrent-backend/internal/scheduler"
	"fleetrent-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Fleet Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Select the store backend: postgres when reachable, otherwise the
	// in-memory fallback. The decision is made once at startup and never
	// revisited mid-process.
	store := openStore(cfg)

	startTime := time.Now()
	requestCounter := metrics.NewRequestCounter()

	// Initialize Services
	carSvc := service.NewCarService(store.Cars)
	rentalSvc := service.NewRentalService(store.Rentals, store.Cars)
	metricsSvc := service.NewMetricsService(store.Stats, requestCounter, startTime)

	// Start the cron scheduler
	sched := scheduler.NewScheduler(jobs.NewJobRunner(store, cfg))
	sched.Start()
	defer sched.Stop()

	router := httpapi.NewRouter(carSvc, rentalSvc, metricsSvc, requestCounter)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := server.ListenAndServe(); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

// openStore connects to postgres and prepares its schema and seed data. Any
// failure on that path drops the process into the volatile in-memory store,
// which seeds the same initial fleet; data then lives only until restart.
func openStore(cfg *config.Config) *repository.Store {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Warn("Failed to open database, falling back to in-memory store", "error", err)
		return memory.NewStore()
	}
	if err := db.PingContext(ctx); err != nil {
		logger.Warn("Database unreachable, falling back to in-memory store", "error", err)
		db.Close()
		return memory.NewStore()
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Warn("Failed to prepare database schema, falling back to in-memory store", "error", err)
		db.Close()
		return memory.NewStore()
	}
	if err := postgres.Seed(ctx, db); err != nil {
		logger.Warn("Failed to seed database, falling back to in-memory store", "error", err)
		db.Close()
		return memory.NewStore()
	}

	logger.Info("Database connection established")
	return postgres.NewStore(db)
}
