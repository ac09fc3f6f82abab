package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"skyward/airport-api/internal/db"
	"skyward/airport-api/internal/logging"
	"skyward/airport-api/internal/routes"
)

// @title Airport API
// @version 1.0
// @description Airline booking backend: countries, cities, airports, airplanes, routes, flights, orders and tickets.
// @host localhost:8080
// @BasePath /
func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Airport API starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	if err := db.InitPostgres(); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect to DB with GORM
	gdb, err := db.InitPostgresORM(db.DSNFromEnv())
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.AutoMigrate(gdb); err != nil {
		logging.Error("Schema migration failed", "error", err.Error())
		log.Fatalf("Schema migration failed: %v", err)
	}
	logging.Info("Schema migrated")

	upSince := time.Now()

	// Initialize router with Chi
	router := routes.RegisterRoutes(upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "port", port, "environment", appEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logging.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
	logging.Info("Server stopped")
}
