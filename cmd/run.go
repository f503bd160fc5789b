package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"zoltaran/api"
	"zoltaran/application"
	"zoltaran/config"
	"zoltaran/database"
	"zoltaran/events"
	"zoltaran/infrastructure/ledgersim"
	"zoltaran/repository"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Println("Starting zoltaran...")

	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Println("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Database connection established successfully")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize unit of work factory
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)

	// The simulator stands in for a real chain adapter. Swap this out when
	// wiring against a live ledger.
	ledger := ledgersim.New()

	app := application.NewApp(uowFactory, ledger, cfg.Owner)

	// Start the sweep worker
	sweepWorker := application.NewSweepWorker(app, cfg.SweepBatchSize)
	stopSweeper := sweepWorker.Start(ctx, cfg.SweepInterval)

	// Start the HTTP API
	jwtService := api.NewJWTService(cfg.JWTSecret)
	router := api.NewRouter(app, jwtService, cfg.Environment)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("HTTP API listening on %s in %s mode...", cfg.HTTPAddr, cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for shutdown or server failure
	select {
	case err := <-serverErr:
		stopSweeper()
		db.Close()
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	// Cleanup resources
	log.Println("Shutting down...")
	stopSweeper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	log.Println("Closing database connection...")
	db.Close()

	log.Println("Shutdown completed")
	return nil
}
