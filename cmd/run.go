package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"manito/api"
	"manito/config"
	"manito/database"
	"manito/domain/entities"
	"manito/domain/services"
	"manito/events"
	"manito/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting manito draw service...")

	// Load configuration
	cfg := config.Get()

	// Load the static roster
	roster, err := entities.LoadRoster(cfg.RosterPath)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}
	log.WithField("participants", roster.Size()).Info("Roster loaded")

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Info("Database connection established")

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize repositories
	drawRepo := repository.NewDrawRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)

	// Initialize services
	drawService := services.NewDrawService(roster, drawRepo, wishlistRepo, eventBus, cfg.DrawMaxAttempts)
	wishlistService := services.NewWishlistService(roster, wishlistRepo)
	completionService := services.NewCompletionService(roster, drawRepo)
	adminService := services.NewAdminService(drawRepo, wishlistRepo, completionService, eventBus)

	// Initialize HTTP server
	server, err := api.NewServer(ctx, roster, drawService, wishlistService, adminService, completionService, eventBus, cfg.AdminToken)
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.ListenAddr).Infof("Serving in %s mode", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("HTTP server shutdown error")
	}

	log.Info("Shutdown completed")
	return nil
}
