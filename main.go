package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/renefm/user-hub-be/internal/api"
	"github.com/renefm/user-hub-be/internal/config"
	"github.com/renefm/user-hub-be/internal/dto"
	"github.com/renefm/user-hub-be/internal/logger"
	"github.com/renefm/user-hub-be/internal/monitoring"
	"github.com/renefm/user-hub-be/internal/repository/memory"
	"github.com/renefm/user-hub-be/internal/services"
	"github.com/renefm/user-hub-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up the in-memory user store
	repo := memory.NewUserRepository()

	// Set up WebSocket Hub for the live audit feed
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	auditService := services.NewAuditService(hub)
	userService := services.NewUserService(repo, auditService)

	if cfg.SeedSampleData {
		seedSampleData(userService)
	}

	// Set up and run the background stats updater
	statUpdater := monitoring.NewStatUpdater(repo, cfg.StatInterval)
	go statUpdater.Run()

	// Set up router
	router := api.NewRouter(hub, userService, auditService, cfg.CORSOrigin)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	statUpdater.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

// seedSampleData populates the store with two demo accounts for local
// development.
func seedSampleData(userService services.UserServiceProvider) {
	demo := []dto.CreateUserRequest{
		{Email: "admin@example.com", Password: "password-admin", FirstName: "Admin", LastName: "User", PhoneNumber: "+1234567890"},
		{Email: "test@example.com", Password: "password-test", FirstName: "Test", LastName: "User", PhoneNumber: "+0987654321"},
	}

	for _, req := range demo {
		if _, err := userService.CreateUser(&req); err != nil {
			log.Warn().Err(err).Str("email", req.Email).Msg("Failed to seed sample user")
		}
	}
	log.Info().Int("count", len(demo)).Msg("Sample data initialized")
}
