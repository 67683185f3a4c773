package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kejingzs/kejing-backend/internal/api"
	"github.com/kejingzs/kejing-backend/internal/auth"
	"github.com/kejingzs/kejing-backend/internal/config"
	"github.com/kejingzs/kejing-backend/internal/database"
	seclogger "github.com/kejingzs/kejing-backend/internal/logger"
	"github.com/kejingzs/kejing-backend/internal/storage"
	ws "github.com/kejingzs/kejing-backend/internal/websocket"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting catalog backend server...")

	// Load configuration
	cfg, err := config.LoadWithValidation()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	cfg.LogConfig(logger)

	// Connect database and run migrations
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	// File storage for uploaded images
	store, err := storage.NewLocalStorage(cfg.UploadStoragePath)
	if err != nil {
		slog.Error("failed to initialize file storage", slog.Any("error", err))
		os.Exit(1)
	}

	// Admin auth: hash the configured password once, issue and verify
	// JWTs with the configured secret
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	authenticator, err := auth.NewAuthenticator(cfg.AdminUsername, cfg.AdminPassword, issuer)
	if err != nil {
		slog.Error("failed to initialize authenticator", slog.Any("error", err))
		os.Exit(1)
	}

	// Dashboard event hub
	hub := ws.NewHub(logger)
	go hub.Run()

	secLog := seclogger.NewSecurityLoggerWithHandler(logger.Handler())

	// HTTP router
	var allowedOrigins []string
	if cfg.AllowedOrigins != "" {
		allowedOrigins = splitOrigins(cfg.AllowedOrigins)
	}

	e := api.NewRouter(&api.RouterConfig{
		DB:             db,
		FileStorage:    store,
		Hub:            hub,
		Logger:         logger,
		SecurityLog:    secLog,
		Authenticator:  authenticator,
		Validator:      auth.NewJWTValidator(cfg.JWTSecret),
		AllowedOrigins: allowedOrigins,
		RateLimit:      int(cfg.RateLimitRequests),
		RateBurst:      cfg.RateLimitBurst,
		UploadPath:     cfg.UploadStoragePath,
	})

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.APIPort)
		slog.Info("HTTP server listening", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", slog.Any("error", err))
	}

	slog.Info("Server stopped")
}

// splitOrigins splits a comma-separated origin list, trimming blanks
func splitOrigins(s string) []string {
	var origins []string
	for _, origin := range strings.Split(s, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
