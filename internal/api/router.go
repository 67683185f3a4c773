package api

import (
	"log/slog"

	"github.com/kejingzs/kejing-backend/internal/api/handlers"
	"github.com/kejingzs/kejing-backend/internal/api/middleware"
	"github.com/kejingzs/kejing-backend/internal/auth"
	"github.com/kejingzs/kejing-backend/internal/logger"
	"github.com/kejingzs/kejing-backend/internal/repository"
	"github.com/kejingzs/kejing-backend/internal/services"
	"github.com/kejingzs/kejing-backend/internal/storage"
	ws "github.com/kejingzs/kejing-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// RouterConfig holds dependencies for the router
type RouterConfig struct {
	DB          *gorm.DB
	FileStorage storage.FileStorage
	Hub         *ws.Hub
	Logger      *slog.Logger
	SecurityLog *logger.SecurityLogger

	// Auth
	Authenticator *auth.Authenticator
	Validator     auth.TokenValidator

	// Security configuration
	AllowedOrigins []string // Allowed CORS origins
	RateLimit      int      // Requests per second (0 = built-in default)
	RateBurst      int      // Burst size for rate limiter

	// UploadPath is the media store root, also served at /uploads
	UploadPath string
}

// NewRouter creates and configures the Echo router with all routes
func NewRouter(cfg *RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Security Middleware (applied in correct order)
	// 1. Recover from panics
	e.Use(middleware.Recover())

	// 2. Security headers (applied to all responses)
	e.Use(middleware.SecureHeaders())

	// 3. CORS restricted to the configured frontend origins
	e.Use(middleware.SecureCORS(cfg.AllowedOrigins))

	// 4. Per-IP rate limiting
	e.Use(middleware.RateLimiter(float64(cfg.RateLimit), cfg.RateBurst, cfg.SecurityLog))

	// 5. Request logging
	if cfg.Logger != nil {
		e.Use(middleware.RequestLogger(cfg.Logger))
	}

	// Initialize repositories
	folderRepo := repository.NewFolderRepository(cfg.DB)
	albumRepo := repository.NewAlbumRepository(cfg.DB)
	imageRepo := repository.NewImageRepository(cfg.DB)
	serviceRepo := repository.NewServiceRepository(cfg.DB)
	caseRepo := repository.NewCaseRepository(cfg.DB)
	contactRepo := repository.NewContactRepository(cfg.DB)
	statsRepo := repository.NewStatsRepository(cfg.DB)

	// Domain services
	catalog := services.NewCatalogService(cfg.DB, albumRepo, imageRepo, cfg.FileStorage, cfg.Logger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.DB, cfg.UploadPath)
	authHandler := handlers.NewAuthHandler(cfg.Authenticator, cfg.SecurityLog)
	folderHandler := handlers.NewFolderHandler(folderRepo, albumRepo, catalog)
	albumHandler := handlers.NewAlbumHandler(albumRepo, folderRepo, catalog)
	imageHandler := handlers.NewImageHandler(imageRepo, albumRepo, catalog, cfg.FileStorage, cfg.Hub, cfg.SecurityLog)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	caseHandler := handlers.NewCaseHandler(caseRepo)
	contactHandler := handlers.NewContactHandler(contactRepo, cfg.Hub)
	statsHandler := handlers.NewStatsHandler(statsRepo)
	dashboardHandler := handlers.NewDashboardHandler(statsRepo, contactRepo)
	wsHandler := handlers.NewWSHandler(cfg.Hub, ws.NewSecureUpgrader(cfg.AllowedOrigins, cfg.Logger), cfg.Logger)

	// Health routes (no auth required)
	e.GET("/health", healthHandler.Health)
	e.GET("/ready", healthHandler.Ready)

	// Stored image files, served directly
	if cfg.UploadPath != "" {
		e.Static("/uploads", cfg.UploadPath)
	}

	// API routes
	api := e.Group("/api")

	// Public routes: the visitor-facing site reads the catalog and
	// submits contact forms without a token
	api.POST("/auth/token", authHandler.Token)
	api.POST("/contact", contactHandler.Create)
	api.GET("/folders", folderHandler.List)
	api.GET("/folders/:id", folderHandler.Get)
	api.GET("/folders/:id/albums", folderHandler.ListAlbums)
	api.GET("/albums", albumHandler.List)
	api.GET("/albums/:id", albumHandler.Get)
	api.GET("/albums/:id/images", imageHandler.ListByAlbum)
	api.GET("/images", imageHandler.List)
	api.GET("/images/:id", imageHandler.Get)
	api.GET("/images/:id/file", imageHandler.GetFile)
	api.GET("/services", serviceHandler.List)
	api.GET("/services/:id", serviceHandler.Get)
	api.GET("/cases", caseHandler.List)
	api.GET("/cases/:id", caseHandler.Get)

	// Admin routes: everything that mutates the catalog or reads
	// submissions requires a valid token
	admin := api.Group("", middleware.JWTAuth(cfg.Validator, cfg.SecurityLog))

	admin.GET("/auth/me", authHandler.Me)

	admin.POST("/folders", folderHandler.Create)
	admin.PUT("/folders/:id", folderHandler.Update)
	admin.DELETE("/folders/:id", folderHandler.Delete)

	admin.POST("/albums", albumHandler.Create)
	admin.PUT("/albums/:id", albumHandler.Update)
	admin.DELETE("/albums/:id", albumHandler.Delete)

	admin.POST("/upload", imageHandler.Upload)
	admin.PUT("/images/:id", imageHandler.Update)
	admin.DELETE("/images/:id", imageHandler.Delete)

	admin.POST("/services", serviceHandler.Create)
	admin.PUT("/services/:id", serviceHandler.Update)
	admin.DELETE("/services/:id", serviceHandler.Delete)

	admin.POST("/cases", caseHandler.Create)
	admin.PUT("/cases/:id", caseHandler.Update)
	admin.DELETE("/cases/:id", caseHandler.Delete)

	admin.GET("/admin/contacts", contactHandler.List)
	admin.GET("/admin/contacts/:id", contactHandler.Get)
	admin.PUT("/admin/contacts/:id/read", contactHandler.MarkRead)
	admin.DELETE("/admin/contacts/:id", contactHandler.Delete)

	admin.GET("/admin/statistics", statsHandler.Get)
	admin.GET("/admin/dashboard", dashboardHandler.Get)
	admin.GET("/admin/ws", wsHandler.Serve)

	return e
}
