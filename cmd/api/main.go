package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gocache "github.com/patrickmn/go-cache"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "truthline/docs" // This is for Swagger
	"truthline/internal/auth"
	"truthline/internal/config"
	"truthline/internal/database"
	"truthline/internal/handlers"
	"truthline/internal/logger"
	"truthline/internal/middleware"
	"truthline/internal/repository"
	"truthline/internal/service"
)

// @title Truthline API
// @version 1.0
// @description Backend API for the Truthline community news verification platform

// @contact.name API Support
// @contact.email support@truthline.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logger
	logger.Setup(logger.Config{
		Level: cfg.Log.Level,
	})

	slog.Info("Starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Env,
		"log_level", cfg.Log.Level,
	)

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.Database) {
		err := db.Close()
		if err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}(db)

	slog.Info("Database connection established")

	// Run database migrations
	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db.DB)
	reportRepo := repository.NewReportRepository(db.DB)
	verificationRepo := repository.NewVerificationRepository(db.DB)
	auditRepo := repository.NewAuditRepository(db.DB)

	// Initialize services
	authService := auth.NewService(&cfg.JWT)
	statsCache := gocache.New(cfg.Cache.StatsTTL, cfg.Cache.CleanupInterval)

	authSvc := service.NewAuthService(profileRepo, authService, cfg.App.EnableRegistration)
	reportService := service.NewReportService(reportRepo)
	verificationService := service.NewVerificationService(verificationRepo, reportRepo)
	trustService := service.NewTrustService(verificationRepo, profileRepo, reportRepo)
	moderationService := service.NewModerationService(reportRepo, verificationRepo, trustService, cfg.Trust.EnforceSingleFinalize)
	statsService := service.NewStatsService(reportRepo, verificationRepo, profileRepo, statsCache)

	// Initialize middleware
	authMw := middleware.NewAuthMiddleware(authService)
	rbacMw := middleware.NewRBACMiddleware(db.DB)
	corsMw := middleware.NewCORSMiddleware(&cfg.CORS)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)
	auditMw := middleware.NewAuditMiddleware(db.DB)
	serviceTokenMw := middleware.NewServiceTokenMiddleware(cfg.Internal.ServiceToken)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc, auditMw)
	reportHandler := handlers.NewReportHandler(reportService, auditMw)
	verificationHandler := handlers.NewVerificationHandler(verificationService, auditMw)
	moderationHandler := handlers.NewModerationHandler(moderationService, auditMw)
	trustHandler := handlers.NewTrustHandler(trustService)
	statsHandler := handlers.NewStatsHandler(statsService)
	profileHandler := handlers.NewProfileHandler(db.DB)
	auditHandler := handlers.NewAuditHandler(auditRepo)

	// Setup router
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/reports/recent", reportHandler.Recent)
	mux.HandleFunc("GET /api/v1/stats/leaderboard", statsHandler.Leaderboard)

	// Authenticated routes
	mux.Handle("POST /api/v1/reports", authMw.Authenticate(http.HandlerFunc(reportHandler.Submit)))
	mux.Handle("GET /api/v1/reports", authMw.Authenticate(http.HandlerFunc(reportHandler.List)))
	mux.Handle("GET /api/v1/reports/my", authMw.Authenticate(http.HandlerFunc(reportHandler.Mine)))
	mux.Handle("GET /api/v1/reports/{id}", authMw.Authenticate(http.HandlerFunc(reportHandler.Get)))
	mux.Handle("POST /api/v1/reports/{id}/verifications", authMw.Authenticate(http.HandlerFunc(verificationHandler.Submit)))
	mux.Handle("GET /api/v1/verifications/my", authMw.Authenticate(http.HandlerFunc(verificationHandler.Mine)))
	mux.Handle("GET /api/v1/stats/dashboard", authMw.Authenticate(http.HandlerFunc(statsHandler.Dashboard)))
	mux.Handle("GET /api/v1/users/me", authMw.Authenticate(http.HandlerFunc(profileHandler.Me)))

	// Moderator routes
	mux.Handle("GET /api/v1/moderation/reports",
		authMw.Authenticate(
			rbacMw.RequireRole("moderator")(
				http.HandlerFunc(moderationHandler.ListPending),
			),
		),
	)
	mux.Handle("POST /api/v1/moderation/reports/{id}/finalize",
		authMw.Authenticate(
			rbacMw.RequireRole("moderator")(
				http.HandlerFunc(moderationHandler.Finalize),
			),
		),
	)
	mux.Handle("GET /api/v1/moderation/audit-logs",
		authMw.Authenticate(
			rbacMw.RequireRole("moderator")(
				http.HandlerFunc(auditHandler.List),
			),
		),
	)

	// Service-privileged routes. The service-token middleware answers the
	// CORS preflight itself, so OPTIONS is routed there too.
	mux.Handle("POST /internal/v1/trust/recalculate", serviceTokenMw.Require(http.HandlerFunc(trustHandler.Recalculate)))
	mux.Handle("OPTIONS /internal/v1/trust/recalculate", serviceTokenMw.Require(http.HandlerFunc(trustHandler.Recalculate)))

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, err := w.Write([]byte(`{"status":"unhealthy","database":"error"}`))
			if err != nil {
				slog.Error("Failed to write health check response", "error", err)
				return
			}
			return
		}
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"status":"healthy","version":"` + cfg.App.Version + `"}`))
		if err != nil {
			slog.Error("Failed to write health check response", "error", err)
			return
		}
	})

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Apply global middleware
	handler := middleware.LoggingMiddleware(
		middleware.SecurityHeaders(
			corsMw.Handler(
				rateLimiter.Limit(mux),
			),
		),
	)

	// Create server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
