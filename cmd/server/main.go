package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/uhdiapa/service-guide/internal/application"
	"github.com/uhdiapa/service-guide/internal/config"
	"github.com/uhdiapa/service-guide/internal/domain/route"
	"github.com/uhdiapa/service-guide/internal/handler"
	"github.com/uhdiapa/service-guide/internal/location"
	"github.com/uhdiapa/service-guide/internal/logger"
	"github.com/uhdiapa/service-guide/internal/middleware"
	"github.com/uhdiapa/service-guide/internal/provider/mapsession"
	"github.com/uhdiapa/service-guide/internal/provider/recommend"
	"github.com/uhdiapa/service-guide/internal/provider/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-guide")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-guide",
		zap.String("port", cfg.Port),
	)

	// Bootstrap the map session once, process-wide. A failed load is
	// terminal for the directions feature but the service still serves;
	// consumers get an explicit configuration error instead.
	session := mapsession.New(routes.Config{
		Endpoint:     cfg.RoutesEndpoint,
		APIKey:       cfg.MapsAPIKey,
		LanguageCode: cfg.LanguageCode,
		Units:        cfg.Units,
		Timeout:      cfg.UpstreamTimeout,
	}, log)
	if err := session.Load(); err != nil {
		log.Warn("directions degraded until configuration is fixed", zap.Error(err))
	}

	// Outbound clients and location source
	backend := recommend.NewClient(recommend.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.UpstreamTimeout,
	}, log.Named("recommend"))

	locator := location.NewService(
		location.FixedSource{Point: route.LocationPoint{Latitude: cfg.DefaultLat, Longitude: cfg.DefaultLng}},
		cfg.WatchInterval,
		log.Named("location"),
	)

	// Application services
	directionsService := application.NewDirectionsService(session, log.Named("directions"))
	hospitalService := application.NewHospitalService(backend, locator, log.Named("hospital"))
	intakeService := application.NewIntakeService(log.Named("intake"))

	// HTTP handlers
	directionsHandler := handler.NewDirectionsHandler(directionsService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	intakeHandler := handler.NewIntakeHandler(intakeService)
	locationHandler := handler.NewLocationHandler(locator)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Register health check routes
	healthHandler := handler.NewHealthHandler("service-guide", session)
	healthHandler.RegisterRoutes(router)

	// Register routes
	intakeHandler.RegisterRoutes(&router.RouterGroup)
	hospitalHandler.RegisterRoutes(&router.RouterGroup)
	directionsHandler.RegisterRoutes(&router.RouterGroup)
	locationHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-guide...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-guide stopped")
}
