// File: innflow/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"innflow/config"
	"innflow/directus"
	"innflow/handlers"
	"innflow/middleware"
	"innflow/models"
	"innflow/routes"
	"innflow/services/booking"
	"innflow/services/cloudbeds"
	"innflow/services/engine"
	"innflow/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitContentCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// Engine factory: the closed set of providers with working adapters.
	factory := engine.NewFactory(logger)
	factory.Register(models.ProviderCloudbeds, cloudbeds.New)

	bookingService := booking.NewService(factory, logger)

	hotelClient := directus.NewClient(
		config.AppConfig.DirectusURL,
		config.AppConfig.DirectusToken,
		utils.GetContentCacheClient(),
		time.Duration(config.AppConfig.HotelCacheTTLMin)*time.Minute,
		logger,
	)

	bookingHandler := handlers.NewBookingHandler(bookingService, hotelClient, logger)
	roomsHandler := handlers.NewRoomsHandler(bookingService, hotelClient, logger)

	handlerBundle := &routes.HandlerBundle{
		Booking: bookingHandler,
		Rooms:   roomsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
