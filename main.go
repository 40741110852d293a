// File: angoni/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"angoni/config"
	"angoni/database"
	analyticsRepo "angoni/database/repository/analytics"
	bookingRepo "angoni/database/repository/booking"
	catalogRepo "angoni/database/repository/catalog"
	inquiryRepo "angoni/database/repository/inquiry"
	"angoni/handlers"
	"angoni/routes"
	adminSvc "angoni/services/admin"
	"angoni/services/analytics"
	"angoni/services/booking"
	"angoni/services/catalog"
	"angoni/services/inquiry"
	"angoni/services/notification"
	"angoni/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRateClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	inventory := catalogRepo.NewMongoCatalogRepo()
	events := analyticsRepo.NewMongoAnalyticsRepo()
	inquiries := inquiryRepo.NewMongoInquiryRepo()

	// services.
	mailer := notification.NewSMTPMailer()
	recorder := &analytics.DefaultRecorder{Repo: events}

	bookingService := &booking.DefaultBookingService{
		Repo:     bookings,
		Mailer:   mailer,
		Recorder: recorder,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo:     inventory,
		Recorder: recorder,
	}
	inquiryService := &inquiry.DefaultInquiryService{
		Repo:     inquiries,
		Mailer:   mailer,
		Recorder: recorder,
	}
	adminService := &adminSvc.DefaultAdminService{
		Bookings: bookings,
		Catalog:  inventory,
		Events:   events,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService),
		Catalog: handlers.NewCatalogHandler(catalogService),
		Admin:   handlers.NewAdminHandler(adminService),
		Inquiry: handlers.NewInquiryHandler(inquiryService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
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
