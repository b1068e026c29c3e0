package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bokaenkelt/config"
	"bokaenkelt/cron"
	"bokaenkelt/database"
	adminRepoPkg "bokaenkelt/database/repository/admin"
	bookingRepoPkg "bokaenkelt/database/repository/booking"
	customerRepoPkg "bokaenkelt/database/repository/customer"
	ratingRepoPkg "bokaenkelt/database/repository/rating"
	stylistRepoPkg "bokaenkelt/database/repository/stylist"
	"bokaenkelt/handlers"
	"bokaenkelt/middleware"
	"bokaenkelt/routes"
	"bokaenkelt/services/admin"
	"bokaenkelt/services/booking"
	"bokaenkelt/services/customer"
	"bokaenkelt/services/notification"
	"bokaenkelt/services/rating"
	"bokaenkelt/services/storage"
	"bokaenkelt/services/stylist"
	"bokaenkelt/services/tasks"
	"bokaenkelt/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	stylistRepo := stylistRepoPkg.NewMongoStylistRepo()
	if config.UseFallbackData() {
		logger.Sugar().Warn("main: read path running with fallback sample data")
		stylistRepo = stylistRepoPkg.NewFallbackStylistRepo(stylistRepo)
	}
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	ratingRepo := ratingRepoPkg.NewMongoRatingRepo()

	// services.
	notifier := notification.NewSMTPMailer()
	reminders := tasks.NewAsynqReminderScheduler()
	defer reminders.Close()

	handlers.BookingService = booking.NewDefaultBookingService(bookingRepo, stylistRepo, notifier, reminders)
	handlers.StylistService = stylist.NewDefaultStylistService(stylistRepo)
	handlers.CustomerService = customer.NewDefaultCustomerService(customerRepo)
	handlers.AdminService = admin.NewDefaultAdminService(adminRepo)
	handlers.RatingService = rating.NewDefaultRatingService(ratingRepo, stylistRepo)

	cloudinaryStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
	}
	handlers.StorageService = cloudinaryStorage

	// Reminder delivery worker.
	reminderWorker := cron.NewReminderWorker(bookingRepo, notifier)
	reminderWorker.Start()
	defer reminderWorker.Shutdown()

	// Register routes.
	authSources := middleware.TokenHashSources{
		Customers: customerRepo,
		Stylists:  stylistRepo,
		Admins:    adminRepo,
	}
	routes.RegisterRoutes(router, authSources)

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
