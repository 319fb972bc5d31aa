// File: godrive/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chrisdemonxxx/godrive/config"
	"github.com/chrisdemonxxx/godrive/cron"
	"github.com/chrisdemonxxx/godrive/database"
	availabilityRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/availability"
	bookingRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/booking"
	carRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/car"
	documentRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/document"
	notificationRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/notification"
	payoutRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/payout"
	reviewRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/review"
	userRepoPkg "github.com/chrisdemonxxx/godrive/database/repository/user"
	"github.com/chrisdemonxxx/godrive/handlers"
	"github.com/chrisdemonxxx/godrive/middleware"
	"github.com/chrisdemonxxx/godrive/routes"
	"github.com/chrisdemonxxx/godrive/services/admin"
	"github.com/chrisdemonxxx/godrive/services/availability"
	"github.com/chrisdemonxxx/godrive/services/booking"
	"github.com/chrisdemonxxx/godrive/services/car"
	"github.com/chrisdemonxxx/godrive/services/notification"
	"github.com/chrisdemonxxx/godrive/services/payout"
	"github.com/chrisdemonxxx/godrive/services/review"
	"github.com/chrisdemonxxx/godrive/services/storage"
	"github.com/chrisdemonxxx/godrive/services/user"
	"github.com/chrisdemonxxx/godrive/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	documentRepo := documentRepoPkg.NewMongoDocumentRepo()
	carRepo := carRepoPkg.NewMongoCarRepo()
	availabilityRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	payoutRepo := payoutRepoPkg.NewMongoPayoutRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Repo:     notificationRepo,
		UserRepo: userRepo,
	}

	userService := &user.DefaultUserService{
		Repo:    userRepo,
		DocRepo: documentRepo,
		Storage: cloudinaryStorageService,
	}

	carService := &car.DefaultCarService{
		Repo:             carRepo,
		UserRepo:         userRepo,
		AvailabilityRepo: availabilityRepo,
		BookingRepo:      bookingRepo,
		Storage:          cloudinaryStorageService,
		Notifier:         notificationService,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Repo:    availabilityRepo,
		CarRepo: carRepo,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:             bookingRepo,
		CarRepo:          carRepo,
		UserRepo:         userRepo,
		AvailabilityRepo: availabilityRepo,
		Notifier:         notificationService,
		Queue:            utils.GetQueueClient(),
	}

	adminService := &admin.DefaultAdminService{
		BookingRepo:      bookingRepo,
		CarRepo:          carRepo,
		UserRepo:         userRepo,
		DocRepo:          documentRepo,
		AvailabilityRepo: availabilityRepo,
		Notifier:         notificationService,
	}

	reviewService := &review.DefaultReviewService{
		Repo:        reviewRepo,
		BookingRepo: bookingRepo,
		CarRepo:     carRepo,
		UserRepo:    userRepo,
	}

	payoutService := &payout.DefaultPayoutService{
		Repo:        payoutRepo,
		BookingRepo: bookingRepo,
		Notifier:    notificationService,
		Queue:       utils.GetQueueClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		User:          handlers.NewUserHandler(userService),
		Car:           handlers.NewCarHandler(carService),
		Availability:  handlers.NewAvailabilityHandler(availabilityService),
		Booking:       handlers.NewBookingHandler(bookingService),
		Admin:         handlers.NewAdminHandler(adminService, carService, payoutService),
		Review:        handlers.NewReviewHandler(reviewService),
		Payout:        handlers.NewPayoutHandler(payoutService),
		Notifications: handlers.NewNotificationHandler(notificationService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background queue worker for booking expiry and payout processing.
	cron.InitQueueWorker(bookingService, payoutService)

	// Periodic dependency health checks backing the /health endpoint.
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetOTPCacheClient(),
	}, database.MongoClient)

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
