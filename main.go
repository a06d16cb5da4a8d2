package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"housemate/config"
	"housemate/cron"
	"housemate/database"
	bookingRepo "housemate/database/repository/booking"
	catalogRepo "housemate/database/repository/catalog"
	expertRepo "housemate/database/repository/expert"
	recordsRepo "housemate/database/repository/records"
	userRepoPkg "housemate/database/repository/user"
	"housemate/handlers"
	"housemate/middleware"
	"housemate/routes"
	"housemate/services/booking"
	"housemate/services/expert"
	"housemate/services/notification"
	"housemate/services/rating"
	"housemate/services/user"
	"housemate/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, ID-proof uploads disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	usrRepo := userRepoPkg.NewMongoUserRepo()
	profileRepo := userRepoPkg.NewMongoCustomerProfileRepo()
	addressRepo := userRepoPkg.NewMongoAddressRepo()
	expRepo := expertRepo.NewMongoExpertRepo()
	availRepo := expertRepo.NewMongoAvailabilityRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()
	couponRepo := catalogRepo.NewMongoCouponRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	paymentRepo := recordsRepo.NewMongoPaymentRepo()
	ratingRepo := recordsRepo.NewMongoRatingRepo()

	// services.
	userService := &user.DefaultUserService{
		UserRepo:    usrRepo,
		ProfileRepo: profileRepo,
		AddressRepo: addressRepo,
		ExpertRepo:  expRepo,
		ZoneRepo:    catRepo,
	}

	expertService := &expert.DefaultExpertService{
		ExpertRepo:       expRepo,
		AvailabilityRepo: availRepo,
		BookingRepo:      bkRepo,
		StorageSvc:       cloudinaryStorageService,
	}

	matchingServiceInstance := &booking.DefaultMatchingService{
		ExpertRepo:       expRepo,
		AvailabilityRepo: availRepo,
	}

	notificationService, err := notification.NewDefaultNotificationService(usrRepo, expRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	taskScheduler := cron.NewAsynqScheduler()
	defer taskScheduler.Close()

	draftService := &booking.DefaultDraftService{
		CatalogRepo:    catRepo,
		CouponRepo:     couponRepo,
		AddressRepo:    addressRepo,
		MatchingSvc:    matchingServiceInstance,
		BookingRepo:    bkRepo,
		Scheduler:      taskScheduler,
		DraftTTL:       time.Duration(config.AppConfig.DraftTTLMinutes) * time.Minute,
		PaymentTTL:     time.Duration(config.AppConfig.PaymentTTLMinutes) * time.Minute,
		ASAPDefaultETA: config.AppConfig.ASAPDefaultETAMin,
	}

	bookingService := &booking.DefaultBookingService{
		BookingRepo:      bkRepo,
		PaymentRepo:      paymentRepo,
		CouponRepo:       couponRepo,
		ExpertRepo:       expRepo,
		AvailabilityRepo: availRepo,
		NotificationSvc:  notificationService,
		Scheduler:        taskScheduler,
		PaymentTTL:       time.Duration(config.AppConfig.PaymentTTLMinutes) * time.Minute,
		ReminderLead:     time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	ratingService := &rating.DefaultRatingService{
		RatingRepo:  ratingRepo,
		BookingRepo: bkRepo,
		ExpertRepo:  expRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService),
		Catalog: handlers.NewCatalogHandler(catRepo, couponRepo),
		Draft:   handlers.NewDraftHandler(draftService),
		Booking: handlers.NewBookingHandler(bookingService, expertService),
		Expert:  handlers.NewExpertHandler(expertService),
		Address: handlers.NewAddressHandler(userService),
		Rating:  handlers.NewRatingHandler(ratingService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitBookingWorker(bookingService)
	utils.StartHealthMonitor(database.MongoClient)

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
