// File: docportal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docportal/config"
	"docportal/cron"
	"docportal/database"
	bookingRepoPkg "docportal/database/repository/booking"
	catalogRepoPkg "docportal/database/repository/catalog"
	doctorRepoPkg "docportal/database/repository/doctor"
	paymentRepoPkg "docportal/database/repository/payment"
	userRepoPkg "docportal/database/repository/user"
	"docportal/handlers"
	"docportal/middleware"
	"docportal/routes"
	"docportal/services/availability"
	"docportal/services/booking"
	"docportal/services/doctor"
	"docportal/services/notification"
	"docportal/services/payment"
	"docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()

	mongoClient, err := database.Connect(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	redisClient, err := utils.NewCacheClient(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	cache := utils.NewRedisCache(redisClient)

	utils.StartHealthMonitor(redisClient, mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(db)
	bookingRepo, err := bookingRepoPkg.NewMongoBookingRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking repository: %v", err)
	}
	paymentRepo, err := paymentRepoPkg.NewMongoPaymentRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize payment repository: %v", err)
	}
	userRepo, err := userRepoPkg.NewMongoUserRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize user repository: %v", err)
	}
	doctorRepo, err := doctorRepoPkg.NewMongoDoctorRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize doctor repository: %v", err)
	}

	// Confirmation email pipeline: admission enqueues, the worker delivers.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	var sender notification.EmailSender
	if sg := notification.NewSendGridSender(
		config.AppConfig.SendgridAPIKey,
		config.AppConfig.EmailFrom,
		config.AppConfig.EmailFromName,
		logger,
	); sg != nil {
		sender = sg
	} else {
		logger.Warn("main: SENDGRID_API_KEY not set, confirmation emails will be logged only")
		sender = &notification.LogSender{Logger: logger}
	}
	worker := cron.StartConfirmationWorker(sender, logger)
	defer worker.Shutdown()

	// services.
	availabilitySvc := &availability.DefaultService{
		Catalog:  catalogRepo,
		Bookings: bookingRepo,
		Cache:    cache,
		Logger:   logger,
	}
	admissionSvc := &booking.DefaultAdmissionService{
		Catalog:  catalogRepo,
		Bookings: bookingRepo,
		Notifier: &notification.AsynqNotifier{Client: asynqClient, Logger: logger},
		Cache:    cache,
		Logger:   logger,
	}
	paymentSvc := &payment.DefaultService{
		Payments: paymentRepo,
		Bookings: bookingRepo,
		Logger:   logger,
	}
	userSvc := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	doctorSvc := &doctor.DefaultDoctorService{
		Repo:    doctorRepo,
		Catalog: catalogRepo,
		Logger:  logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		Availability: handlers.NewAvailabilityHandler(availabilitySvc, logger),
		Booking:      handlers.NewBookingHandler(admissionSvc, logger),
		Payment:      handlers.NewPaymentHandler(paymentSvc, logger),
		User:         handlers.NewUserHandler(userSvc, logger),
		Doctor:       handlers.NewDoctorHandler(doctorSvc, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
