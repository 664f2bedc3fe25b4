package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unicare/config"
	"unicare/cron"
	"unicare/database"
	appointmentRepoPkg "unicare/database/repository/appointment"
	catalogRepoPkg "unicare/database/repository/catalog"
	doctorRepoPkg "unicare/database/repository/doctor"
	engagementRepoPkg "unicare/database/repository/engagement"
	orderRepoPkg "unicare/database/repository/order"
	scheduleRepoPkg "unicare/database/repository/schedule"
	userRepoPkg "unicare/database/repository/user"
	"unicare/handlers"
	"unicare/routes"
	"unicare/services/booking"
	catalogSvc "unicare/services/catalog"
	doctorSvc "unicare/services/doctor"
	feedbackSvc "unicare/services/feedback"
	"unicare/services/notification"
	recordsSvc "unicare/services/records"
	"unicare/services/scheduling"
	userSvc "unicare/services/user"
	"unicare/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	templateRepo := scheduleRepoPkg.NewMongoTemplateRepo()
	holidayRepo := scheduleRepoPkg.NewMongoHolidayRepo()
	leaveRepo := scheduleRepoPkg.NewMongoLeaveRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	medicineRepo := catalogRepoPkg.NewMongoMedicineRepo()
	labRepo := catalogRepoPkg.NewMongoLabRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	campaignRepo := engagementRepoPkg.NewMongoCampaignRepo()
	notificationRepo := engagementRepoPkg.NewMongoNotificationRepo()
	feedbackRepo := engagementRepoPkg.NewMongoFeedbackRepo()
	recordRepo := engagementRepoPkg.NewMongoRecordRepo()

	// task queue client shared by services that enqueue background work.
	queueClient := asynq.NewClient(cron.TaskQueueRedisOpt())
	defer queueClient.Close()

	// services.
	userService := &userSvc.DefaultUserService{Repo: userRepo, Logger: logger}
	doctorService := &doctorSvc.DefaultDoctorService{
		Repo:   doctorRepo,
		Cache:  utils.GetCacheClient(),
		Logger: logger,
	}
	scheduleService := &scheduling.DefaultScheduleService{
		Templates: templateRepo,
		Holidays:  holidayRepo,
		Leaves:    leaveRepo,
		Doctors:   doctorRepo,
		Logger:    logger,
	}
	notificationService := &notification.DefaultNotificationService{
		Users:         userRepo,
		Notifications: notificationRepo,
		Campaigns:     campaignRepo,
		Queue:         queueClient,
		Logger:        logger,
	}
	bookingService := &booking.DefaultBookingService{
		Appointments: appointmentRepo,
		Doctors:      doctorRepo,
		Reminders:    notificationService,
		Logger:       logger,
	}
	catalogService := &catalogSvc.DefaultCatalogService{
		Medicines: medicineRepo,
		Labs:      labRepo,
		Orders:    orderRepo,
		Logger:    logger,
	}
	feedbackService := &feedbackSvc.DefaultFeedbackService{
		Feedback:     feedbackRepo,
		Appointments: appointmentRepo,
		Doctors:      doctorRepo,
		Logger:       logger,
	}
	recordService := &recordsSvc.DefaultRecordService{
		Records: recordRepo,
		Users:   userRepo,
		Logger:  logger,
	}

	if err := userService.EnsureAdmin(config.AppConfig.AdminEmail, config.AppConfig.AdminPassword); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure admin account: %v", err)
	}

	// background worker for reminders and campaign fan-outs.
	cron.InitTaskWorker(notificationService)

	handlerSet := &routes.HandlerSet{
		Auth:      &handlers.AuthHandler{Users: userService},
		Doctors:   &handlers.DoctorHandler{Doctors: doctorService},
		Schedules: &handlers.ScheduleHandler{Schedules: scheduleService},
		Bookings:  &handlers.BookingHandler{Bookings: bookingService},
		Catalog:   &handlers.CatalogHandler{Catalog: catalogService},
		Engagement: &handlers.EngagementHandler{
			Notifications: notificationService,
			Feedback:      feedbackService,
			Records:       recordService,
			Users:         userService,
		},
	}
	routes.RegisterRoutes(router, handlerSet)

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
