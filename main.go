// File: citabot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"citabot/config"
	"citabot/cron"
	"citabot/database"
	reservationRepo "citabot/database/repository/reservation"
	"citabot/handlers"
	"citabot/routes"
	"citabot/services/conversation"
	"citabot/services/notification"
	"citabot/services/schedule"
	"citabot/services/tasks"
	"citabot/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// repositories.
	resRepo := reservationRepo.NewMongoReservationRepo()
	if err := resRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure reservation indexes: %v", err)
	}

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Repo:        resRepo,
		Catalog:     config.AppConfig.SlotLabelList(),
		DaysToOffer: config.AppConfig.DaysToOffer,
	}

	sessionStore := conversation.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)

	messenger := &notification.LogMessenger{Logger: logger}

	conversationService := &conversation.DefaultConversationService{
		Schedule:      scheduleService,
		Sessions:      sessionStore,
		Messenger:     messenger,
		Logger:        logger,
		Greetings:     config.AppConfig.GreetingKeywordList(),
		CaseSensitive: config.AppConfig.GreetingCaseSensitive,
	}

	if config.AppConfig.RemindersEnabled {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer asynqClient.Close()

		conversationService.Reminders = tasks.NewAsynqReminderScheduler(
			asynqClient,
			time.Duration(config.AppConfig.ReminderLeadHours)*time.Hour,
			logger,
		)
		cron.InitReminderWorker(messenger)
	}

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	messageHandler := handlers.NewMessageHandler(conversationService, logger)
	reservationsHandler := handlers.NewReservationsHandler(resRepo)
	routes.RegisterRoutes(router, messageHandler, reservationsHandler)

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
