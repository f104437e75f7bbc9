// File: schedly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"schedly/config"
	"schedly/cron"
	"schedly/database"
	appointmentRepo "schedly/database/repository/appointment"
	"schedly/handlers"
	"schedly/middleware"
	"schedly/routes"
	"schedly/services/nlu"
	"schedly/services/scheduling"
	"schedly/services/tasks"
	"schedly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// ENV=test runs entirely in memory: no Mongo, no Redis, no reminder queue.
	inMemory := config.GetEnv() == "test"
	if !inMemory {
		database.InitDB()
		utils.InitSessionCache()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	var slotStore appointmentRepo.SlotStore
	if inMemory {
		slotStore = appointmentRepo.NewMemoryAppointmentRepo()
	} else {
		slotStore = appointmentRepo.NewMongoAppointmentRepo()
	}

	// NLP tagger: Gemini when a key is configured, patterns otherwise.
	var tagger nlu.Tagger = nlu.NewRegexTagger()
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		geminiTagger, err := nlu.NewGeminiTagger(key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini tagger: %v", err)
		}
		tagger = geminiTagger
	}

	window, err := scheduling.WindowFromConfig()
	if err != nil {
		logger.Sugar().Fatalf("main: invalid scheduling window: %v", err)
	}

	// services.
	engine := &scheduling.AvailabilityEngine{
		Store:           slotStore,
		Window:          window,
		MaxAlternatives: config.AppConfig.MaxAlternatives,
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	var sessionStore scheduling.SessionStore
	var reminderScheduler scheduling.ReminderScheduler
	if inMemory {
		sessionStore = scheduling.NewMemorySessionStore()
	} else {
		sessionStore = scheduling.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

		reminderLead := time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute
		asynqScheduler := tasks.NewAsynqReminderScheduler(reminderLead, logger)
		defer asynqScheduler.Close()
		reminderScheduler = asynqScheduler
		cron.InitReminderWorker(logger)
	}

	negotiationService := &scheduling.DefaultNegotiationService{
		Extractor: nlu.NewExtractor(tagger, logger),
		Dates:     nlu.NewDateResolver(),
		Times:     nlu.NewTimeResolver(),
		Engine:    engine,
		Store:     slotStore,
		Sessions:  sessionStore,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	chatHandler := handlers.NewChatHandler(negotiationService, logger)
	appointmentHandler := handlers.NewAppointmentHandler(slotStore)

	// Register routes.
	routes.RegisterRoutes(router, chatHandler, appointmentHandler)

	if !inMemory {
		utils.StartHealthMonitor(database.MongoClient, utils.GetSessionCacheClient())
	}

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
