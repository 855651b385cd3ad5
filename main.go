// File: apptchat/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apptchat/config"
	"apptchat/database"
	appointmentRepo "apptchat/database/repository/appointment"
	"apptchat/handlers"
	"apptchat/middleware"
	"apptchat/routes"
	"apptchat/services/appointment"
	ai "apptchat/services/intelligence"
	"apptchat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	probes := map[string]utils.Probe{}

	// store adapter.
	var repo appointmentRepo.AppointmentRepository
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("main: using in-memory appointment store, data will not survive a restart")
		repo = appointmentRepo.NewMemoryAppointmentRepo()
	default:
		mongoClient, err := database.Connect(cfg, logger)
		if err != nil {
			logger.Sugar().Fatalf("main: invalid MongoDB configuration: %v", err)
		}
		defer database.Disconnect(mongoClient, logger)

		coll := appointmentRepo.Collection(mongoClient, cfg.MongoDB, cfg.MongoCollection)
		if err := appointmentRepo.EnsureIndexes(context.Background(), coll); err != nil {
			logger.Error("main: could not ensure appointment indexes", zap.Error(err))
		}
		repo = appointmentRepo.NewMongoAppointmentRepo(coll)
		probes["mongo"] = utils.MongoProbe(mongoClient)
	}

	// intent extraction.
	var generator ai.Generator
	switch cfg.LLMProvider {
	case config.LLMProviderGemini:
		gemini, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		defer gemini.Close()
		generator = gemini
	default:
		generator = ai.NewPaLMClient(cfg.LLMEndpoint, cfg.GeminiAPIKey, cfg.LLMTimeout)
	}
	if cfg.GeminiAPIKey == "" {
		logger.Warn("main: GEMINI_API_KEY is not set, every message will read as unknown")
	}

	var parser ai.Parser = ai.JSONParser{}
	if cfg.IntentStrict {
		parser = ai.NewStrictParser()
	}
	extractor := ai.NewIntentExtractor(generator, parser, logger.Named("intent"))

	// optional transcript store.
	var history ai.HistoryStore
	if redisClient := utils.NewHistoryCacheClient(cfg); redisClient != nil {
		defer redisClient.Close()
		history = ai.NewRedisHistoryStore(redisClient, cfg.HistoryTTL, cfg.HistoryLimit)
		probes["redis"] = utils.RedisProbe(redisClient)
	}

	// services.
	appointmentService := appointment.NewAppointmentService(repo)
	chatHandler := handlers.NewChatHandler(appointmentService, extractor, history)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	monitor := utils.NewHealthMonitor(probes)
	monitor.Start(monitorCtx, 60*time.Second)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	handlerBundle := &handlers.HandlerBundle{
		HomeHandler:        handlers.HomeHandler,
		HealthHandler:      handlers.NewHealthHandler(monitor),
		ChatHandler:        chatHandler.HandleChat,
		ChatHistoryHandler: chatHandler.HandleHistory,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
		return
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
