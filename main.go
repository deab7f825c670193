// File: regenmed/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"regenmed/config"
	"regenmed/handlers"
	"regenmed/middleware"
	"regenmed/routes"
	"regenmed/services/auth"
	"regenmed/services/chat"
	"regenmed/services/schedule"
	"regenmed/session"
	"regenmed/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	// Session store: Redis when configured, in-process otherwise.
	var store session.Store
	if cfg.RedisAddr != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisSessionDB)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize redis session store: %v", err)
		}
		store = redisStore
		logger.Sugar().Infof("Using Redis session store at %s", cfg.RedisAddr)
	} else {
		store = session.NewMemoryStore()
		logger.Sugar().Info("Using in-process session store")
	}

	// Services.
	authManager := auth.NewGoogleManager(auth.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURI:  cfg.GoogleRedirectURI,
		CalendarID:   cfg.CalendarID,
	})

	relay, err := chat.NewGeminiRelay(context.Background(), chat.Config{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini relay: %v", err)
	}

	scheduler := &schedule.DefaultSchedulerService{
		Clients:      authManager,
		SlotDuration: time.Duration(cfg.SlotMinutes) * time.Minute,
	}

	// Handlers.
	authHandler := handlers.NewAuthHandler(authManager, store, cfg.ClientOrigin)
	chatHandler := handlers.NewChatHandler(relay)
	scheduleHandler := handlers.NewScheduleHandler(store, scheduler)

	handlerBundle := &handlers.HandlerBundle{
		GoogleAuthHandler:          authHandler.GoogleAuthHandler,
		OAuthCallbackHandler:       authHandler.OAuthCallbackHandler,
		AuthStatusHandler:          authHandler.AuthStatusHandler,
		ChatMessageHandler:         chatHandler.ChatMessageHandler,
		ScheduleAppointmentHandler: scheduleHandler.ScheduleAppointmentHandler,
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.SessionMiddleware(middleware.SessionConfig{
		Secret:     cfg.SessionSecret,
		Production: config.IsProduction(),
	}))

	routes.RegisterRoutes(router, handlerBundle, cfg.ClientOrigin)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (%s mode, client origin %s)...", srv.Addr, cfg.Env, cfg.ClientOrigin)
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
