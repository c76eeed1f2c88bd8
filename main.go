package main

import (
	"context"
	"fmt"
	"log"

	"event-reminder-service/pkg/auth"
	"event-reminder-service/pkg/config"
	"event-reminder-service/pkg/handlers"
	"event-reminder-service/pkg/reminder"
	"event-reminder-service/pkg/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize stores
	userStore, err := store.NewUsers(cfg.DataDir)
	if err != nil {
		logger.Fatal("Failed to initialize user store", zap.Error(err))
	}
	eventStore, err := store.NewEvents(cfg.DataDir)
	if err != nil {
		logger.Fatal("Failed to initialize event store", zap.Error(err))
	}

	// Initialize auth
	authService := auth.New(cfg.Auth.JWTSecret, cfg.TokenTTL())

	// Start the reminder scanner
	scanner := reminder.New(eventStore, reminder.NewLogNotifier(logger), cfg.ReminderInterval(), nil, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scanner.Run(ctx)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	h := handlers.New(userStore, eventStore, authService, logger)
	r := h.Router()

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting event reminder service", zap.String("addr", addr))

	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// newLogger builds a zap logger at the configured level
func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch level {
	case "debug":
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "warn":
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	return zcfg.Build()
}
