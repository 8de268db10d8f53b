package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal-task-scheduler/config"
	"personal-task-scheduler/internal/analyzer"
	"personal-task-scheduler/internal/httpserver"
	"personal-task-scheduler/internal/middleware"
	scheduleHTTP "personal-task-scheduler/internal/schedule/delivery/http"
	tgDelivery "personal-task-scheduler/internal/schedule/delivery/telegram"
	"personal-task-scheduler/internal/schedule/repository/sqlite"
	"personal-task-scheduler/internal/schedule/usecase"
	"personal-task-scheduler/internal/scheduler"
	"personal-task-scheduler/internal/scheduler/sessionstore"
	"personal-task-scheduler/pkg/datemath"
	"personal-task-scheduler/pkg/gemini"
	"personal-task-scheduler/pkg/log"
	"personal-task-scheduler/pkg/telegram"
)

// @title       Personal Task Scheduler API
// @description AI-assisted personal task scheduling: describe a task, get a time slot suggestion, resolve conflicts interactively.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Task Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open store: ", err)
		return
	}
	defer db.Close()
	repo := sqlite.New(db, logger)
	logger.Infof(ctx, "SQLite store ready at %s", cfg.Store.Path)

	// 4. Analyzer (Gemini LLM + date parsing)
	dates, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	llm, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	taskAnalyzer := analyzer.New(logger, llm, dates, nil)

	// 5. Schedule use case
	sessions := sessionstore.New(sessionstore.DefaultCapacity,
		time.Duration(cfg.Scheduler.SessionTTLMinutes)*time.Minute)
	grid := scheduler.GridOptions{
		DayStartHour: cfg.Scheduler.DayStartHour,
		DayEndHour:   cfg.Scheduler.DayEndHour,
		StepMinutes:  cfg.Scheduler.StepMinutes,
	}
	scheduleUC := usecase.New(logger, taskAnalyzer, repo, sessions, grid, nil)

	// 6. Deliveries
	scheduleHandler := scheduleHTTP.New(logger, scheduleUC)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, scheduleUC, bot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Info(ctx, "Telegram bot token not set, Telegram delivery disabled")
	}

	mw := middleware.New(logger, middleware.RateLimitConfig{
		Enabled:        cfg.RateLimit.Enabled,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ScheduleHandler: scheduleHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
