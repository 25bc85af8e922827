package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	itelegram "homework_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Notification Bot starting...")

	// Missing credentials are fatal before anything touches the network.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	log := logger.Get()

	log.Infof("Configuration loaded. Endpoint: %s, PollInterval: %s, Environment: %s",
		cfg.Endpoint, cfg.PollInterval, cfg.Environment)

	// Initialize Telegram Bot. The relay only sends, so no update poller
	// is configured and bot.Start is never called.
	pref := telebot.Settings{
		Token: cfg.TelegramToken,
		OnError: func(err error, c telebot.Context) { // Global error handler
			log.Errorf("telebot: %v", err)
		},
	}
	bot, err := telebot.NewBot(pref)
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	telegramClient := itelegram.NewTelebotAdapter(bot, log)
	log.Info("Telegram client initialized.")

	// Initialize review API client
	apiClient := practicum.NewClient(
		cfg.Endpoint,
		cfg.PracticumToken,
		&http.Client{Timeout: cfg.RequestTimeout},
		log,
	)
	log.Info("Review API client initialized.")

	// Initialize PollerService and its scheduler
	pollerService := app.NewPollerService(apiClient, telegramClient, log, cfg.TelegramChatID)
	pollScheduler := scheduler.NewPollScheduler(pollerService, log, cfg.PollInterval)
	if err := pollScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start poll scheduler: %v", err)
	}

	log.Info("Application setup complete. Polling for homework status changes...")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	pollScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
