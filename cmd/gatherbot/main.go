package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gatherbot/config"
	"gatherbot/internal/adapters/discord"
	"gatherbot/internal/adapters/email"
	"gatherbot/internal/domain"
	"gatherbot/internal/jobs"
	"gatherbot/internal/repository/postgres"
	"gatherbot/internal/services"
)

const (
	storeTimeout    = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	if cfg.BotToken == "" {
		logger.Error("DISCORD_BOT_TOKEN is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	db, err := postgres.Open(ctx, cfg.DBUrl)
	cancel()
	if err != nil {
		logger.Error("open store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	eventRepo := postgres.NewEventRepository(db)
	rsvpRepo := postgres.NewRSVPRepository(db)
	eventService := services.NewEventService(eventRepo, rsvpRepo, storeTimeout)

	gateway, err := discord.NewGateway(cfg.BotToken, cfg.CommandPrefix, eventService, logger)
	if err != nil {
		logger.Error("create gateway", "error", err)
		os.Exit(1)
	}

	var notifiers []domain.Notifier
	if cfg.ReminderChannelID != "" {
		notifiers = append(notifiers, discord.NewChannelNotifier(gateway.Session(), cfg.ReminderChannelID, logger))
	} else {
		logger.Warn("REMINDER_CHANNEL_ID not set, discord reminders disabled")
	}
	if cfg.Email.Provider == "ses" {
		mailer, err := email.NewDigestMailer(email.Config{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretKey,
			FromAddress:     cfg.Email.FromAddress,
			FromName:        cfg.Email.FromName,
			Recipient:       cfg.Email.DigestRecipient,
		}, logger)
		if err != nil {
			logger.Error("configure digest mailer", "error", err)
			os.Exit(1)
		}
		notifiers = append(notifiers, mailer)
	}

	reminderService := services.NewReminderService(eventRepo, notifiers, logger)
	cleanupService := services.NewCleanupService(eventRepo, logger)

	scheduler := jobs.NewScheduler(logger)
	if err := scheduler.Register("reminder", cfg.ReminderSchedule, reminderService.Run); err != nil {
		logger.Error("register reminder job", "error", err)
		os.Exit(1)
	}
	if err := scheduler.Register("cleanup", cfg.CleanupSchedule, func(ctx context.Context, now time.Time) error {
		_, err := cleanupService.Run(ctx, now)
		return err
	}); err != nil {
		logger.Error("register cleanup job", "error", err)
		os.Exit(1)
	}

	if err := gateway.Open(); err != nil {
		logger.Error("open gateway", "error", err)
		os.Exit(1)
	}
	scheduler.Start()
	logger.Info("gatherbot started",
		"environment", cfg.Environment,
		"reminder_schedule", cfg.ReminderSchedule,
		"cleanup_schedule", cfg.CleanupSchedule)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("signal received, shutting down", "signal", sig.String())

	stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stopCancel()
	scheduler.Stop(stopCtx)
	if err := gateway.Close(); err != nil {
		logger.Error("close gateway", "error", err)
	}
	logger.Info("gatherbot stopped")
}
