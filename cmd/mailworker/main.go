package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Menwuyelet/jobboard/internal/config"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/mail"
	"github.com/Menwuyelet/jobboard/internal/mailqueue"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	consumerName := flag.String("consumer", "", "Consumer name within the group (defaults to hostname)")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Jobboard mail worker...", "provider", cfg.Mail.Provider, "stream", cfg.Mail.Stream)

	name := *consumerName
	if name == "" {
		name, err = os.Hostname()
		if err != nil {
			name = "mailworker"
		}
	}

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	// Select the mail transport
	var sender mailqueue.Sender
	switch cfg.Mail.Provider {
	case "sendgrid":
		sender = mail.NewSendGridSender(cfg.SendGrid.APIKey, cfg.SendGrid.From, cfg.SendGrid.FromName)
	default:
		sender = mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	}

	consumer := mailqueue.NewConsumer(rdb, sender, cfg.Mail.Stream, cfg.Mail.ConsumerGroup, name)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := consumer.EnsureGroup(ctx); err != nil {
		logger.Error("Failed to create consumer group", "error", err)
		log.Fatalf("Failed to create consumer group: %v", err)
	}

	logger.Info("Mail worker consuming", "group", cfg.Mail.ConsumerGroup, "consumer", name)
	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Mail worker stopped with error", "error", err)
		log.Fatalf("Mail worker stopped: %v", err)
	}
	logger.Info("Mail worker stopped")
}
