package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/Menwuyelet/jobboard/internal/api/http"
	"github.com/Menwuyelet/jobboard/internal/config"
	"github.com/Menwuyelet/jobboard/internal/jobs"
	"github.com/Menwuyelet/jobboard/internal/logger"
	"github.com/Menwuyelet/jobboard/internal/mailqueue"
	"github.com/Menwuyelet/jobboard/internal/repository/postgres"
	"github.com/Menwuyelet/jobboard/internal/scheduler"
	"github.com/Menwuyelet/jobboard/internal/security"
	"github.com/Menwuyelet/jobboard/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Jobboard API server...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Redis for the email queue
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	mailProducer := mailqueue.NewProducer(rdb, cfg.Mail.Stream)
	emailSvc := service.NewEmailService(mailProducer)
	authSvc := service.NewAuthService(store.Users, tokenManager)
	userSvc := service.NewUserService(store.Users)
	adminSvc := service.NewAdminService(store.Users)
	verificationSvc := service.NewVerificationService(store.Repositories, store)
	categorySvc := service.NewCategoryService(store.Categories)
	jobSvc := service.NewJobService(store.Jobs, store.Categories, store.Users)
	applicationSvc := service.NewApplicationService(store.Repositories, store, emailSvc)
	notificationSvc := service.NewNotificationService(store.Notifications)

	// Initialize HTTP handlers
	router := httpapi.NewRouter(httpapi.RouterDependencies{
		Auth:          httpapi.NewAuthHandler(authSvc),
		Users:         httpapi.NewUserHandler(userSvc),
		Admins:        httpapi.NewAdminHandler(adminSvc),
		Verifications: httpapi.NewVerificationHandler(verificationSvc),
		Categories:    httpapi.NewCategoryHandler(categorySvc),
		Jobs:          httpapi.NewJobHandler(jobSvc),
		Applications:  httpapi.NewApplicationHandler(applicationSvc),
		Notifications: httpapi.NewNotificationHandler(notificationSvc),
		AuthMW:        httpapi.NewAuthMiddleware(authSvc),
	})

	// Start scheduled maintenance jobs
	jobRunner := jobs.NewJobRunner(store.Repositories, emailSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
