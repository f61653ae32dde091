package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/webfolio/portfolio-api/docs"
	"github.com/webfolio/portfolio-api/internal/auth"
	"github.com/webfolio/portfolio-api/internal/catalog"
	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/database"
	"github.com/webfolio/portfolio-api/internal/http/handler"
	"github.com/webfolio/portfolio-api/internal/http/middleware"
	"github.com/webfolio/portfolio-api/internal/http/router"
	"github.com/webfolio/portfolio-api/internal/jobs"
	"github.com/webfolio/portfolio-api/internal/logger"
	"github.com/webfolio/portfolio-api/internal/mail"
	"github.com/webfolio/portfolio-api/internal/notify"
	"github.com/webfolio/portfolio-api/internal/repository"
	"github.com/webfolio/portfolio-api/internal/service"
	"github.com/webfolio/portfolio-api/internal/session"
	"github.com/webfolio/portfolio-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Portfolio API
// @version 1.0
// @description Pricing simulator, quote documents and contact form backend for a freelance web developer site

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin JWT bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description Admin API key

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if host := os.Getenv("PUBLIC_HOST"); host != "" {
		docs.SwaggerInfo.Host = host
	} else {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// In staging/production secrets may come from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	cat, err := catalog.Load(cfg.Simulator.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("Catalog loaded",
		zap.String("path", cfg.Simulator.CatalogPath),
		zap.Int("project_types", len(cat.ProjectTypes)),
	)

	healthChecks := make(map[string]handler.HealthCheck)

	// Simulator sessions
	var (
		sessionStore session.Store
		memoryStore  *session.MemoryStore
		redisClient  *redis.Client
	)
	switch cfg.Simulator.SessionStore {
	case "redis":
		redisClient, err = database.NewRedisClient(ctx, &cfg.Redis, log)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		redisStore := session.NewRedisStore(redisClient, cfg.Simulator.SessionTTLDuration())
		sessionStore = redisStore
		healthChecks["redis"] = redisStore.Ping
	default:
		memoryStore = session.NewMemoryStore(cfg.Simulator.SessionTTLDuration())
		sessionStore = memoryStore
	}
	log.Info("Session store initialized", zap.String("store", cfg.Simulator.SessionStore))

	// Lead store (optional)
	var (
		db          *gorm.DB
		submissions service.SubmissionStore
		reader      service.SubmissionReader
	)
	if cfg.Database.Enabled {
		db, err = database.NewDatabase(ctx, &cfg.Database, log)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		repo := repository.NewSubmissionRepository(db)
		submissions, reader = repo, repo
		healthChecks["database"] = func(ctx context.Context) error { return database.HealthCheck(ctx, db) }
	} else {
		log.Info("Database disabled, contact submissions will not be stored")
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	var mailer service.Mailer
	if cfg.Mail.MailEnabled() {
		resendMailer, err := mail.NewResendMailer(cfg.Mail.ResendAPIKey, cfg.Mail.From, log)
		if err != nil {
			return fmt.Errorf("failed to initialize mailer: %w", err)
		}
		mailer = resendMailer
	} else {
		log.Warn("Email provider not configured, contact requests run in development mode")
	}

	var notifier service.LeadNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		telegram, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, log)
		if err != nil {
			// Notifications are optional
			log.Warn("Telegram notifier unavailable, continuing without it", zap.Error(err))
		} else {
			notifier = telegram
		}
	}

	// Services
	quoteService := service.NewQuoteService(cat, &cfg.Quote, log)
	simulatorService := service.NewSimulatorService(cat, sessionStore, log)
	contactService := service.NewContactService(cat, quoteService, mailer, notifier, submissions, fileStorage, cfg, log)
	var submissionService *service.SubmissionService
	if reader != nil {
		submissionService = service.NewSubmissionService(reader, fileStorage, log)
	}

	authMiddleware := auth.NewMiddleware(&cfg.Admin, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	rt := router.NewRouter(
		cfg,
		log,
		authMiddleware,
		rateLimiter,
		handler.NewHealthHandler(healthChecks, log),
		handler.NewSimulatorHandler(simulatorService, log),
		handler.NewQuoteHandler(quoteService, log),
		handler.NewContactHandler(contactService, log),
		handler.NewAdminHandler(submissionService, log),
		handler.NewAuthHandler(authMiddleware.Validator(), log),
	)

	// Redis expires sessions by itself; only the in-memory store is purged
	var scheduler *jobs.Scheduler
	if memoryStore != nil {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.NewSessionPurgeJob(memoryStore, log).Register(scheduler, cfg.Simulator.PurgeSchedule); err != nil {
			return fmt.Errorf("failed to register session purge job: %w", err)
		}
		scheduler.Start()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      http.TimeoutHandler(rt.Setup(), cfg.Server.RequestTimeoutDuration(), `{"error":"Request timed out"}`),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		if redisClient != nil {
			if err := redisClient.Close(); err != nil {
				log.Warn("Error closing redis connection", zap.Error(err))
			}
		}
		if db != nil {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
