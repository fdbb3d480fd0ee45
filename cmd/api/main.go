// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/crmaster/internal/auth"
	"github.com/dangerclosesec/crmaster/internal/config"
	"github.com/dangerclosesec/crmaster/internal/email"
	"github.com/dangerclosesec/crmaster/internal/email/mailer"
	"github.com/dangerclosesec/crmaster/internal/handler"
	"github.com/dangerclosesec/crmaster/internal/repository"
	"github.com/dangerclosesec/crmaster/internal/service"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganisationRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	emailService, err := email.NewEmailService(cfg.Email)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}
	notifier := mailer.New(emailService, cfg.BaseURL)

	activityService := service.NewActivityService(activityRepo)
	userService := service.NewUserService(userRepo, orgRepo, agentRepo, passwordHasher, tokenManager)
	leadService := service.NewLeadService(leadRepo, agentRepo, categoryRepo, notifier, activityService)
	categoryService := service.NewCategoryService(categoryRepo, leadRepo, activityService)
	agentService := service.NewAgentService(userRepo, agentRepo, passwordHasher, notifier, activityService)

	router, err := handler.NewRouter(handler.RouterOptions{
		Logger:       logger,
		TokenManager: tokenManager,
		Resolver:     userService,
		Users:        userService,
		Leads:        leadService,
		Categories:   categoryService,
		Agents:       agentService,
		Activity:     activityService,
		Guard:        cfg.Guard,
		RateLimit:    cfg.RateLimit,
		Metrics:      cfg.Metrics,
	})
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "emailProvider", cfg.Email.Provider)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}
