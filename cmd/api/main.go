package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	accountUseCase "github.com/jpdelacruz/smart-expense/internal/domain/usecase/account"
	expenseUseCase "github.com/jpdelacruz/smart-expense/internal/domain/usecase/expense"
	savingsUseCase "github.com/jpdelacruz/smart-expense/internal/domain/usecase/savings"

	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/api/handler"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/api/routes"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/database"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/database/migration"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/hasher"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/logger"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/repository"
	timeProvider "github.com/jpdelacruz/smart-expense/internal/infrastructure/adapter/time"
	"github.com/jpdelacruz/smart-expense/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production, cfg.Logger.Level)
	defer appLogger.Flush()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Path:            cfg.Database.Path,
		BusyTimeout:     time.Duration(cfg.Database.BusyTimeoutMs) * time.Millisecond,
		Host:            cfg.Database.Host,
		Port:            parsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	expenseRepo := repository.NewExpenseRepository(dbManager.DB(), appLogger)
	savingsRepo := repository.NewSavingsRepository(dbManager.DB(), tp, appLogger)

	// Unit of work (transaction manager)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Password hashing
	passwordHasher := hasher.NewBcryptHasher()

	// Initialize use cases
	accountUseCaseImpl := accountUseCase.NewAccountUseCase(
		uow,
		userRepo,
		expenseRepo,
		savingsRepo,
		passwordHasher,
		tp,
		appLogger,
	)
	expenseUseCaseImpl := expenseUseCase.NewExpenseUseCase(expenseRepo, tp, appLogger)
	savingsUseCaseImpl := savingsUseCase.NewSavingsUseCase(savingsRepo, appLogger)

	// Initialize API handlers
	accountHandler := handler.NewAccountHandler(accountUseCaseImpl, appLogger)
	expenseHandler := handler.NewExpenseHandler(expenseUseCaseImpl, appLogger)
	savingsHandler := handler.NewSavingsHandler(savingsUseCaseImpl, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, accountHandler, expenseHandler, savingsHandler)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":   cfg.Server.Port,
			"env":    cfg.Environment,
			"driver": cfg.Database.Driver,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// parsePort converts a port string to an int, returning 0 on failure
func parsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil {
		return 0
	}
	return p
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration per driver
	switch cfg.Database.Driver {
	case "sqlite":
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path")
		}
	case "postgres":
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or SE_DB_HOST environment variable)")
		}
		if cfg.Database.Port == "" {
			missingConfigs = append(missingConfigs, "database.port (or SE_DB_PORT environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or SE_DB_USERNAME environment variable)")
		}
		if cfg.Database.Password == "" {
			missingConfigs = append(missingConfigs, "database.password (or SE_DB_PASSWORD environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or SE_DB_NAME environment variable)")
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be sqlite or postgres", cfg.Database.Driver)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	return nil
}
