package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/adapters/memory"
	postgres_adapter "listing-service/internal/adapters/postgres"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/configs"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/internal/schema"

	fluentlogger "listing-service/pkg/fluent_logger"
	"listing-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shutdownTimeout = 10 * time.Second

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

// NewApp создает новый экземпляр приложения.
// Здесь все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. Логгеры ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	closeFluent := func() {
		if fluentClient != nil {
			fluentClient.Close()
		}
	}

	// --- 2. Схема таблицы ---
	if err := checkSchema(appConfig.Schema.File); err != nil {
		appLogger.Error("Schema check failed", err, port.Fields{"schema_file": appConfig.Schema.File})
		closeFluent()
		return nil, err
	}
	appLogger.Info("Schema file validated", port.Fields{"schema_file": appConfig.Schema.File})

	// --- 3. Хранилище ---
	var (
		storage port.ListingStoragePort
		dbPool  *pgxpool.Pool
	)
	switch appConfig.Storage.Driver {
	case configs.StorageDriverMemory:
		store, err := memory.LoadSeedFile(appConfig.Storage.SeedFile)
		if err != nil {
			appLogger.Error("Failed to load seed file", err, nil)
			closeFluent()
			return nil, err
		}
		storage = store
		appLogger.Info("In-memory listing store initialized", port.Fields{"seed_file": appConfig.Storage.SeedFile})
	default:
		dbPool, err = postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			closeFluent()
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		adapter, err := postgres_adapter.NewPostgresListingAdapter(dbPool)
		if err != nil {
			dbPool.Close()
			closeFluent()
			return nil, fmt.Errorf("failed to create postgres listing adapter: %w", err)
		}
		storage = adapter
	}

	// --- 4. Use cases ---
	searchListingsUseCase := usecase.NewSearchListingsUseCase(storage)
	getLocationsUseCase := usecase.NewGetLocationsUseCase(storage)
	selectLocationsUseCase := usecase.NewSelectLocationsUseCase(storage)
	healthCheckUseCase := usecase.NewHealthCheckUseCase(storage)
	appLogger.Info("All use cases initialized.", nil)

	// --- 5. REST ---
	apiServer := rest.NewServer(
		rest.ServerConfig{Port: appConfig.Rest.PORT, CORSAllowedOrigins: appConfig.Rest.CORSAllowedOrigins},
		rest.NewListingHandler(searchListingsUseCase, getLocationsUseCase),
		rest.NewSelectionHandler(getLocationsUseCase, selectLocationsUseCase),
		rest.NewHealthHandler(healthCheckUseCase),
		baseLogger,
	)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		dbPool:       dbPool,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// checkSchema проверяет, что schema.yaml объявляет все колонки объявлений.
func checkSchema(path string) error {
	s, err := schema.Load(path)
	if err != nil {
		return err
	}
	columns := make([]string, 0, len(domain.ListingFields))
	for _, f := range domain.ListingFields {
		columns = append(columns, string(f))
	}
	return s.Require(postgres_adapter.ListingsTable, columns...)
}

// Run запускает HTTP-сервер и ждет сигнала завершения.
func (a *App) Run() error {
	defer a.shutdown()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
		return err
	}
}

func (a *App) shutdown() {
	a.logger.Info("Shutdown sequence initiated...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.apiServer.Stop(ctx); err != nil {
		a.logger.Error("Error during API server shutdown", err, nil)
	}

	if a.dbPool != nil {
		a.dbPool.Close()
		a.logger.Info("PostgreSQL pool closed.", nil)
	}

	a.logger.Info("Application shut down gracefully.", nil)

	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			// fluent уже может быть недоступен, пишем в stdout
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
