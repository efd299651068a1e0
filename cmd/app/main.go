package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medassist/cmd"
	httpin "medassist/internal/adapters/in/http"
	"medassist/internal/adapters/out/postgres/migrations"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "medassist",
		Short:        "MedAssist orders, lab bookings and assistant API",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCommand(), newMigrateCommand())
	return root
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(c *cobra.Command, _ []string) error {
			configs := getConfigs()
			logger := newLogger(configs)

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := cmd.NewCompositionRoot(ctx, configs, logger)
			if err != nil {
				log.Fatalf("Failed to build application: %v", err)
			}
			defer func() {
				if err := app.Close(); err != nil {
					logger.Error("Failed to release resources", "error", err)
				}
			}()

			jobManager := app.CreateJobManager()
			if err = jobManager.StartAll(); err != nil {
				log.Fatalf("Failed to start jobs: %v", err)
			}
			defer jobManager.StopAll()

			return startWebServer(ctx, app, configs.HTTPPort, logger)
		},
	}
}

func newMigrateCommand() *cobra.Command {
	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the Postgres schema",
	}
	migrate.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			RunE: func(c *cobra.Command, _ []string) error {
				return withSQLDB(c.Context(), migrations.Up)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Print applied and pending migrations",
			RunE: func(c *cobra.Command, _ []string) error {
				return withSQLDB(c.Context(), migrations.Status)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			RunE: func(c *cobra.Command, _ []string) error {
				return withSQLDB(c.Context(), func(ctx context.Context, db *sql.DB) error {
					version, err := migrations.Version(ctx, db)
					if err != nil {
						return err
					}
					c.Printf("schema version %d\n", version)
					return nil
				})
			},
		},
	)
	return migrate
}

func withSQLDB(ctx context.Context, run func(context.Context, *sql.DB) error) error {
	configs := getConfigs()
	configs.StorageDriver = cmd.StoragePostgres
	if err := configs.Validate(); err != nil {
		return err
	}

	gormDB, err := cmd.OpenGormDB(configs)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return run(ctx, sqlDB)
}

func getConfigs() cmd.Config {
	loadDotEnv(".env")

	configs := cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		LogLevel:               os.Getenv("LOG_LEVEL"),
		StorageDriver:          os.Getenv("STORAGE_DRIVER"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		OrderProgressSchedule:  os.Getenv("ORDER_PROGRESS_SCHEDULE"),
		PaymentDelay:           os.Getenv("PAYMENT_DELAY"),
		GenAIAPIKey:            os.Getenv("GENAI_API_KEY"),
		GenAIModel:             os.Getenv("GENAI_MODEL"),
		GenAIBaseURL:           os.Getenv("GENAI_BASE_URL"),
	}.WithDefaults()

	if err := configs.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return configs
}

// loadDotEnv copies path into the environment. Variables already set win,
// and a missing file is not an error.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading %s file: %v", path, err)
	}
}

func newLogger(configs cmd.Config) *slog.Logger {
	level, _ := configs.Level()
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := httpin.NewRouter(app.CreateHTTPServer(), logger,
		httpin.WithMetrics(app.Metrics(), app.Metrics().Handler()),
		httpin.WithSwaggerUI(),
	)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
