package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"medassist/internal/adapters/out/payment"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort      string
	LogLevel      string
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost              string
	KafkaOrderChangedTopic string

	OrderProgressSchedule string
	PaymentDelay          string

	GenAIAPIKey  string
	GenAIModel   string
	GenAIBaseURL string
}

// WithDefaults fills the settings that have a sensible local value.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = "8080"
	}
	if c.StorageDriver == "" {
		c.StorageDriver = StorageMemory
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	if c.KafkaOrderChangedTopic == "" {
		c.KafkaOrderChangedTopic = "order.changed"
	}
	return c
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the %s storage driver", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q, want %s or %s", c.StorageDriver, StorageMemory, StoragePostgres)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.PaymentDelayDuration(); err != nil {
		return err
	}
	return nil
}

// Level parses LOG_LEVEL, defaulting to info.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return level, nil
}

// PaymentDelayDuration parses PAYMENT_DELAY, defaulting to payment.DefaultDelay.
func (c Config) PaymentDelayDuration() (time.Duration, error) {
	if c.PaymentDelay == "" {
		return payment.DefaultDelay, nil
	}
	d, err := time.ParseDuration(c.PaymentDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid PAYMENT_DELAY: %w", err)
	}
	return d, nil
}

// KafkaBrokers splits KAFKA_HOST on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// DSN builds the Postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
