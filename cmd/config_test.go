package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"medassist/cmd"
	"medassist/internal/adapters/out/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_WithDefaults(t *testing.T) {
	c := cmd.Config{}.WithDefaults()

	assert.Equal(t, "8080", c.HTTPPort)
	assert.Equal(t, cmd.StorageMemory, c.StorageDriver)
	assert.Equal(t, "order.changed", c.KafkaOrderChangedTopic)
	require.NoError(t, c.Validate())

	level, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	delay, err := c.PaymentDelayDuration()
	require.NoError(t, err)
	assert.Equal(t, payment.DefaultDelay, delay)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  cmd.Config
		wantErr bool
	}{
		{"memory", cmd.Config{StorageDriver: cmd.StorageMemory}, false},
		{"postgres", cmd.Config{StorageDriver: cmd.StoragePostgres, DBHost: "db", DBName: "medassist"}, false},
		{"postgres without host", cmd.Config{StorageDriver: cmd.StoragePostgres, DBName: "medassist"}, true},
		{"unknown driver", cmd.Config{StorageDriver: "redis"}, true},
		{"bad level", cmd.Config{StorageDriver: cmd.StorageMemory, LogLevel: "loud"}, true},
		{"bad delay", cmd.Config{StorageDriver: cmd.StorageMemory, PaymentDelay: "soon"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_Parsers(t *testing.T) {
	c := cmd.Config{
		LogLevel:     "debug",
		PaymentDelay: "150ms",
		KafkaHost:    "kafka-1:9092, kafka-2:9092,",
		DBHost:       "localhost",
		DBPort:       "5432",
		DBUser:       "user",
		DBPassword:   "secret",
		DBName:       "medassist",
		DBSslMode:    "disable",
	}

	level, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	delay, err := c.PaymentDelayDuration()
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, delay)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.KafkaBrokers())
	assert.Equal(t, "host=localhost port=5432 user=user password=secret dbname=medassist sslmode=disable", c.DSN())
	assert.Empty(t, cmd.Config{}.KafkaBrokers())
}
