package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "palengke_db", cfg.DBName)
	assert.Equal(t, 1500*time.Millisecond, cfg.QuietWindow)
	assert.Equal(t, "PHP", cfg.Currency)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "pos-sales", cfg.KafkaTopic)
	assert.True(t, cfg.PrometheusEnabled)
	assert.False(t, cfg.SeedSampleData)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("POS_QUIET_WINDOW_MS", "500")
	t.Setenv("CURRENCY", "USD")
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")
	t.Setenv("SEED_SAMPLE_DATA", "true")

	cfg := Load()

	assert.Equal(t, 500*time.Millisecond, cfg.QuietWindow)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.SeedSampleData)
}

func TestLoadInvalidQuietWindowFallsBack(t *testing.T) {
	t.Setenv("POS_QUIET_WINDOW_MS", "not-a-number")
	assert.Equal(t, 1500*time.Millisecond, Load().QuietWindow)

	t.Setenv("POS_QUIET_WINDOW_MS", "-100")
	assert.Equal(t, 1500*time.Millisecond, Load().QuietWindow)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "vendor",
		DBPassword: "secret",
		DBName:     "palengke_db",
	}
	assert.Equal(t, "postgres://vendor:secret@db:5432/palengke_db?sslmode=disable", cfg.PostgresDSN())
}
