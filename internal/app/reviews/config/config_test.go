package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingAdminSecretFails(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "")
	t.Setenv("SESSION_SECRET", "signing-key")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "ADMIN_SECRET")
}

func TestLoad_MissingSessionSecretFails(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "super-secret")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "SESSION_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "super-secret")
	t.Setenv("SESSION_SECRET", "signing-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "campusvoice", cfg.MongoDB.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "review_events", cfg.Kafka.Topic)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "@every 1m", cfg.Stats.Schedule)
}

func TestLoad_ExplicitValues(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "super-secret")
	t.Setenv("SESSION_SECRET", "signing-key")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "broker-1:9092,broker-2:9092")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_InvalidSessionTTL(t *testing.T) {
	t.Setenv("ADMIN_SECRET", "super-secret")
	t.Setenv("SESSION_SECRET", "signing-key")
	t.Setenv("SESSION_TTL", "twelve hours")

	_, err := Load()
	assert.ErrorContains(t, err, "SESSION_TTL")
}
