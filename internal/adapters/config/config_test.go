package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("HTTP_PORT", "8080")

	cfg := NewConfig()

	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 15*time.Minute, cfg.Idempotency.TTL)
	assert.Len(t, cfg.RabbitMQ.ExchangeConfigs, 2)
	assert.Equal(t, "exchange.product", cfg.RabbitMQ.ExchangeConfigs[0].Name)
	assert.Equal(t, "exchange.customer", cfg.RabbitMQ.ExchangeConfigs[1].Name)
	assert.Equal(t, "product", cfg.RabbitMQ.ExchangeConfigs[0].Entity)
}

func TestNewConfig_FromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("RABBITMQ_ENABLED", "true")
	t.Setenv("OUTBOX_INTERVAL", "250")
	t.Setenv("IDEMPOTENCY_TTL", "60")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RABBITMQ_CUSTOMER_EXCHANGE", "retail.customers")

	cfg := NewConfig()

	assert.Equal(t, StoreMongo, cfg.Store.Backend)
	assert.True(t, cfg.Redis.Enabled)
	assert.True(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, 250*time.Millisecond, cfg.Outbox.Interval)
	assert.Equal(t, time.Minute, cfg.Idempotency.TTL)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "customer", cfg.RabbitMQ.ExchangeConfigs[1].Entity)
	assert.Equal(t, "retail.customers", cfg.RabbitMQ.ExchangeConfigs[1].Name)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SR_INT", "notanumber")
	t.Setenv("SR_BOOL", "yes")

	assert.Equal(t, 7, getIntEnv("SR_INT", 7))
	assert.True(t, getBoolEnv("SR_BOOL", true))
	assert.False(t, getBoolEnv("SR_BOOL", false))
	assert.Equal(t, "fallback", getStringEnv("SR_MISSING", "fallback"))
	assert.Equal(t, StoreMemory, parseStoreBackend("postgres"))
}

func TestGetDurationEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"bare number uses the unit", "250", 250 * time.Millisecond},
		{"duration string", "1m30s", 90 * time.Second},
		{"garbage falls back", "soon", time.Second},
		{"blank falls back", "  ", time.Second},
		{"zero falls back", "0", time.Second},
		{"negative number falls back", "-5", time.Second},
		{"zero duration string falls back", "0s", time.Second},
		{"negative duration string falls back", "-2m", time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getDurationEnv("TEST_DURATION", time.Second, time.Millisecond))
		})
	}
}

func TestGetBoolEnv(t *testing.T) {
	t.Setenv("TEST_BOOL", "1")
	assert.True(t, getBoolEnv("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "false")
	assert.False(t, getBoolEnv("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "nope")
	assert.True(t, getBoolEnv("TEST_BOOL", true))
	assert.False(t, getBoolEnv("TEST_BOOL", false))
}

func TestNewConfig_NonPositiveIntervalsUseDefaults(t *testing.T) {
	t.Setenv("OUTBOX_INTERVAL", "0")
	t.Setenv("IDEMPOTENCY_POLL_INTERVAL", "-10")

	cfg := NewConfig()

	assert.Equal(t, 500*time.Millisecond, cfg.Outbox.Interval)
	assert.Equal(t, 50*time.Millisecond, cfg.Idempotency.PollInterval)
}
