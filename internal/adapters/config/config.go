package config

import (
	"time"

	"github.com/joho/godotenv"
)

type StoreBackend string

const (
	StoreMemory StoreBackend = "memory"
	StoreMongo  StoreBackend = "mongo"
)

type StoreConfig struct {
	Backend StoreBackend
}

type MongoConfig struct {
	URI                    string
	Database               string
	Timeout                time.Duration
	MaxPoolSize            uint64
	MinPoolSize            uint64
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
}

type RabbitMQConfig struct {
	Enabled         bool
	URL             string
	MaxRetries      int
	RetryDelay      time.Duration
	ExchangeConfigs []ExchangeConfig
}

// ExchangeConfig declares the exchange that events of Entity are published to.
type ExchangeConfig struct {
	Entity     string
	Name       string
	Type       string // direct, topic, fanout, headers
	Durable    bool
	AutoDelete bool
}

type RedisConfig struct {
	Enabled  bool
	URL      string
	Password string
	DB       int
}

type OutboxConfig struct {
	BatchSize int
	Interval  time.Duration
}

type HTTPConfig struct {
	Port          string
	BindInterface string
}

type IdempotencyConfig struct {
	TTL          time.Duration
	PollInterval time.Duration
	PollTimeout  time.Duration
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
	Level        string
}

type Config struct {
	Store       StoreConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Outbox      OutboxConfig
	HTTP        HTTPConfig
	Idempotency IdempotencyConfig
	Logger      LoggerConfig
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Store: StoreConfig{
			Backend: parseStoreBackend(getStringEnv("STORE_BACKEND", string(StoreMemory))),
		},
		Mongo: MongoConfig{
			URI:                    getStringEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:               getStringEnv("MONGO_DATABASE", "smartretail"),
			Timeout:                getDurationEnv("MONGO_TIMEOUT", 10*time.Second, time.Second),
			MaxPoolSize:            uint64(getIntEnv("MONGO_MAX_POOL_SIZE", 20)),
			MinPoolSize:            uint64(getIntEnv("MONGO_MIN_POOL_SIZE", 1)),
			ConnectTimeout:         getDurationEnv("MONGO_CONNECT_TIMEOUT", 10*time.Second, time.Second),
			ServerSelectionTimeout: getDurationEnv("MONGO_SERVER_SELECTION_TIMEOUT", 5*time.Second, time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Outbox: OutboxConfig{
			BatchSize: getIntEnv("OUTBOX_BATCH_SIZE", 100),
			Interval:  getDurationEnv("OUTBOX_INTERVAL", 500*time.Millisecond, time.Millisecond),
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
		},
		Idempotency: IdempotencyConfig{
			TTL:          getDurationEnv("IDEMPOTENCY_TTL", 900*time.Second, time.Second),
			PollInterval: getDurationEnv("IDEMPOTENCY_POLL_INTERVAL", 50*time.Millisecond, time.Millisecond),
			PollTimeout:  getDurationEnv("IDEMPOTENCY_POLL_TIMEOUT", 5*time.Second, time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:    getBoolEnv("RABBITMQ_ENABLED", false),
			URL:        getStringEnv("RABBITMQ_URL", "amqp://localhost:5672"),
			MaxRetries: getIntEnv("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay: getDurationEnv("RABBITMQ_RETRY_DELAY", 1*time.Second, time.Second),
			ExchangeConfigs: []ExchangeConfig{
				exchangeConfig("product", "RABBITMQ_PRODUCT_EXCHANGE"),
				exchangeConfig("customer", "RABBITMQ_CUSTOMER_EXCHANGE"),
			},
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "smartretail"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
			Level:        getStringEnv("LOG_LEVEL", "INFO"),
		},
	}
}

func exchangeConfig(entity, nameKey string) ExchangeConfig {
	return ExchangeConfig{
		Entity:     entity,
		Name:       getStringEnv(nameKey, "exchange."+entity),
		Type:       getStringEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		Durable:    getBoolEnv("RABBITMQ_EXCHANGE_DURABLE", true),
		AutoDelete: getBoolEnv("RABBITMQ_EXCHANGE_AUTO_DELETE", false),
	}
}

func parseStoreBackend(raw string) StoreBackend {
	if StoreBackend(raw) == StoreMongo {
		return StoreMongo
	}
	return StoreMemory
}
