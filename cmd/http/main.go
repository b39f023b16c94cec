package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelleal24/smartretail/internal/adapters/config"
	"github.com/rafaelleal24/smartretail/internal/adapters/http"
	"github.com/rafaelleal24/smartretail/internal/adapters/http/controllers"
	"github.com/rafaelleal24/smartretail/internal/adapters/http/middleware"
	"github.com/rafaelleal24/smartretail/internal/adapters/memory"
	"github.com/rafaelleal24/smartretail/internal/adapters/metrics"
	"github.com/rafaelleal24/smartretail/internal/adapters/mongo"
	"github.com/rafaelleal24/smartretail/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/smartretail/internal/adapters/outbox"
	"github.com/rafaelleal24/smartretail/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/smartretail/internal/adapters/redis"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/rafaelleal24/smartretail/internal/core/dto"
	"github.com/rafaelleal24/smartretail/internal/core/logger"
	"github.com/rafaelleal24/smartretail/internal/core/port"
	"github.com/rafaelleal24/smartretail/internal/core/service"
)

// @title       Smart Retail Companion API
// @version     1.0
// @description Kiosk catalog with dynamic pricing, purchases and loyalty points

// @host     localhost:8080
// @BasePath /

//go:generate swag init -d ../.. -g cmd/http/main.go -o ../../docs --parseInternal

type storage struct {
	products   port.ProductPort
	customers  port.CustomerPort
	outbox     outbox.Repository
	txManager  port.TransactionManager
	check      func(ctx context.Context) error
	disconnect func()
}

func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	if cfg.Store.Backend == config.StoreMongo {
		client, db, err := mongo.Open(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		logger.Info(ctx, "Connected to MongoDB", map[string]any{"database": cfg.Mongo.Database})
		return &storage{
			products:   repository.NewProductRepository(db),
			customers:  repository.NewCustomerRepository(db),
			outbox:     repository.NewOutboxRepository(db),
			txManager:  mongo.NewTransactionManager(client),
			check:      func(ctx context.Context) error { return client.Ping(ctx, nil) },
			disconnect: func() { _ = mongo.Disconnect(client) },
		}, nil
	}

	store := memory.NewStore(domain.SeedProducts(), domain.SeedCustomers())
	logger.Info(ctx, "Using in-memory store", nil)
	return &storage{
		products:   memory.NewProductRepository(store),
		customers:  memory.NewCustomerRepository(store),
		outbox:     memory.NewOutboxRepository(store),
		txManager:  memory.NewTransactionManager(store),
		check:      func(context.Context) error { return nil },
		disconnect: func() {},
	}, nil
}

func main() {
	// initialize config and logger
	cfg := config.NewConfig()
	if err := logger.Initialize(cfg.Logger.Endpoint, cfg.Logger.ServiceName, cfg.Logger.IsProduction, logger.ParseLevel(cfg.Logger.Level)); err != nil {
		// logger not available yet, fall back to stderr
		fmt.Println("failed to initialize logger: " + err.Error())
		os.Exit(1)
	}

	// cancellable context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to open store", err, map[string]any{"backend": string(cfg.Store.Backend)})
	}
	defer store.disconnect()

	checkers := []controllers.HealthChecker{{Name: "store", Check: store.check}}

	// cache and rate limiter
	var (
		idempotencyCache port.CachePort[service.IdempotencyEntry[dto.PurchaseReceipt]]
		rateLimiter      middleware.RateLimiter
	)
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewConnection(cfg.Redis)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to Redis", err, nil)
		}
		defer redisClient.Close()
		logger.Info(ctx, "Connected to Redis", nil)

		idempotencyCache = redis.NewCache[service.IdempotencyEntry[dto.PurchaseReceipt]](redisClient, "idempotency-purchase")
		rateLimiter = redis.NewRateLimiter(redisClient)
		checkers = append(checkers, controllers.HealthChecker{Name: "redis", Check: redisClient.Ping})
	} else {
		idempotencyCache = memory.NewCache[service.IdempotencyEntry[dto.PurchaseReceipt]]()
		rateLimiter = memory.NewRateLimiter()
	}

	// event broker
	var broker port.BrokerPort
	if cfg.RabbitMQ.Enabled {
		rabbit, err := rabbitmq.NewRabbitMQAdapter(cfg.RabbitMQ)
		if err != nil {
			logger.Fatal(ctx, "Failed to connect to RabbitMQ", err, nil)
		}
		logger.Info(ctx, "Connected to RabbitMQ", nil)
		broker = rabbit
		checkers = append(checkers, controllers.HealthChecker{Name: "rabbitmq", Check: rabbit.HealthCheck})
	} else {
		broker = memory.NewLogBroker()
	}
	defer broker.Close()

	// outbox handler (uses cancellable context)
	outboxHandler := outbox.NewHandler(store.outbox, broker, cfg.Outbox)
	outboxDone := make(chan struct{})
	go func() {
		defer close(outboxDone)
		outboxHandler.Start(ctx)
	}()
	logger.Info(ctx, "Outbox handler started", map[string]any{"interval": cfg.Outbox.Interval.String(), "batch_size": cfg.Outbox.BatchSize})

	// services
	recorder := metrics.NewRecorder()
	events := outbox.NewEventStore(store.outbox)
	idempotencyService := service.NewIdempotencyService(idempotencyCache, cfg.Idempotency.TTL, cfg.Idempotency.PollInterval, cfg.Idempotency.PollTimeout)
	sessionService := service.NewSessionService(store.customers, events, store.txManager, recorder)
	catalogService := service.NewCatalogService(store.products)
	purchaseService := service.NewPurchaseService(store.products, store.customers, events, sessionService, idempotencyService, store.txManager, recorder)

	// router
	router := http.NewRouter(
		controllers.NewHealthController(checkers),
		controllers.NewSessionController(sessionService),
		controllers.NewProductController(catalogService, purchaseService),
		rateLimiter,
		recorder,
	)

	// graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info(ctx, "Received shutdown signal", map[string]any{"signal": sig.String()})
		cancel()
	}()

	logger.Info(ctx, "Starting HTTP server", map[string]any{
		"addr":    cfg.HTTP.BindInterface + ":" + cfg.HTTP.Port,
		"backend": string(cfg.Store.Backend),
	})
	if err := router.ListenAndServe(ctx, cfg.HTTP); err != nil {
		logger.Error(ctx, "HTTP server failed", err, nil)
		cancel()
	}

	<-outboxDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := logger.Shutdown(shutdownCtx); err != nil {
		fmt.Println("logger shutdown error: " + err.Error())
	}
}
