package rabbitmq_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rafaelleal24/smartretail/internal/adapters/config"
	"github.com/rafaelleal24/smartretail/internal/adapters/rabbitmq"
	"github.com/rafaelleal24/smartretail/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcrabbit "github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

var (
	testAdapter      *rabbitmq.RabbitMQAdapter
	testAmqpEndpoint string
)

func testConfig(maxRetries int) config.RabbitMQConfig {
	return config.RabbitMQConfig{
		URL:        testAmqpEndpoint,
		MaxRetries: maxRetries,
		RetryDelay: 100 * time.Millisecond,
		ExchangeConfigs: []config.ExchangeConfig{
			{Entity: "product", Name: "exchange.product", Type: "direct", Durable: true},
			{Entity: "customer", Name: "exchange.customer", Type: "direct", Durable: true},
		},
	}
}

func TestMain(m *testing.M) {
	ctx := context.Background()

	container, err := tcrabbit.Run(ctx, "rabbitmq:3-management-alpine")
	if err != nil {
		log.Fatalf("failed to start rabbitmq container: %v", err)
	}

	testAmqpEndpoint, err = container.AmqpURL(ctx)
	if err != nil {
		log.Fatalf("failed to get amqp url: %v", err)
	}

	testAdapter, err = rabbitmq.NewRabbitMQAdapter(testConfig(2))
	if err != nil {
		log.Fatalf("failed to create rabbitmq adapter: %v", err)
	}

	code := m.Run()

	_ = testAdapter.Close()
	_ = container.Terminate(ctx)

	os.Exit(code)
}

func consume(t *testing.T, exchange, routingKey string) <-chan amqp.Delivery {
	t.Helper()

	conn, err := amqp.Dial(testAmqpEndpoint)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ch, err := conn.Channel()
	require.NoError(t, err)

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(q.Name, routingKey, exchange, false, nil))

	msgs, err := ch.Consume(q.Name, "", true, false, false, false, nil)
	require.NoError(t, err)
	return msgs
}

func TestRabbitMQAdapter_HealthCheck(t *testing.T) {
	assert.NoError(t, testAdapter.HealthCheck(context.Background()))
}

func TestRabbitMQAdapter_PublishPurchase(t *testing.T) {
	msgs := consume(t, "exchange.product", "product.purchased")

	outcome, err := domain.Purchase(3, domain.SeedProducts(), nil, domain.Anonymous{})
	require.NoError(t, err)
	require.NoError(t, testAdapter.Publish(context.Background(), domain.NewProductPurchasedEvent(outcome, time.Now())))

	select {
	case msg := <-msgs:
		assert.Equal(t, "application/json", msg.ContentType)
		assert.Equal(t, "product.purchased", msg.Type)
		assert.NotEmpty(t, msg.MessageId)

		var body map[string]any
		require.NoError(t, json.Unmarshal(msg.Body, &body))
		assert.Equal(t, float64(3), body["product_id"])
		assert.Equal(t, float64(149), body["stock_left"])
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestRabbitMQAdapter_PublishRawCustomerEvent(t *testing.T) {
	msgs := consume(t, "exchange.customer", "customer.logged_in")

	require.NoError(t, testAdapter.PublishRaw(context.Background(), "customer.logged_in", "customer", []byte(`{"customer_id":1}`)))

	select {
	case msg := <-msgs:
		assert.JSONEq(t, `{"customer_id":1}`, string(msg.Body))
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestRabbitMQAdapter_UnknownEntity(t *testing.T) {
	err := testAdapter.PublishRaw(context.Background(), "invoice.issued", "invoice", []byte(`{}`))
	assert.ErrorIs(t, err, rabbitmq.ErrUnknownExchange)
}

func TestRabbitMQAdapter_ReconnectsAfterClose(t *testing.T) {
	adapter, err := rabbitmq.NewRabbitMQAdapter(testConfig(1))
	require.NoError(t, err)
	defer adapter.Close()

	require.NoError(t, adapter.Close())
	assert.Error(t, adapter.HealthCheck(context.Background()))

	require.NoError(t, adapter.PublishRaw(context.Background(), "product.purchased", "product", []byte(`{}`)))
	assert.NoError(t, adapter.HealthCheck(context.Background()))
}
