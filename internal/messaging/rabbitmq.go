package messaging

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Product event topology. The inventory queue dead-letters rejected
// deliveries into the DLQ so poison messages never block the stream.
const (
	ProductsExchange   = "cartify.products"
	ProductsDLX        = "cartify.products.dlx"
	ProductCreatedKey  = "product.created"
	InventoryQueue     = "inventory.product.created"
	InventoryDeadQueue = "inventory.product.created.dlq"
)

type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitMQ(host string, port int, user, password string) (*RabbitMQ, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	return &RabbitMQ{
		conn:    conn,
		channel: channel,
	}, nil
}

// DeclareProductTopology declares the product event exchange, the inventory
// queue bound to it, and the dead-letter pair. Declarations are idempotent,
// every process that touches the topology calls this on startup.
func (r *RabbitMQ) DeclareProductTopology() error {
	if err := r.channel.ExchangeDeclare(ProductsExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	if err := r.channel.ExchangeDeclare(ProductsDLX, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare dead-letter exchange: %w", err)
	}

	_, err := r.channel.QueueDeclare(InventoryDeadQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare dead-letter queue: %w", err)
	}
	if err := r.channel.QueueBind(InventoryDeadQueue, ProductCreatedKey, ProductsDLX, false, nil); err != nil {
		return fmt.Errorf("failed to bind dead-letter queue: %w", err)
	}

	_, err = r.channel.QueueDeclare(InventoryQueue, true, false, false, false, amqp.Table{
		"x-dead-letter-exchange": ProductsDLX,
	})
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := r.channel.QueueBind(InventoryQueue, ProductCreatedKey, ProductsExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	return nil
}

// Publish sends a persistent JSON message to an exchange.
func (r *RabbitMQ) Publish(ctx context.Context, exchange, routingKey string, body []byte) error {
	err := r.channel.PublishWithContext(ctx,
		exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Consume starts delivering messages from a queue. Acknowledgement is
// manual, the consumer decides per message.
func (r *RabbitMQ) Consume(queue string) (<-chan amqp.Delivery, error) {
	messages, err := r.channel.Consume(
		queue,
		"",    // consumer tag
		false, // auto-ack (false = manual ack)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume messages: %w", err)
	}
	return messages, nil
}

// Close closes the channel and connection.
func (r *RabbitMQ) Close() {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		r.conn.Close()
	}
}
