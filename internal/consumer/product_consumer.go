package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/service"
)

// InventoryConsumer provisions inventory records from product created
// events. Processing is idempotent: a redelivered event for a SKU that
// already has a record is acknowledged without side effects. Failed
// messages are rejected without requeue and end up in the dead-letter
// queue.
type InventoryConsumer struct {
	inventory service.InventoryService
	log       *zap.SugaredLogger
}

func NewInventoryConsumer(inventory service.InventoryService, log *zap.SugaredLogger) *InventoryConsumer {
	return &InventoryConsumer{inventory: inventory, log: log}
}

// Run processes deliveries until the channel closes or ctx is cancelled.
func (c *InventoryConsumer) Run(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			if err := c.Handle(ctx, msg.Body); err != nil {
				c.log.Errorw("failed to process product created event", "error", err)
				if nackErr := msg.Nack(false, false); nackErr != nil {
					c.log.Errorw("failed to nack message", "error", nackErr)
				}
				continue
			}
			if err := msg.Ack(false); err != nil {
				c.log.Errorw("failed to ack message", "error", err)
			}
		}
	}
}

// Handle applies one product created event.
func (c *InventoryConsumer) Handle(ctx context.Context, body []byte) error {
	var event models.ProductCreatedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to decode event: %w", err)
	}
	if event.SKU == "" {
		return fmt.Errorf("event missing sku")
	}

	quantity := event.InitialQuantity
	if quantity < 0 {
		quantity = 0
	}

	_, err := c.inventory.CreateForProduct(ctx, event.SKU, quantity)
	if errors.Is(err, service.ErrInventoryExists) {
		c.log.Infow("inventory already provisioned, skipping", "sku", event.SKU)
		return nil
	}
	if err != nil {
		return err
	}

	c.log.Infow("inventory provisioned", "sku", event.SKU, "quantity", quantity)
	return nil
}
