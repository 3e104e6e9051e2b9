package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/messaging"
	"github.com/tharindu-dev/cartify/internal/models"
)

// ProductPublisher emits product lifecycle events to the product exchange.
type ProductPublisher struct {
	mq  *messaging.RabbitMQ
	log *zap.SugaredLogger
}

func NewProductPublisher(mq *messaging.RabbitMQ, log *zap.SugaredLogger) *ProductPublisher {
	return &ProductPublisher{mq: mq, log: log}
}

func (p *ProductPublisher) PublishProductCreated(ctx context.Context, event models.ProductCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.mq.Publish(ctx, messaging.ProductsExchange, messaging.ProductCreatedKey, body); err != nil {
		return err
	}

	p.log.Infow("published product created event", "sku", event.SKU, "product_id", event.ProductID)
	return nil
}
