package service

import (
	"context"
	"fmt"

	"github.com/tharindu-dev/cartify/internal/models"
)

type OrderService interface {
	GetByID(ctx context.Context, id int64) (*models.Order, error)
}

type orderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: ID %d", ErrOrderNotFound, id)
	}
	return order, nil
}
