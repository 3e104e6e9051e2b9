package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
)

type InventoryService interface {
	CreateForProduct(ctx context.Context, sku string, quantity int) (*models.Inventory, error)
	GetBySKU(ctx context.Context, sku string) (*models.Inventory, error)
	UpdateQuantity(ctx context.Context, sku string, quantity int) (*models.Inventory, error)
	Exists(ctx context.Context, sku string) (bool, error)
	List(ctx context.Context) ([]models.Inventory, error)
}

type inventoryService struct {
	inventory InventoryStore
	log       *zap.SugaredLogger
}

func NewInventoryService(inventory InventoryStore, log *zap.SugaredLogger) InventoryService {
	return &inventoryService{inventory: inventory, log: log}
}

// CreateForProduct provisions the single inventory record for a SKU.
func (s *inventoryService) CreateForProduct(ctx context.Context, sku string, quantity int) (*models.Inventory, error) {
	exists, err := s.inventory.ExistsBySKU(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrInventoryExists, sku)
	}

	inv := &models.Inventory{SKU: sku, Quantity: quantity}
	if err := s.inventory.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create inventory: %w", err)
	}
	s.log.Infow("inventory created", "sku", sku, "quantity", quantity)
	return inv, nil
}

func (s *inventoryService) GetBySKU(ctx context.Context, sku string) (*models.Inventory, error) {
	inv, err := s.inventory.GetBySKU(ctx, sku)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: %s", ErrInventoryNotFound, sku)
	}
	return inv, nil
}

func (s *inventoryService) UpdateQuantity(ctx context.Context, sku string, quantity int) (*models.Inventory, error) {
	inv, err := s.inventory.UpdateQuantity(ctx, sku, quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: %s", ErrInventoryNotFound, sku)
	}
	s.log.Infow("inventory quantity updated", "sku", sku, "quantity", quantity)
	return inv, nil
}

func (s *inventoryService) Exists(ctx context.Context, sku string) (bool, error) {
	return s.inventory.ExistsBySKU(ctx, sku)
}

func (s *inventoryService) List(ctx context.Context) ([]models.Inventory, error) {
	return s.inventory.List(ctx)
}
