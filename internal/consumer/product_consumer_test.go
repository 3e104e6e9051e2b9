package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/service"
)

type mockInventoryService struct{ mock.Mock }

func (m *mockInventoryService) CreateForProduct(ctx context.Context, sku string, quantity int) (*models.Inventory, error) {
	args := m.Called(ctx, sku, quantity)
	inv, _ := args.Get(0).(*models.Inventory)
	return inv, args.Error(1)
}

func (m *mockInventoryService) GetBySKU(ctx context.Context, sku string) (*models.Inventory, error) {
	args := m.Called(ctx, sku)
	inv, _ := args.Get(0).(*models.Inventory)
	return inv, args.Error(1)
}

func (m *mockInventoryService) UpdateQuantity(ctx context.Context, sku string, quantity int) (*models.Inventory, error) {
	args := m.Called(ctx, sku, quantity)
	inv, _ := args.Get(0).(*models.Inventory)
	return inv, args.Error(1)
}

func (m *mockInventoryService) Exists(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *mockInventoryService) List(ctx context.Context) ([]models.Inventory, error) {
	args := m.Called(ctx)
	inventories, _ := args.Get(0).([]models.Inventory)
	return inventories, args.Error(1)
}

func eventBody(t *testing.T, event models.ProductCreatedEvent) []byte {
	t.Helper()
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestHandleProvisionsInventory(t *testing.T) {
	inventory := &mockInventoryService{}
	inventory.On("CreateForProduct", mock.Anything, "A1", 4).
		Return(&models.Inventory{SKU: "A1", Quantity: 4}, nil)

	c := NewInventoryConsumer(inventory, zap.NewNop().Sugar())

	err := c.Handle(context.Background(), eventBody(t, models.ProductCreatedEvent{
		ProductID: "100", SKU: "A1", InitialQuantity: 4,
	}))

	require.NoError(t, err)
	inventory.AssertExpectations(t)
}

func TestHandleRedeliveryIsIdempotent(t *testing.T) {
	inventory := &mockInventoryService{}
	inventory.On("CreateForProduct", mock.Anything, "A1", 4).
		Return(&models.Inventory{SKU: "A1", Quantity: 4}, nil).Once()
	inventory.On("CreateForProduct", mock.Anything, "A1", 4).
		Return(nil, fmt.Errorf("%w: A1", service.ErrInventoryExists))

	c := NewInventoryConsumer(inventory, zap.NewNop().Sugar())
	body := eventBody(t, models.ProductCreatedEvent{ProductID: "100", SKU: "A1", InitialQuantity: 4})

	require.NoError(t, c.Handle(context.Background(), body))
	require.NoError(t, c.Handle(context.Background(), body))
	inventory.AssertNumberOfCalls(t, "CreateForProduct", 2)
}

func TestHandleDefaultsNegativeQuantityToZero(t *testing.T) {
	inventory := &mockInventoryService{}
	inventory.On("CreateForProduct", mock.Anything, "A1", 0).
		Return(&models.Inventory{SKU: "A1"}, nil)

	c := NewInventoryConsumer(inventory, zap.NewNop().Sugar())

	err := c.Handle(context.Background(), eventBody(t, models.ProductCreatedEvent{
		ProductID: "100", SKU: "A1", InitialQuantity: -2,
	}))

	require.NoError(t, err)
	inventory.AssertExpectations(t)
}

func TestHandleRejectsMalformedPayload(t *testing.T) {
	c := NewInventoryConsumer(&mockInventoryService{}, zap.NewNop().Sugar())

	err := c.Handle(context.Background(), []byte("not json"))
	assert.Error(t, err)
}

func TestHandleRejectsMissingSKU(t *testing.T) {
	c := NewInventoryConsumer(&mockInventoryService{}, zap.NewNop().Sugar())

	err := c.Handle(context.Background(), eventBody(t, models.ProductCreatedEvent{ProductID: "100"}))
	assert.Error(t, err)
}

func TestHandlePropagatesStoreErrors(t *testing.T) {
	inventory := &mockInventoryService{}
	inventory.On("CreateForProduct", mock.Anything, "A1", 4).
		Return(nil, assert.AnError)

	c := NewInventoryConsumer(inventory, zap.NewNop().Sugar())

	err := c.Handle(context.Background(), eventBody(t, models.ProductCreatedEvent{
		ProductID: "100", SKU: "A1", InitialQuantity: 4,
	}))
	assert.Error(t, err)
}
