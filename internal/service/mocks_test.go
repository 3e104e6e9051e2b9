package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/payment"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type mockCategoryStore struct{ mock.Mock }

func (m *mockCategoryStore) Create(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *mockCategoryStore) GetByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *mockCategoryStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryStore) Update(ctx context.Context, category *models.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *mockCategoryStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryStore) CountProducts(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) Create(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *mockProductStore) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *mockProductStore) Update(ctx context.Context, product *models.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductStore) ListApproved(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductStore) ListAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductStore) ListByStatus(ctx context.Context, status models.ProductStatus) ([]models.Product, error) {
	args := m.Called(ctx, status)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductStore) ListApprovedByCategory(ctx context.Context, categoryName string) ([]models.Product, error) {
	args := m.Called(ctx, categoryName)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *mockProductStore) Search(ctx context.Context, term string) ([]models.Product, error) {
	args := m.Called(ctx, term)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

type mockInventoryStore struct{ mock.Mock }

func (m *mockInventoryStore) Create(ctx context.Context, inv *models.Inventory) error {
	return m.Called(ctx, inv).Error(0)
}

func (m *mockInventoryStore) GetBySKU(ctx context.Context, sku string) (*models.Inventory, error) {
	args := m.Called(ctx, sku)
	inv, _ := args.Get(0).(*models.Inventory)
	return inv, args.Error(1)
}

func (m *mockInventoryStore) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	args := m.Called(ctx, sku)
	return args.Bool(0), args.Error(1)
}

func (m *mockInventoryStore) UpdateQuantity(ctx context.Context, sku string, quantity int) (*models.Inventory, error) {
	args := m.Called(ctx, sku, quantity)
	inv, _ := args.Get(0).(*models.Inventory)
	return inv, args.Error(1)
}

func (m *mockInventoryStore) List(ctx context.Context) ([]models.Inventory, error) {
	args := m.Called(ctx)
	inventories, _ := args.Get(0).([]models.Inventory)
	return inventories, args.Error(1)
}

type mockCartStore struct{ mock.Mock }

func (m *mockCartStore) CreateCart(ctx context.Context, cart *models.Cart) error {
	return m.Called(ctx, cart).Error(0)
}

func (m *mockCartStore) GetCartByID(ctx context.Context, id int64) (*models.Cart, error) {
	args := m.Called(ctx, id)
	cart, _ := args.Get(0).(*models.Cart)
	return cart, args.Error(1)
}

func (m *mockCartStore) GetCartByCustomerID(ctx context.Context, customerID string) (*models.Cart, error) {
	args := m.Called(ctx, customerID)
	cart, _ := args.Get(0).(*models.Cart)
	return cart, args.Error(1)
}

func (m *mockCartStore) ExistsByCustomerID(ctx context.Context, customerID string) (bool, error) {
	args := m.Called(ctx, customerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockCartStore) GetItem(ctx context.Context, cartID int64, sku string) (*models.CartItem, error) {
	args := m.Called(ctx, cartID, sku)
	item, _ := args.Get(0).(*models.CartItem)
	return item, args.Error(1)
}

func (m *mockCartStore) InsertItem(ctx context.Context, item *models.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockCartStore) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	return m.Called(ctx, itemID, quantity).Error(0)
}

func (m *mockCartStore) DeleteItem(ctx context.Context, itemID int64) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *mockCartStore) UpdateCartTotal(ctx context.Context, cartID int64, total float64) error {
	return m.Called(ctx, cartID, total).Error(0)
}

func (m *mockCartStore) DeleteCart(ctx context.Context, cartID int64) error {
	return m.Called(ctx, cartID).Error(0)
}

func (m *mockCartStore) FindItemsByCustomerAndSKUs(ctx context.Context, customerID string, skus []string) ([]models.CartItem, error) {
	args := m.Called(ctx, customerID, skus)
	items, _ := args.Get(0).([]models.CartItem)
	return items, args.Error(1)
}

type mockOrderStore struct{ mock.Mock }

func (m *mockOrderStore) Create(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *mockOrderStore) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *mockOrderStore) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockStockReserver struct{ mock.Mock }

func (m *mockStockReserver) ReserveStock(ctx context.Context, items []models.CheckoutItem) (bool, error) {
	args := m.Called(ctx, items)
	return args.Bool(0), args.Error(1)
}

type mockEventPublisher struct{ mock.Mock }

func (m *mockEventPublisher) PublishProductCreated(ctx context.Context, event models.ProductCreatedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockPaymentGateway struct{ mock.Mock }

func (m *mockPaymentGateway) CreateCheckoutSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error) {
	args := m.Called(ctx, req)
	session, _ := args.Get(0).(*payment.Session)
	return session, args.Error(1)
}

type mockPaymentProcessor struct{ mock.Mock }

func (m *mockPaymentProcessor) ProcessPayment(ctx context.Context, order *models.Order, total float64) *models.CheckoutResponse {
	args := m.Called(ctx, order, total)
	resp, _ := args.Get(0).(*models.CheckoutResponse)
	return resp
}

func (m *mockPaymentProcessor) ConfirmSessionCompleted(ctx context.Context, clientRef string) error {
	return m.Called(ctx, clientRef).Error(0)
}
