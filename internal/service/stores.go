package service

import (
	"context"

	"github.com/tharindu-dev/cartify/internal/models"
)

// Store interfaces implemented by internal/db. Repositories return
// (nil, nil) when a row does not exist; services convert that to the
// sentinel errors in errors.go.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
	CountProducts(ctx context.Context, id int64) (int, error)
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
	ListApproved(ctx context.Context) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	ListByStatus(ctx context.Context, status models.ProductStatus) ([]models.Product, error)
	ListApprovedByCategory(ctx context.Context, categoryName string) ([]models.Product, error)
	Search(ctx context.Context, term string) ([]models.Product, error)
}

type InventoryStore interface {
	Create(ctx context.Context, inv *models.Inventory) error
	GetBySKU(ctx context.Context, sku string) (*models.Inventory, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	UpdateQuantity(ctx context.Context, sku string, quantity int) (*models.Inventory, error)
	List(ctx context.Context) ([]models.Inventory, error)
}

type CartStore interface {
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByID(ctx context.Context, id int64) (*models.Cart, error)
	GetCartByCustomerID(ctx context.Context, customerID string) (*models.Cart, error)
	ExistsByCustomerID(ctx context.Context, customerID string) (bool, error)
	GetItem(ctx context.Context, cartID int64, sku string) (*models.CartItem, error)
	InsertItem(ctx context.Context, item *models.CartItem) error
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error
	DeleteItem(ctx context.Context, itemID int64) error
	UpdateCartTotal(ctx context.Context, cartID int64, total float64) error
	DeleteCart(ctx context.Context, cartID int64) error
	FindItemsByCustomerAndSKUs(ctx context.Context, customerID string, skus []string) ([]models.CartItem, error)
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error
}

// StockReserver asks the inventory service to hold stock for the requested
// items before an order is persisted.
type StockReserver interface {
	ReserveStock(ctx context.Context, items []models.CheckoutItem) (bool, error)
}

// ProductEventPublisher pushes product-created events onto the broker.
type ProductEventPublisher interface {
	PublishProductCreated(ctx context.Context, event models.ProductCreatedEvent) error
}
