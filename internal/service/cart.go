package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
)

type CartService interface {
	CreateCart(ctx context.Context, req models.CreateCartRequest) (*models.Cart, error)
	AddItem(ctx context.Context, cartID int64, req models.AddCartItemRequest) (*models.Cart, error)
	GetCart(ctx context.Context, cartID int64) (*models.Cart, error)
	GetCartByCustomer(ctx context.Context, customerID string) (*models.Cart, error)
	RemoveItem(ctx context.Context, cartID int64, sku string) error
	RemoveCart(ctx context.Context, cartID int64) error
}

type cartService struct {
	carts CartStore
	log   *zap.SugaredLogger
}

func NewCartService(carts CartStore, log *zap.SugaredLogger) CartService {
	return &cartService{carts: carts, log: log}
}

func (s *cartService) CreateCart(ctx context.Context, req models.CreateCartRequest) (*models.Cart, error) {
	exists, err := s.carts.ExistsByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check cart: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrCartExists, req.CustomerID)
	}

	cart := &models.Cart{CustomerID: req.CustomerID, Items: []models.CartItem{}}
	if err := s.carts.CreateCart(ctx, cart); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	s.log.Infow("cart created", "cart_id", cart.ID, "customer_id", cart.CustomerID)
	return cart, nil
}

// AddItem merges by SKU: adding an item that is already in the cart bumps
// its quantity instead of inserting a duplicate row.
func (s *cartService) AddItem(ctx context.Context, cartID int64, req models.AddCartItemRequest) (*models.Cart, error) {
	cart, err := s.mustGet(ctx, cartID)
	if err != nil {
		return nil, err
	}

	existing, err := s.carts.GetItem(ctx, cartID, req.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cart item: %w", err)
	}

	if existing != nil {
		if err := s.carts.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+req.Quantity); err != nil {
			return nil, fmt.Errorf("failed to update item quantity: %w", err)
		}
	} else {
		item := &models.CartItem{
			CartID:      cartID,
			SKU:         req.SKU,
			ProductName: req.ProductName,
			UnitPrice:   req.UnitPrice,
			Quantity:    req.Quantity,
		}
		if err := s.carts.InsertItem(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to insert cart item: %w", err)
		}
	}

	if err := s.recalculateTotal(ctx, cart); err != nil {
		return nil, err
	}
	s.log.Infow("item added to cart", "cart_id", cartID, "sku", req.SKU)
	return s.mustGet(ctx, cartID)
}

func (s *cartService) GetCart(ctx context.Context, cartID int64) (*models.Cart, error) {
	return s.mustGet(ctx, cartID)
}

func (s *cartService) GetCartByCustomer(ctx context.Context, customerID string) (*models.Cart, error) {
	cart, err := s.carts.GetCartByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return nil, fmt.Errorf("%w for customer: %s", ErrCartNotFound, customerID)
	}
	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, cartID int64, sku string) error {
	cart, err := s.mustGet(ctx, cartID)
	if err != nil {
		return err
	}

	item, err := s.carts.GetItem(ctx, cartID, sku)
	if err != nil {
		return fmt.Errorf("failed to look up cart item: %w", err)
	}
	if item == nil {
		return fmt.Errorf("%w - SKU: %s", ErrItemNotFound, sku)
	}

	if err := s.carts.DeleteItem(ctx, item.ID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if err := s.recalculateTotal(ctx, cart); err != nil {
		return err
	}
	s.log.Infow("item removed from cart", "cart_id", cartID, "sku", sku)
	return nil
}

func (s *cartService) RemoveCart(ctx context.Context, cartID int64) error {
	if _, err := s.mustGet(ctx, cartID); err != nil {
		return err
	}
	if err := s.carts.DeleteCart(ctx, cartID); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	s.log.Infow("cart removed", "cart_id", cartID)
	return nil
}

// recalculateTotal keeps the invariant that a cart's total always equals the
// sum of its item subtotals.
func (s *cartService) recalculateTotal(ctx context.Context, cart *models.Cart) error {
	fresh, err := s.carts.GetCartByID(ctx, cart.ID)
	if err != nil {
		return fmt.Errorf("failed to reload cart: %w", err)
	}
	if fresh == nil {
		return fmt.Errorf("%w: ID %d", ErrCartNotFound, cart.ID)
	}

	var total float64
	for _, item := range fresh.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	if err := s.carts.UpdateCartTotal(ctx, cart.ID, total); err != nil {
		return fmt.Errorf("failed to update cart total: %w", err)
	}
	return nil
}

func (s *cartService) mustGet(ctx context.Context, cartID int64) (*models.Cart, error) {
	cart, err := s.carts.GetCartByID(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart == nil {
		return nil, fmt.Errorf("%w with ID: %d", ErrCartNotFound, cartID)
	}
	return cart, nil
}
