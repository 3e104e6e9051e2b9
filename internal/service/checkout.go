package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type checkoutService struct {
	carts    CartStore
	orders   OrderStore
	reserver StockReserver
	payments PaymentProcessor
	log      *zap.SugaredLogger
}

func NewCheckoutService(carts CartStore, orders OrderStore, reserver StockReserver, payments PaymentProcessor, log *zap.SugaredLogger) CheckoutService {
	return &checkoutService{carts: carts, orders: orders, reserver: reserver, payments: payments, log: log}
}

// Checkout turns a customer's cart into a persisted order plus a payment
// session. Validation failures return a FAILED response without writing
// anything; the order insert is the first write and happens before the
// payment call, so a gateway failure still leaves a PAYMENT_FAILED order.
func (s *checkoutService) Checkout(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return &models.CheckoutResponse{Status: "FAILED", Message: "Cart is empty"}, nil
	}

	cart, err := s.carts.GetCartByCustomerID(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up cart: %w", err)
	}
	if cart == nil {
		return &models.CheckoutResponse{
			Status:  "FAILED",
			Message: "Cart not found for customerId: " + req.CustomerID,
		}, nil
	}

	// Every requested SKU must be present in the customer's persisted cart;
	// any miss fails the whole checkout.
	skus := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		skus = append(skus, item.SKU)
	}
	cartItems, err := s.carts.FindItemsByCustomerAndSKUs(ctx, req.CustomerID, skus)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart items: %w", err)
	}
	inCart := make(map[string]bool, len(cartItems))
	for _, item := range cartItems {
		inCart[item.SKU] = true
	}
	var missing []string
	for _, sku := range skus {
		if !inCart[sku] {
			missing = append(missing, sku)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingCartItems, missing)
	}

	total := calculateTotal(req.Items)

	reserved, err := s.reserver.ReserveStock(ctx, req.Items)
	if err != nil || !reserved {
		if err != nil {
			s.log.Warnw("stock reservation failed", "customer_id", req.CustomerID, "error", err)
		}
		return &models.CheckoutResponse{
			Status:  "FAILED",
			Message: "Insufficient stock for one or more items",
			Total:   total,
		}, nil
	}

	order := buildOrder(req, total)
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	s.log.Infow("order created", "order_id", order.ID, "customer_id", req.CustomerID, "total", total)

	return s.payments.ProcessPayment(ctx, order, total), nil
}

// calculateTotal treats zero-valued price or quantity as zero contribution.
func calculateTotal(items []models.CheckoutItem) float64 {
	var total float64
	for _, item := range items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

func buildOrder(req models.CheckoutRequest, total float64) *models.Order {
	order := &models.Order{
		CustomerID:  req.CustomerID,
		TotalAmount: total,
		Status:      models.OrderStatusCreated,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			SKU:         item.SKU,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			SubTotal:    item.UnitPrice * float64(item.Quantity),
		})
	}
	return order
}
