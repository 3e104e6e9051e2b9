package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/payment"
)

func newCheckoutService(carts *mockCartStore, orders *mockOrderStore, reserver *mockStockReserver, payments *mockPaymentProcessor) CheckoutService {
	return NewCheckoutService(carts, orders, reserver, payments, zap.NewNop().Sugar())
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc := newCheckoutService(&mockCartStore{}, &mockOrderStore{}, &mockStockReserver{}, &mockPaymentProcessor{})

	resp, err := svc.Checkout(context.Background(), models.CheckoutRequest{CustomerID: "c1"})

	require.NoError(t, err)
	assert.Equal(t, "FAILED", resp.Status)
	assert.Equal(t, "Cart is empty", resp.Message)
	assert.Nil(t, resp.OrderID)
}

func TestCheckoutCartNotFound(t *testing.T) {
	carts := &mockCartStore{}
	carts.On("GetCartByCustomerID", mock.Anything, "c1").Return(nil, nil)

	svc := newCheckoutService(carts, &mockOrderStore{}, &mockStockReserver{}, &mockPaymentProcessor{})
	resp, err := svc.Checkout(context.Background(), models.CheckoutRequest{
		CustomerID: "c1",
		Items:      []models.CheckoutItem{{SKU: "A1", UnitPrice: 10, Quantity: 1}},
	})

	require.NoError(t, err)
	assert.Equal(t, "FAILED", resp.Status)
	assert.Equal(t, "Cart not found for customerId: c1", resp.Message)
}

func TestCheckoutMissingCartItems(t *testing.T) {
	carts := &mockCartStore{}
	carts.On("GetCartByCustomerID", mock.Anything, "c1").Return(&models.Cart{ID: 1, CustomerID: "c1"}, nil)
	carts.On("FindItemsByCustomerAndSKUs", mock.Anything, "c1", []string{"A1", "B2"}).
		Return([]models.CartItem{{SKU: "A1"}}, nil)

	orders := &mockOrderStore{}
	svc := newCheckoutService(carts, orders, &mockStockReserver{}, &mockPaymentProcessor{})

	_, err := svc.Checkout(context.Background(), models.CheckoutRequest{
		CustomerID: "c1",
		Items: []models.CheckoutItem{
			{SKU: "A1", UnitPrice: 10, Quantity: 1},
			{SKU: "B2", UnitPrice: 5, Quantity: 2},
		},
	})

	require.ErrorIs(t, err, ErrMissingCartItems)
	assert.Contains(t, err.Error(), "B2")
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	carts := &mockCartStore{}
	carts.On("GetCartByCustomerID", mock.Anything, "c1").Return(&models.Cart{ID: 1, CustomerID: "c1"}, nil)
	carts.On("FindItemsByCustomerAndSKUs", mock.Anything, "c1", []string{"A1"}).
		Return([]models.CartItem{{SKU: "A1"}}, nil)

	reserver := &mockStockReserver{}
	reserver.On("ReserveStock", mock.Anything, mock.Anything).Return(false, nil)

	orders := &mockOrderStore{}
	svc := newCheckoutService(carts, orders, reserver, &mockPaymentProcessor{})

	resp, err := svc.Checkout(context.Background(), models.CheckoutRequest{
		CustomerID: "c1",
		Items:      []models.CheckoutItem{{SKU: "A1", UnitPrice: 10, Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, "FAILED", resp.Status)
	assert.Equal(t, "Insufficient stock for one or more items", resp.Message)
	assert.Equal(t, 20.0, resp.Total)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckoutHappyPath(t *testing.T) {
	carts := &mockCartStore{}
	carts.On("GetCartByCustomerID", mock.Anything, "c1").Return(&models.Cart{ID: 1, CustomerID: "c1"}, nil)
	carts.On("FindItemsByCustomerAndSKUs", mock.Anything, "c1", []string{"A1"}).
		Return([]models.CartItem{{SKU: "A1"}}, nil)

	reserver := &mockStockReserver{}
	reserver.On("ReserveStock", mock.Anything, mock.Anything).Return(true, nil)

	orders := &mockOrderStore{}
	orders.On("Create", mock.Anything, mock.MatchedBy(func(order *models.Order) bool {
		return order.CustomerID == "c1" &&
			order.Status == models.OrderStatusCreated &&
			order.TotalAmount == 20.0 &&
			len(order.Items) == 1 &&
			order.Items[0].SubTotal == 20.0
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Order).ID = 42
	}).Return(nil)

	orderID := int64(42)
	payments := &mockPaymentProcessor{}
	payments.On("ProcessPayment", mock.Anything, mock.Anything, 20.0).Return(&models.CheckoutResponse{
		OrderID: &orderID,
		Status:  string(models.OrderStatusPendingPayment),
		Message: "Payment session created: https://pay.example/s1",
		Total:   20.0,
	})

	svc := newCheckoutService(carts, orders, reserver, payments)
	resp, err := svc.Checkout(context.Background(), models.CheckoutRequest{
		CustomerID: "c1",
		Items:      []models.CheckoutItem{{SKU: "A1", ProductName: "Widget", UnitPrice: 10, Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, string(models.OrderStatusPendingPayment), resp.Status)
	require.NotNil(t, resp.OrderID)
	assert.Equal(t, int64(42), *resp.OrderID)
	orders.AssertExpectations(t)
	payments.AssertExpectations(t)
}

func TestProcessPaymentGatewayFailure(t *testing.T) {
	orders := &mockOrderStore{}
	orders.On("UpdateStatus", mock.Anything, int64(7), models.OrderStatusPaymentFailed).Return(nil)

	gateway := &mockPaymentGateway{}
	gateway.On("CreateCheckoutSession", mock.Anything, mock.Anything).
		Return(nil, errors.New("card network unreachable"))

	svc := NewPaymentService(orders, gateway, zap.NewNop().Sugar())
	order := &models.Order{ID: 7, CustomerID: "c1", Status: models.OrderStatusCreated}

	resp := svc.ProcessPayment(context.Background(), order, 15.5)

	assert.Equal(t, "FAILED", resp.Status)
	assert.Contains(t, resp.Message, "Payment failed")
	assert.Equal(t, models.OrderStatusPaymentFailed, order.Status)
	orders.AssertExpectations(t)
}

func TestProcessPaymentSuccess(t *testing.T) {
	orders := &mockOrderStore{}
	orders.On("UpdateStatus", mock.Anything, int64(7), models.OrderStatusPendingPayment).Return(nil)

	gateway := &mockPaymentGateway{}
	gateway.On("CreateCheckoutSession", mock.Anything, mock.MatchedBy(func(req payment.SessionRequest) bool {
		return req.AmountCents == 1550 && req.ClientReferenceID == "7"
	})).Return(&payment.Session{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil)

	svc := NewPaymentService(orders, gateway, zap.NewNop().Sugar())
	order := &models.Order{ID: 7, CustomerID: "c1", Status: models.OrderStatusCreated}

	resp := svc.ProcessPayment(context.Background(), order, 15.5)

	assert.Equal(t, string(models.OrderStatusPendingPayment), resp.Status)
	assert.Contains(t, resp.Message, "https://pay.example/cs_1")
	orders.AssertExpectations(t)
}

func TestConfirmSessionCompleted(t *testing.T) {
	orders := &mockOrderStore{}
	orders.On("GetByID", mock.Anything, int64(9)).
		Return(&models.Order{ID: 9, Status: models.OrderStatusPendingPayment}, nil)
	orders.On("UpdateStatus", mock.Anything, int64(9), models.OrderStatusPaid).Return(nil)

	svc := NewPaymentService(orders, &mockPaymentGateway{}, zap.NewNop().Sugar())

	require.NoError(t, svc.ConfirmSessionCompleted(context.Background(), "9"))
	orders.AssertExpectations(t)
}

func TestConfirmSessionCompletedBadReference(t *testing.T) {
	svc := NewPaymentService(&mockOrderStore{}, &mockPaymentGateway{}, zap.NewNop().Sugar())

	err := svc.ConfirmSessionCompleted(context.Background(), "not-a-number")
	require.ErrorIs(t, err, ErrInvalidOrderRef)
}

func TestConfirmSessionCompletedOrderNotFound(t *testing.T) {
	orders := &mockOrderStore{}
	orders.On("GetByID", mock.Anything, int64(404)).Return(nil, nil)

	svc := NewPaymentService(orders, &mockPaymentGateway{}, zap.NewNop().Sugar())

	err := svc.ConfirmSessionCompleted(context.Background(), "404")
	require.ErrorIs(t, err, ErrOrderNotFound)
}
