package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
	"github.com/tharindu-dev/cartify/internal/payment"
)

// PaymentProcessor maps a payment-session attempt onto an order's status.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, order *models.Order, total float64) *models.CheckoutResponse
	ConfirmSessionCompleted(ctx context.Context, clientRef string) error
}

type paymentService struct {
	orders  OrderStore
	gateway payment.Gateway
	log     *zap.SugaredLogger
}

func NewPaymentService(orders OrderStore, gateway payment.Gateway, log *zap.SugaredLogger) PaymentProcessor {
	return &paymentService{orders: orders, gateway: gateway, log: log}
}

// ProcessPayment opens a payment session for the order total, keyed by the
// order ID as the gateway correlation token. Session success moves the order
// to PENDING_PAYMENT; any gateway failure moves it to PAYMENT_FAILED. The
// order row exists either way.
func (s *paymentService) ProcessPayment(ctx context.Context, order *models.Order, total float64) *models.CheckoutResponse {
	req := payment.SessionRequest{
		Name: fmt.Sprintf("Order-%d", order.ID),
		// Gateway expects the amount in the smallest currency unit.
		AmountCents:       int64(total * 100),
		Quantity:          1,
		Currency:          "usd",
		ClientReferenceID: strconv.FormatInt(order.ID, 10),
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.log.Warnw("payment session creation failed", "order_id", order.ID, "error", err)
		if uerr := s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusPaymentFailed); uerr != nil {
			s.log.Errorw("failed to persist PAYMENT_FAILED status", "order_id", order.ID, "error", uerr)
		}
		order.Status = models.OrderStatusPaymentFailed
		return &models.CheckoutResponse{
			OrderID: &order.ID,
			Status:  "FAILED",
			Message: "Payment failed: " + err.Error(),
			Total:   total,
		}
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, models.OrderStatusPendingPayment); err != nil {
		s.log.Errorw("failed to persist PENDING_PAYMENT status", "order_id", order.ID, "error", err)
	}
	order.Status = models.OrderStatusPendingPayment

	s.log.Infow("payment session opened", "order_id", order.ID, "session_id", session.ID)
	return &models.CheckoutResponse{
		OrderID: &order.ID,
		Status:  string(models.OrderStatusPendingPayment),
		Message: "Payment session created: " + session.URL,
		Total:   total,
	}
}

// ConfirmSessionCompleted marks the order referenced by a completed payment
// session as PAID.
func (s *paymentService) ConfirmSessionCompleted(ctx context.Context, clientRef string) error {
	orderID, err := strconv.ParseInt(clientRef, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidOrderRef, clientRef)
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return fmt.Errorf("%w: ID %d", ErrOrderNotFound, orderID)
	}

	previous := order.Status
	if err := s.orders.UpdateStatus(ctx, orderID, models.OrderStatusPaid); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	s.log.Infow("order paid", "order_id", orderID, "previous_status", previous)
	return nil
}
