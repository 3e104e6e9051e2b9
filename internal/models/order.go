package models

import "time"

// OrderStatus only ever advances forward:
// CREATED -> PENDING_PAYMENT -> PAID | PAYMENT_FAILED.
type OrderStatus string

const (
	OrderStatusCreated        OrderStatus = "CREATED"
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusPaid           OrderStatus = "PAID"
	OrderStatusPaymentFailed  OrderStatus = "PAYMENT_FAILED"
	OrderStatusFailed         OrderStatus = "FAILED"
)

type Order struct {
	ID          int64       `json:"id"`
	CustomerID  string      `json:"customer_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
}

// OrderItem is a snapshot of a cart item taken at checkout time. It does not
// follow later cart mutations.
type OrderItem struct {
	ID          int64   `json:"id"`
	OrderID     int64   `json:"order_id"`
	SKU         string  `json:"sku"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	SubTotal    float64 `json:"sub_total"`
}

type CheckoutRequest struct {
	CustomerID string         `json:"customer_id" binding:"required"`
	Items      []CheckoutItem `json:"items" binding:"required"`
}

type CheckoutItem struct {
	SKU         string  `json:"sku" binding:"required"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

type CheckoutResponse struct {
	OrderID *int64  `json:"order_id,omitempty"`
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Total   float64 `json:"total"`
}
