package models

import "time"

// Cart is a customer's pre-checkout collection of intended purchases. There
// is at most one cart per customer and TotalAmount is recomputed from the
// item subtotals on every mutation.
type Cart struct {
	ID          int64      `json:"cart_id"`
	CustomerID  string     `json:"customer_id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	TotalItems  int        `json:"total_items"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID          int64     `json:"item_id"`
	CartID      int64     `json:"-"`
	SKU         string    `json:"sku"`
	ProductName string    `json:"product_name"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	SubTotal    float64   `json:"sub_total"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateCartRequest struct {
	CustomerID string `json:"customer_id" binding:"required,min=1,max=50"`
}

type AddCartItemRequest struct {
	SKU         string  `json:"sku" binding:"required,min=2,max=50"`
	ProductName string  `json:"product_name" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
}
