package models

import "time"

type Inventory struct {
	ID        int64     `json:"id"`
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateInventoryRequest struct {
	SKU      string `json:"sku" binding:"required,min=2,max=50"`
	Quantity int    `json:"quantity" binding:"gte=0"`
}

type UpdateInventoryRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}
