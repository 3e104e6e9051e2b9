package models

import "time"

// ProductCreatedEvent is published when a new product is persisted and
// triggers inventory provisioning in the inventory service.
type ProductCreatedEvent struct {
	ProductID       string    `json:"product_id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	Description     string    `json:"description"`
	Brand           string    `json:"brand"`
	CategoryName    string    `json:"category_name"`
	InitialQuantity int       `json:"initial_quantity"`
	Timestamp       time.Time `json:"timestamp"`
}
