package models

import (
	"strings"
	"time"
)

// ProductStatus tracks the moderation state of a catalog entry. New products
// always start as PENDING; a review moves them to a terminal state.
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "PENDING"
	ProductStatusApproved ProductStatus = "APPROVED"
	ProductStatusRejected ProductStatus = "REJECTED"
)

// ParseProductStatus accepts a status in any casing.
func ParseProductStatus(s string) (ProductStatus, bool) {
	switch ProductStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ProductStatusPending:
		return ProductStatusPending, true
	case ProductStatusApproved:
		return ProductStatusApproved, true
	case ProductStatusRejected:
		return ProductStatusRejected, true
	}
	return "", false
}

type Product struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Price         float64       `json:"price"`
	Brand         string        `json:"brand"`
	ImageURL      string        `json:"image_url,omitempty"`
	SKU           string        `json:"sku"`
	StockQuantity int           `json:"stock_quantity"`
	CategoryID    int64         `json:"category_id"`
	CategoryName  string        `json:"category_name"`
	Status        ProductStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Brand         string  `json:"brand"`
	ImageURL      string  `json:"image_url"`
	SKU           string  `json:"sku" binding:"required,min=2,max=50"`
	StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
	CategoryName  string  `json:"category_name" binding:"required"`
}

type ReviewProductRequest struct {
	ProductID     int64  `json:"product_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
	ReviewComment string `json:"review_comment"`
	ReviewedBy    string `json:"reviewed_by"`
}
