package service

import "errors"

// Sentinel errors translated to HTTP statuses at the handler boundary.
var (
	ErrUserExists         = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category has products assigned and cannot be deleted")

	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("product with this SKU already exists")
	ErrProductReviewed = errors.New("product has already been reviewed")
	ErrInvalidStatus   = errors.New("invalid product status")
	ErrInvalidInput    = errors.New("invalid input")

	ErrInventoryExists   = errors.New("inventory already exists for SKU")
	ErrInventoryNotFound = errors.New("inventory not found for SKU")

	ErrCartExists   = errors.New("cart already exists for customer")
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")

	ErrOrderNotFound    = errors.New("order not found")
	ErrMissingCartItems = errors.New("missing cart items")
	ErrInvalidOrderRef  = errors.New("invalid order reference")
)
