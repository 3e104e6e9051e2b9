package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/tharindu-dev/cartify/internal/models"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(database *PostgresDB) *CartRepository {
	return &CartRepository{db: database.Conn}
}

func (r *CartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	query := `
		INSERT INTO carts (customer_id, total_amount)
		VALUES ($1, 0)
		RETURNING id, total_amount, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, cart.CustomerID).
		Scan(&cart.ID, &cart.TotalAmount, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert cart: %w", err)
	}
	return nil
}

func (r *CartRepository) GetCartByID(ctx context.Context, id int64) (*models.Cart, error) {
	query := `SELECT id, customer_id, total_amount, created_at, updated_at FROM carts WHERE id = $1`
	return r.getCart(ctx, query, id)
}

func (r *CartRepository) GetCartByCustomerID(ctx context.Context, customerID string) (*models.Cart, error) {
	query := `SELECT id, customer_id, total_amount, created_at, updated_at FROM carts WHERE customer_id = $1`
	return r.getCart(ctx, query, customerID)
}

func (r *CartRepository) getCart(ctx context.Context, query string, arg any) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&cart.ID, &cart.CustomerID, &cart.TotalAmount, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	items, err := r.loadItems(ctx, cart.ID)
	if err != nil {
		return nil, err
	}
	cart.Items = items
	cart.TotalItems = len(items)
	return &cart, nil
}

func (r *CartRepository) loadItems(ctx context.Context, cartID int64) ([]models.CartItem, error) {
	query := `
		SELECT id, cart_id, sku, product_name, unit_price, quantity, created_at, updated_at
		FROM cart_items WHERE cart_id = $1 ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		err := rows.Scan(&item.ID, &item.CartID, &item.SKU, &item.ProductName,
			&item.UnitPrice, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		item.SubTotal = item.UnitPrice * float64(item.Quantity)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CartRepository) ExistsByCustomerID(ctx context.Context, customerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM carts WHERE customer_id = $1)`, customerID).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check cart: %w", err)
	}
	return exists, nil
}

func (r *CartRepository) GetItem(ctx context.Context, cartID int64, sku string) (*models.CartItem, error) {
	query := `
		SELECT id, cart_id, sku, product_name, unit_price, quantity, created_at, updated_at
		FROM cart_items WHERE cart_id = $1 AND sku = $2
	`
	var item models.CartItem
	err := r.db.QueryRowContext(ctx, query, cartID, sku).
		Scan(&item.ID, &item.CartID, &item.SKU, &item.ProductName,
			&item.UnitPrice, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	item.SubTotal = item.UnitPrice * float64(item.Quantity)
	return &item, nil
}

func (r *CartRepository) InsertItem(ctx context.Context, item *models.CartItem) error {
	query := `
		INSERT INTO cart_items (cart_id, sku, product_name, unit_price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		item.CartID, item.SKU, item.ProductName, item.UnitPrice, item.Quantity,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	return nil
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) error {
	query := `UPDATE cart_items SET quantity = $1, updated_at = now() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, quantity, itemID)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("cart item not found")
	}
	return nil
}

func (r *CartRepository) DeleteItem(ctx context.Context, itemID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("cart item not found")
	}
	return nil
}

func (r *CartRepository) UpdateCartTotal(ctx context.Context, cartID int64, total float64) error {
	query := `UPDATE carts SET total_amount = $1, updated_at = now() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, total, cartID)
	if err != nil {
		return fmt.Errorf("failed to update cart total: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("cart not found")
	}
	return nil
}

func (r *CartRepository) DeleteCart(ctx context.Context, cartID int64) error {
	// cart_items rows go with the cart via ON DELETE CASCADE
	result, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE id = $1`, cartID)
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("cart not found")
	}
	return nil
}

func (r *CartRepository) FindItemsByCustomerAndSKUs(ctx context.Context, customerID string, skus []string) ([]models.CartItem, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.sku, ci.product_name, ci.unit_price, ci.quantity, ci.created_at, ci.updated_at
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		WHERE c.customer_id = $1 AND ci.sku = ANY($2)
	`
	rows, err := r.db.QueryContext(ctx, query, customerID, pq.Array(skus))
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		err := rows.Scan(&item.ID, &item.CartID, &item.SKU, &item.ProductName,
			&item.UnitPrice, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		item.SubTotal = item.UnitPrice * float64(item.Quantity)
		items = append(items, item)
	}
	return items, rows.Err()
}
