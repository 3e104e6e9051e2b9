package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tharindu-dev/cartify/internal/models"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(database *PostgresDB) *OrderRepository {
	return &OrderRepository{db: database.Conn}
}

// Create inserts an order together with its line-item snapshots in one
// transaction.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	orderQuery := `
		INSERT INTO orders (customer_id, total_amount, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, orderQuery, order.CustomerID, order.TotalAmount, order.Status).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, sku, product_name, unit_price, quantity, sub_total)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		err = tx.QueryRowContext(ctx, itemQuery,
			order.ID,
			order.Items[i].SKU,
			order.Items[i].ProductName,
			order.Items[i].UnitPrice,
			order.Items[i].Quantity,
			order.Items[i].SubTotal,
		).Scan(&order.Items[i].ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	orderQuery := `SELECT id, customer_id, total_amount, status, created_at FROM orders WHERE id = $1`

	var order models.Order
	err := r.db.QueryRowContext(ctx, orderQuery, id).
		Scan(&order.ID, &order.CustomerID, &order.TotalAmount, &order.Status, &order.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	itemsQuery := `
		SELECT id, order_id, sku, product_name, unit_price, quantity, sub_total
		FROM order_items WHERE order_id = $1 ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, itemsQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.SKU, &item.ProductName,
			&item.UnitPrice, &item.Quantity, &item.SubTotal)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("order not found")
	}
	return nil
}
