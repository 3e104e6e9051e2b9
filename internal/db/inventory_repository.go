package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tharindu-dev/cartify/internal/models"
)

type InventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(database *PostgresDB) *InventoryRepository {
	return &InventoryRepository{db: database.Conn}
}

func (r *InventoryRepository) Create(ctx context.Context, inv *models.Inventory) error {
	query := `
		INSERT INTO inventory (sku, quantity)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, inv.SKU, inv.Quantity).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inventory: %w", err)
	}
	return nil
}

func (r *InventoryRepository) GetBySKU(ctx context.Context, sku string) (*models.Inventory, error) {
	query := `SELECT id, sku, quantity, created_at, updated_at FROM inventory WHERE sku = $1`

	var inv models.Inventory
	err := r.db.QueryRowContext(ctx, query, sku).
		Scan(&inv.ID, &inv.SKU, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return &inv, nil
}

func (r *InventoryRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM inventory WHERE sku = $1)`, sku).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check inventory: %w", err)
	}
	return exists, nil
}

func (r *InventoryRepository) UpdateQuantity(ctx context.Context, sku string, quantity int) (*models.Inventory, error) {
	query := `
		UPDATE inventory SET quantity = $1, updated_at = now()
		WHERE sku = $2
		RETURNING id, sku, quantity, created_at, updated_at
	`
	var inv models.Inventory
	err := r.db.QueryRowContext(ctx, query, quantity, sku).
		Scan(&inv.ID, &inv.SKU, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}
	return &inv, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]models.Inventory, error) {
	query := `SELECT id, sku, quantity, created_at, updated_at FROM inventory ORDER BY sku`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory: %w", err)
	}
	defer rows.Close()

	var inventories []models.Inventory
	for rows.Next() {
		var inv models.Inventory
		if err := rows.Scan(&inv.ID, &inv.SKU, &inv.Quantity, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		inventories = append(inventories, inv)
	}
	return inventories, rows.Err()
}
