package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tharindu-dev/cartify/internal/models"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(database *PostgresDB) *ProductRepository {
	return &ProductRepository{db: database.Conn}
}

const productColumns = `
	p.id, p.name, p.description, p.price, p.brand, p.image_url, p.sku,
	p.stock_quantity, p.category_id, c.name, p.status, p.created_at, p.updated_at
`

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Brand, &p.ImageURL, &p.SKU,
		&p.StockQuantity, &p.CategoryID, &p.CategoryName, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, brand, image_url, sku, stock_quantity, category_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Price, product.Brand, product.ImageURL,
		product.SKU, product.StockQuantity, product.CategoryID, product.Status,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p JOIN categories c ON c.id = p.category_id WHERE p.id = $1`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return p, nil
}

func (r *ProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check SKU: %w", err)
	}
	return exists, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, brand = $4, image_url = $5,
		    sku = $6, stock_quantity = $7, category_id = $8, status = $9, updated_at = now()
		WHERE id = $10
	`
	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.Brand, product.ImageURL,
		product.SKU, product.StockQuantity, product.CategoryID, product.Status, product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

func (r *ProductRepository) ListApproved(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p JOIN categories c ON c.id = p.category_id
		WHERE p.status = 'APPROVED' ORDER BY p.id`
	return r.queryProducts(ctx, query)
}

func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p JOIN categories c ON c.id = p.category_id ORDER BY p.id`
	return r.queryProducts(ctx, query)
}

func (r *ProductRepository) ListByStatus(ctx context.Context, status models.ProductStatus) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p JOIN categories c ON c.id = p.category_id
		WHERE p.status = $1 ORDER BY p.id`
	return r.queryProducts(ctx, query, status)
}

func (r *ProductRepository) ListApprovedByCategory(ctx context.Context, categoryName string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p JOIN categories c ON c.id = p.category_id
		WHERE p.status = 'APPROVED' AND c.name = $1 ORDER BY p.id`
	return r.queryProducts(ctx, query, categoryName)
}

func (r *ProductRepository) Search(ctx context.Context, term string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p JOIN categories c ON c.id = p.category_id
		WHERE p.status = 'APPROVED'
		  AND (p.name ILIKE '%' || $1 || '%'
		    OR p.description ILIKE '%' || $1 || '%'
		    OR p.brand ILIKE '%' || $1 || '%'
		    OR p.sku ILIKE '%' || $1 || '%')
		ORDER BY p.id`
	return r.queryProducts(ctx, query, term)
}

func (r *ProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}
