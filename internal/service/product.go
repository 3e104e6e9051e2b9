package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
)

type ProductService interface {
	Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	Update(ctx context.Context, id int64, req models.CreateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	ListApproved(ctx context.Context) ([]models.Product, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	ListByStatus(ctx context.Context, status string) ([]models.Product, error)
	ListApprovedByCategory(ctx context.Context, categoryName string) ([]models.Product, error)
	Search(ctx context.Context, term string) ([]models.Product, error)
	Review(ctx context.Context, req models.ReviewProductRequest) (*models.Product, error)
}

type productService struct {
	products   ProductStore
	categories CategoryStore
	events     ProductEventPublisher
	log        *zap.SugaredLogger
}

func NewProductService(products ProductStore, categories CategoryStore, events ProductEventPublisher, log *zap.SugaredLogger) ProductService {
	return &productService{products: products, categories: categories, events: events, log: log}
}

// Create persists a new PENDING product and publishes a product-created
// event. Publishing is best-effort: a broker failure leaves the product in
// place and inventory provisioning falls back to manual reconciliation.
func (s *productService) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	exists, err := s.products.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, fmt.Errorf("failed to check SKU: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, req.SKU)
	}

	category, err := s.categories.GetByName(ctx, strings.TrimSpace(req.CategoryName))
	if err != nil {
		return nil, fmt.Errorf("failed to look up category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, req.CategoryName)
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Brand:         req.Brand,
		ImageURL:      req.ImageURL,
		SKU:           req.SKU,
		StockQuantity: req.StockQuantity,
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		Status:        models.ProductStatusPending,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.log.Infow("product created", "id", product.ID, "sku", product.SKU)

	event := models.ProductCreatedEvent{
		ProductID:       strconv.FormatInt(product.ID, 10),
		SKU:             product.SKU,
		Name:            product.Name,
		Price:           product.Price,
		Description:     product.Description,
		Brand:           product.Brand,
		CategoryName:    product.CategoryName,
		InitialQuantity: product.StockQuantity,
		Timestamp:       time.Now(),
	}
	if err := s.events.PublishProductCreated(ctx, event); err != nil {
		// Product creation and inventory provisioning are not atomic;
		// a lost event is reconciled manually.
		s.log.Errorw("failed to publish product created event", "sku", product.SKU, "error", err)
	}

	return product, nil
}

func (s *productService) Update(ctx context.Context, id int64, req models.CreateProductRequest) (*models.Product, error) {
	product, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.Status != models.ProductStatusPending {
		return nil, fmt.Errorf("%w (status: %s)", ErrProductReviewed, product.Status)
	}

	if req.SKU != product.SKU {
		exists, err := s.products.ExistsBySKU(ctx, req.SKU)
		if err != nil {
			return nil, fmt.Errorf("failed to check SKU: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSKU, req.SKU)
		}
	}

	if name := strings.TrimSpace(req.CategoryName); name != "" && name != product.CategoryName {
		category, err := s.categories.GetByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up category: %w", err)
		}
		if category == nil {
			return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, name)
		}
		product.CategoryID = category.ID
		product.CategoryName = category.Name
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Brand = req.Brand
	product.ImageURL = req.ImageURL
	product.SKU = req.SKU
	product.StockQuantity = req.StockQuantity

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	s.log.Infow("product updated", "id", product.ID, "sku", product.SKU)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	product, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}
	if product.Status != models.ProductStatusPending {
		return fmt.Errorf("%w (status: %s)", ErrProductReviewed, product.Status)
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.log.Infow("product deleted", "id", id)
	return nil
}

func (s *productService) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: product ID must be a positive number", ErrInvalidInput)
	}
	return s.mustGet(ctx, id)
}

func (s *productService) ListApproved(ctx context.Context) ([]models.Product, error) {
	return s.products.ListApproved(ctx)
}

func (s *productService) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.products.ListAll(ctx)
}

func (s *productService) ListByStatus(ctx context.Context, status string) ([]models.Product, error) {
	parsed, ok := models.ParseProductStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	return s.products.ListByStatus(ctx, parsed)
}

func (s *productService) ListApprovedByCategory(ctx context.Context, categoryName string) ([]models.Product, error) {
	if strings.TrimSpace(categoryName) == "" {
		return nil, fmt.Errorf("%w: category name cannot be empty", ErrInvalidInput)
	}
	return s.products.ListApprovedByCategory(ctx, categoryName)
}

func (s *productService) Search(ctx context.Context, term string) ([]models.Product, error) {
	term = strings.TrimSpace(term)
	if len(term) < 2 {
		return nil, fmt.Errorf("%w: search value must be at least 2 characters long", ErrInvalidInput)
	}
	return s.products.Search(ctx, term)
}

// Review moves a PENDING product to APPROVED or REJECTED. Both outcomes are
// terminal; there is no path back to PENDING.
func (s *productService) Review(ctx context.Context, req models.ReviewProductRequest) (*models.Product, error) {
	product, err := s.mustGet(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	status, ok := models.ParseProductStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: %s (valid statuses are APPROVED, REJECTED)", ErrInvalidStatus, req.Status)
	}
	if status == models.ProductStatusPending {
		return nil, fmt.Errorf("%w: cannot review product back to PENDING", ErrInvalidStatus)
	}
	if product.Status != models.ProductStatusPending {
		return nil, fmt.Errorf("%w (status: %s)", ErrProductReviewed, product.Status)
	}

	product.Status = status
	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product status: %w", err)
	}

	s.log.Infow("product reviewed",
		"id", product.ID, "status", product.Status,
		"reviewed_by", req.ReviewedBy, "comment", req.ReviewComment)
	return product, nil
}

func (s *productService) mustGet(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: ID %d", ErrProductNotFound, id)
	}
	return product, nil
}
