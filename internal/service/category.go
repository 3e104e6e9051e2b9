package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/models"
)

type CategoryService interface {
	Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, id int64, req models.CreateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryService struct {
	categories CategoryStore
	log        *zap.SugaredLogger
}

func NewCategoryService(categories CategoryStore, log *zap.SugaredLogger) CategoryService {
	return &categoryService{categories: categories, log: log}
}

func (s *categoryService) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	exists, err := s.categories.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrCategoryExists, req.Name)
	}

	category := &models.Category{Name: req.Name, Description: req.Description}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	s.log.Infow("category created", "id", category.ID, "name", category.Name)
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	return s.mustGet(ctx, id)
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) Update(ctx context.Context, id int64, req models.CreateCategoryRequest) (*models.Category, error) {
	category, err := s.mustGet(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != category.Name {
		exists, err := s.categories.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check category name: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrCategoryExists, req.Name)
		}
	}

	category.Name = req.Name
	category.Description = req.Description
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// Delete removes a category unless products still reference it.
func (s *categoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.mustGet(ctx, id); err != nil {
		return err
	}

	count, err := s.categories.CountProducts(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count category products: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d products assigned", ErrCategoryInUse, count)
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.log.Infow("category deleted", "id", id)
	return nil
}

func (s *categoryService) mustGet(ctx context.Context, id int64) (*models.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: ID %d", ErrCategoryNotFound, id)
	}
	return category, nil
}
