package db

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tharindu-dev/cartify/internal/cache"
	"github.com/tharindu-dev/cartify/internal/models"
)

// CachedProductRepository is a read-through cache over ProductRepository.
// Catalog reads hit Redis first; every catalog write invalidates the keys
// it could have made stale.
type CachedProductRepository struct {
	repo  *ProductRepository
	cache *cache.RedisCache
	log   *zap.SugaredLogger
}

func NewCachedProductRepository(repo *ProductRepository, cache *cache.RedisCache, log *zap.SugaredLogger) *CachedProductRepository {
	return &CachedProductRepository{repo: repo, cache: cache, log: log}
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

func approvedProductsKey() string {
	return "products:approved"
}

func (r *CachedProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	cacheKey := productKey(id)

	var product models.Product
	err := r.cache.Get(ctx, cacheKey, &product)
	if err == nil {
		return &product, nil
	}
	if err != redis.Nil {
		r.log.Warnw("cache error", "key", cacheKey, "error", err)
	}

	p, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	if err := r.cache.Set(ctx, cacheKey, p); err != nil {
		r.log.Warnw("failed to cache product", "key", cacheKey, "error", err)
	}
	return p, nil
}

func (r *CachedProductRepository) ListApproved(ctx context.Context) ([]models.Product, error) {
	cacheKey := approvedProductsKey()

	var products []models.Product
	err := r.cache.Get(ctx, cacheKey, &products)
	if err == nil {
		return products, nil
	}

	products, err = r.repo.ListApproved(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, products); err != nil {
		r.log.Warnw("failed to cache approved products", "error", err)
	}
	return products, nil
}

func (r *CachedProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.repo.Create(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, approvedProductsKey())
	return nil
}

func (r *CachedProductRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.repo.Update(ctx, product); err != nil {
		return err
	}
	r.invalidate(ctx, productKey(product.ID), approvedProductsKey())
	return nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id int64) error {
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, productKey(id), approvedProductsKey())
	return nil
}

// Uncached passthroughs; these reads are admin/steward paths.

func (r *CachedProductRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	return r.repo.ExistsBySKU(ctx, sku)
}

func (r *CachedProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	return r.repo.ListAll(ctx)
}

func (r *CachedProductRepository) ListByStatus(ctx context.Context, status models.ProductStatus) ([]models.Product, error) {
	return r.repo.ListByStatus(ctx, status)
}

func (r *CachedProductRepository) ListApprovedByCategory(ctx context.Context, categoryName string) ([]models.Product, error) {
	return r.repo.ListApprovedByCategory(ctx, categoryName)
}

func (r *CachedProductRepository) Search(ctx context.Context, term string) ([]models.Product, error) {
	return r.repo.Search(ctx, term)
}

func (r *CachedProductRepository) invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := r.cache.Delete(ctx, key); err != nil {
			r.log.Warnw("failed to invalidate cache", "key", key, "error", err)
		}
	}
}
