package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/pkg/logger"
)

// CachedProductRepository wraps a ProductRepository with a Redis read-through
// cache on single-product lookups. Mutations invalidate the cached entry
// before hitting the inner repository, so a failed invalidation never leaves
// a stale document behind a successful write.
type CachedProductRepository struct {
	inner domain.ProductRepository
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedProductRepository(inner domain.ProductRepository, rdb *redis.Client, ttl time.Duration) *CachedProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedProductRepository{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(sku string) string {
	return "catalog:product:" + sku
}

func (r *CachedProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	key := cacheKey(sku)
	if cached, err := r.rdb.Get(ctx, key).Bytes(); err == nil {
		var product domain.Product
		if err := json.Unmarshal(cached, &product); err == nil {
			logger.WithContext(ctx).Debug().Str("sku", sku).Msg("Product cache hit")
			return &product, nil
		}
	}

	product, err := r.inner.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(product); err == nil {
		if err := r.rdb.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
			logger.WithContext(ctx).Warn().Err(err).Str("sku", sku).Msg("Failed to cache product")
		}
	}
	return product, nil
}

func (r *CachedProductRepository) Create(ctx context.Context, product *domain.Product) error {
	r.invalidate(ctx, product.SKU)
	return r.inner.Create(ctx, product)
}

func (r *CachedProductRepository) Find(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
	return r.inner.Find(ctx, filter, page)
}

func (r *CachedProductRepository) UpdateBySKU(ctx context.Context, sku string, fields map[string]interface{}) (*domain.Product, error) {
	r.invalidate(ctx, sku)
	return r.inner.UpdateBySKU(ctx, sku, fields)
}

func (r *CachedProductRepository) DeleteBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	r.invalidate(ctx, sku)
	return r.inner.DeleteBySKU(ctx, sku)
}

func (r *CachedProductRepository) invalidate(ctx context.Context, sku string) {
	if err := r.rdb.Del(ctx, cacheKey(sku)).Err(); err != nil {
		logger.WithContext(ctx).Warn().Err(err).Str("sku", sku).Msg("Failed to invalidate product cache")
	}
}
