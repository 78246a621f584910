package repository

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

type stubProductRepo struct {
	product     *domain.Product
	findCalls   int
	updateCalls int
}

func (s *stubProductRepo) Create(ctx context.Context, product *domain.Product) error {
	return nil
}

func (s *stubProductRepo) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	s.findCalls++
	return s.product, nil
}

func (s *stubProductRepo) Find(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) UpdateBySKU(ctx context.Context, sku string, fields map[string]interface{}) (*domain.Product, error) {
	s.updateCalls++
	return s.product, nil
}

func (s *stubProductRepo) DeleteBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return s.product, nil
}

// unreachableRedis returns a client whose every command fails fast, standing
// in for a cache outage
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:            "127.0.0.1:1",
		DialTimeout:     50 * time.Millisecond,
		ReadTimeout:     50 * time.Millisecond,
		WriteTimeout:    50 * time.Millisecond,
		MaxRetries:      -1,
		PoolTimeout:     50 * time.Millisecond,
		MinRetryBackoff: -1,
		MaxRetryBackoff: -1,
	})
}

func TestCachedRepositorySurvivesCacheOutage(t *testing.T) {
	inner := &stubProductRepo{product: &domain.Product{SKU: "HP-02178", Name: "Wireless Mouse"}}
	cached := NewCachedProductRepository(inner, unreachableRedis(), time.Minute)

	product, err := cached.FindBySKU(context.Background(), "HP-02178")
	require.NoError(t, err)
	assert.Equal(t, "HP-02178", product.SKU)
	assert.Equal(t, 1, inner.findCalls)

	_, err = cached.UpdateBySKU(context.Background(), "HP-02178", map[string]interface{}{"price": 19.99})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.updateCalls)
}
