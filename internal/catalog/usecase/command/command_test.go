package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

type fakeProductRepo struct {
	create      func(ctx context.Context, product *domain.Product) error
	updateBySKU func(ctx context.Context, sku string, fields map[string]interface{}) (*domain.Product, error)
	deleteBySKU func(ctx context.Context, sku string) (*domain.Product, error)
	updateCalls int
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	return f.create(ctx, product)
}

func (f *fakeProductRepo) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Find(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) UpdateBySKU(ctx context.Context, sku string, fields map[string]interface{}) (*domain.Product, error) {
	f.updateCalls++
	return f.updateBySKU(ctx, sku, fields)
}

func (f *fakeProductRepo) DeleteBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return f.deleteBySKU(ctx, sku)
}

func TestCreateProductAppliesDefaults(t *testing.T) {
	var stored *domain.Product
	repo := &fakeProductRepo{
		create: func(ctx context.Context, product *domain.Product) error {
			stored = product
			return nil
		},
	}
	handler := NewCreateProductHandler(repo, nil)

	product, err := handler.Handle(context.Background(), CreateProductCommand{
		SKU:        "HP-02178",
		Name:       "Wireless Mouse",
		CategoryID: 12,
		Price:      24.99,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{}, product.QTags)
	assert.Equal(t, []string{}, product.ImageURLs)
	assert.Equal(t, domain.StatusAvailable, product.Status)
}

func TestCreateProductDuplicateKey(t *testing.T) {
	repo := &fakeProductRepo{
		create: func(ctx context.Context, product *domain.Product) error {
			return &domain.BadRequestError{Message: "E11000 duplicate key error"}
		},
	}
	handler := NewCreateProductHandler(repo, nil)

	_, err := handler.Handle(context.Background(), CreateProductCommand{SKU: "HP-02178"})
	require.Error(t, err)
	assert.True(t, domain.IsBadRequest(err))
}

func TestUpdateProductRejectsEmptyBody(t *testing.T) {
	repo := &fakeProductRepo{}
	handler := NewUpdateProductHandler(repo, nil)

	_, err := handler.Handle(context.Background(), UpdateProductCommand{
		SKU:    "HP-02178",
		Fields: map[string]interface{}{},
	})
	require.Error(t, err)
	assert.True(t, domain.IsBadRequest(err))
	assert.Equal(t, "Request Body cannot be empty", err.Error())
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateProductMergesFields(t *testing.T) {
	repo := &fakeProductRepo{
		updateBySKU: func(ctx context.Context, sku string, fields map[string]interface{}) (*domain.Product, error) {
			assert.Equal(t, "HP-02178", sku)
			assert.Equal(t, map[string]interface{}{"price": 19.99}, fields)
			return &domain.Product{SKU: sku, Price: 19.99}, nil
		},
	}
	handler := NewUpdateProductHandler(repo, nil)

	product, err := handler.Handle(context.Background(), UpdateProductCommand{
		SKU:    "HP-02178",
		Fields: map[string]interface{}{"price": 19.99},
	})
	require.NoError(t, err)
	assert.Equal(t, 19.99, product.Price)
}

func TestDeleteProductMissing(t *testing.T) {
	repo := &fakeProductRepo{
		deleteBySKU: func(ctx context.Context, sku string) (*domain.Product, error) {
			return nil, domain.NewKeyNotFound("Product", "sku", sku)
		},
	}
	handler := NewDeleteProductHandler(repo, nil)

	_, err := handler.Handle(context.Background(), DeleteProductCommand{SKU: "ZZ-99999"})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "Product not found with sku: ZZ-99999", err.Error())
}
