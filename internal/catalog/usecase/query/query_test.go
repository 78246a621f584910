package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

type fakeProductRepo struct {
	findBySKU func(ctx context.Context, sku string) (*domain.Product, error)
	find      func(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error)
	findCalls int
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) error {
	return nil
}

func (f *fakeProductRepo) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return f.findBySKU(ctx, sku)
}

func (f *fakeProductRepo) Find(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
	f.findCalls++
	return f.find(ctx, filter, page)
}

func (f *fakeProductRepo) UpdateBySKU(ctx context.Context, sku string, fields map[string]interface{}) (*domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) DeleteBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return nil, nil
}

type fakeProviderRepo struct {
	findByName func(ctx context.Context, name string) (*domain.Provider, error)
}

func (f *fakeProviderRepo) Create(ctx context.Context, provider *domain.Provider) error {
	return nil
}

func (f *fakeProviderRepo) FindByID(ctx context.Context, providerID int) (*domain.Provider, error) {
	return nil, nil
}

func (f *fakeProviderRepo) FindByName(ctx context.Context, name string) (*domain.Provider, error) {
	return f.findByName(ctx, name)
}

func (f *fakeProviderRepo) Find(ctx context.Context, filter domain.ProviderFilter, page domain.Page) ([]domain.Provider, error) {
	return nil, nil
}

func (f *fakeProviderRepo) UpdateByID(ctx context.Context, providerID int, fields map[string]interface{}) (*domain.Provider, error) {
	return nil, nil
}

func (f *fakeProviderRepo) DeleteByID(ctx context.Context, providerID int) (*domain.Provider, error) {
	return nil, nil
}

func TestFilterProductsEmptyResultIsNotFound(t *testing.T) {
	products := &fakeProductRepo{
		find: func(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
			return nil, nil
		},
	}
	handler := NewFilterProductsHandler(products, &fakeProviderRepo{})

	_, err := handler.Handle(context.Background(), FilterProductsQuery{
		Status: "available",
		Page:   domain.DefaultPage(),
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "No Such Products Found.", err.Error())
}

func TestFilterProductsResolvesProviderName(t *testing.T) {
	var gotFilter domain.ProductFilter
	products := &fakeProductRepo{
		find: func(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
			gotFilter = filter
			return []domain.Product{{SKU: "HP-02178"}}, nil
		},
	}
	providers := &fakeProviderRepo{
		findByName: func(ctx context.Context, name string) (*domain.Provider, error) {
			assert.Equal(t, "Acme", name)
			return &domain.Provider{ProviderID: 7, Name: "Acme"}, nil
		},
	}
	handler := NewFilterProductsHandler(products, providers)

	result, err := handler.Handle(context.Background(), FilterProductsQuery{
		ProviderName: "Acme",
		Page:         domain.DefaultPage(),
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, gotFilter.ProviderID)
	assert.Equal(t, 7, *gotFilter.ProviderID)
}

func TestFilterProductsUnknownProviderFailsBeforeSearch(t *testing.T) {
	products := &fakeProductRepo{
		find: func(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
			return []domain.Product{{SKU: "HP-02178"}}, nil
		},
	}
	providers := &fakeProviderRepo{
		findByName: func(ctx context.Context, name string) (*domain.Provider, error) {
			return nil, domain.NewKeyNotFound("Provider", "name", name)
		},
	}
	handler := NewFilterProductsHandler(products, providers)

	_, err := handler.Handle(context.Background(), FilterProductsQuery{
		ProviderName: "Nowhere Inc",
		Page:         domain.DefaultPage(),
	})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "Provider not found with name: Nowhere Inc", err.Error())
	assert.Zero(t, products.findCalls, "product search must not run on provider lookup failure")
}

func TestSimilarProductsExcludesSeed(t *testing.T) {
	seed := &domain.Product{SKU: "HP-02178", QTags: []string{"wireless", "gaming"}}
	var gotFilter domain.ProductFilter
	products := &fakeProductRepo{
		findBySKU: func(ctx context.Context, sku string) (*domain.Product, error) {
			return seed, nil
		},
		find: func(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
			gotFilter = filter
			return []domain.Product{{SKU: "LG-00431"}}, nil
		},
	}
	handler := NewSimilarProductsHandler(products)

	result, err := handler.Handle(context.Background(), SimilarProductsQuery{
		SKU:  "HP-02178",
		Page: domain.DefaultPage(),
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "LG-00431", result[0].SKU)
	assert.Equal(t, seed.QTags, gotFilter.Tags)
	assert.Equal(t, "HP-02178", gotFilter.ExcludeSKU)
}

func TestSimilarProductsSeedWithoutTags(t *testing.T) {
	products := &fakeProductRepo{
		findBySKU: func(ctx context.Context, sku string) (*domain.Product, error) {
			return &domain.Product{SKU: sku}, nil
		},
	}
	handler := NewSimilarProductsHandler(products)

	_, err := handler.Handle(context.Background(), SimilarProductsQuery{SKU: "HP-02178"})
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
	assert.Equal(t, "No Such Similar Products Found.", err.Error())
	assert.Zero(t, products.findCalls, "similarity search must not run without seed tags")
}

func TestSimilarProductsMissingSeed(t *testing.T) {
	products := &fakeProductRepo{
		findBySKU: func(ctx context.Context, sku string) (*domain.Product, error) {
			return nil, domain.NewKeyNotFound("Product", "sku", sku)
		},
	}
	handler := NewSimilarProductsHandler(products)

	_, err := handler.Handle(context.Background(), SimilarProductsQuery{SKU: "ZZ-99999"})
	require.Error(t, err)
	assert.Equal(t, "Product not found with sku: ZZ-99999", err.Error())
}

func TestSimilarProductsNoOverlap(t *testing.T) {
	products := &fakeProductRepo{
		findBySKU: func(ctx context.Context, sku string) (*domain.Product, error) {
			return &domain.Product{SKU: sku, QTags: []string{"niche"}}, nil
		},
		find: func(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
			return nil, nil
		},
	}
	handler := NewSimilarProductsHandler(products)

	_, err := handler.Handle(context.Background(), SimilarProductsQuery{
		SKU:  "HP-02178",
		Page: domain.DefaultPage(),
	})
	require.Error(t, err)
	assert.Equal(t, "No Such Similar Products Found.", err.Error())
}

func TestGetSubCategoriesParentMustExist(t *testing.T) {
	categories := &fakeCategoryRepo{
		findByID: func(ctx context.Context, categoryID int) (*domain.Category, error) {
			return nil, domain.NewKeyNotFound("Category", "categoryID", categoryID)
		},
	}
	handler := NewGetSubCategoriesHandler(categories)

	_, err := handler.Handle(context.Background(), GetSubCategoriesQuery{CategoryID: 99})
	require.Error(t, err)
	assert.Equal(t, "Category not found with categoryID: 99", err.Error())
}

func TestGetSubCategoriesEmptyIsNotFound(t *testing.T) {
	categories := &fakeCategoryRepo{
		findByID: func(ctx context.Context, categoryID int) (*domain.Category, error) {
			return &domain.Category{CategoryID: categoryID, Name: "Peripherals"}, nil
		},
		findChildren: func(ctx context.Context, parentCategoryID int) ([]domain.Category, error) {
			return nil, nil
		},
	}
	handler := NewGetSubCategoriesHandler(categories)

	_, err := handler.Handle(context.Background(), GetSubCategoriesQuery{CategoryID: 12})
	require.Error(t, err)
	assert.Equal(t, "No Such SubCategories Found.", err.Error())
}

type fakeCategoryRepo struct {
	findByID     func(ctx context.Context, categoryID int) (*domain.Category, error)
	findChildren func(ctx context.Context, parentCategoryID int) ([]domain.Category, error)
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, categoryID int) (*domain.Category, error) {
	return f.findByID(ctx, categoryID)
}

func (f *fakeCategoryRepo) Find(ctx context.Context, filter domain.CategoryFilter, page domain.Page) ([]domain.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) FindChildren(ctx context.Context, parentCategoryID int) ([]domain.Category, error) {
	return f.findChildren(ctx, parentCategoryID)
}

func (f *fakeCategoryRepo) UpdateByID(ctx context.Context, categoryID int, fields map[string]interface{}) (*domain.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) DeleteByID(ctx context.Context, categoryID int) (*domain.Category, error) {
	return nil, nil
}
