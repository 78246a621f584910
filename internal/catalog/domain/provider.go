package domain

import "context"

// Provider represents a product provider, identified by its providerID
type Provider struct {
	ProviderID int    `json:"providerID" bson:"providerID"`
	Name       string `json:"name" bson:"name"`
	Website    string `json:"website,omitempty" bson:"website,omitempty"`
	Email      string `json:"email,omitempty" bson:"email,omitempty"`
}

// ProviderFilter holds the validated search parameters for provider listings
type ProviderFilter struct {
	Name  string
	Email string
}

// ProviderRepository defines the contract for provider data access
type ProviderRepository interface {
	Create(ctx context.Context, provider *Provider) error
	FindByID(ctx context.Context, providerID int) (*Provider, error)
	FindByName(ctx context.Context, name string) (*Provider, error)
	Find(ctx context.Context, filter ProviderFilter, page Page) ([]Provider, error)
	UpdateByID(ctx context.Context, providerID int, fields map[string]interface{}) (*Provider, error)
	DeleteByID(ctx context.Context, providerID int) (*Provider, error)
}
