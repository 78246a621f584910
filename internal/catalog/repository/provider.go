package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

const providerCollection = "providers"

// MongoProviderRepository implements domain.ProviderRepository on MongoDB
type MongoProviderRepository struct {
	coll *mongo.Collection
}

func NewMongoProviderRepository(db *mongo.Database) *MongoProviderRepository {
	return &MongoProviderRepository{coll: db.Collection(providerCollection)}
}

func (r *MongoProviderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "providerID", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoProviderRepository) Create(ctx context.Context, provider *domain.Provider) error {
	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *MongoProviderRepository) FindByID(ctx context.Context, providerID int) (*domain.Provider, error) {
	var provider domain.Provider
	err := r.coll.FindOne(ctx, bson.M{"providerID": providerID},
		options.FindOne().SetProjection(excludeInternalID)).Decode(&provider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Provider", "providerID", providerID)
		}
		return nil, err
	}
	return &provider, nil
}

func (r *MongoProviderRepository) FindByName(ctx context.Context, name string) (*domain.Provider, error) {
	var provider domain.Provider
	err := r.coll.FindOne(ctx, bson.M{"name": name},
		options.FindOne().SetProjection(excludeInternalID)).Decode(&provider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Provider", "name", name)
		}
		return nil, err
	}
	return &provider, nil
}

func (r *MongoProviderRepository) Find(ctx context.Context, filter domain.ProviderFilter, page domain.Page) ([]domain.Provider, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = filter.Name
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}

	opts := options.Find().
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit)).
		SetSort(bson.D{{Key: "providerID", Value: 1}}).
		SetProjection(excludeInternalID)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var providers []domain.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *MongoProviderRepository) UpdateByID(ctx context.Context, providerID int, fields map[string]interface{}) (*domain.Provider, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(excludeInternalID)

	var provider domain.Provider
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"providerID": providerID}, bson.M{"$set": fields}, opts).Decode(&provider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Provider", "providerID", providerID)
		}
		return nil, translateWriteError(err)
	}
	return &provider, nil
}

func (r *MongoProviderRepository) DeleteByID(ctx context.Context, providerID int) (*domain.Provider, error) {
	var provider domain.Provider
	err := r.coll.FindOneAndDelete(ctx, bson.M{"providerID": providerID},
		options.FindOneAndDelete().SetProjection(excludeInternalID)).Decode(&provider)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Provider", "providerID", providerID)
		}
		return nil, err
	}
	return &provider, nil
}
