package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

const productCollection = "products"

// excludeInternalID strips the storage-native surrogate key from every
// returned document; callers only ever see natural keys
var excludeInternalID = bson.M{"_id": 0}

// MongoProductRepository implements domain.ProductRepository on MongoDB
type MongoProductRepository struct {
	coll *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{coll: db.Collection(productCollection)}
}

// EnsureIndexes creates the unique index backing the sku invariant
func (r *MongoProductRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sku", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if _, err := r.coll.InsertOne(ctx, product); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *MongoProductRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var product domain.Product
	err := r.coll.FindOne(ctx, bson.M{"sku": sku},
		options.FindOne().SetProjection(excludeInternalID)).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Product", "sku", sku)
		}
		return nil, err
	}
	return &product, nil
}

func (r *MongoProductRepository) Find(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, error) {
	opts := options.Find().
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit)).
		SetSort(bson.D{{Key: "sku", Value: 1}}).
		SetProjection(excludeInternalID)

	cursor, err := r.coll.Find(ctx, buildProductFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *MongoProductRepository) UpdateBySKU(ctx context.Context, sku string, fields map[string]interface{}) (*domain.Product, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(excludeInternalID)

	var product domain.Product
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"sku": sku}, bson.M{"$set": fields}, opts).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Product", "sku", sku)
		}
		return nil, translateWriteError(err)
	}
	return &product, nil
}

func (r *MongoProductRepository) DeleteBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var product domain.Product
	err := r.coll.FindOneAndDelete(ctx, bson.M{"sku": sku},
		options.FindOneAndDelete().SetProjection(excludeInternalID)).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Product", "sku", sku)
		}
		return nil, err
	}
	return &product, nil
}

// buildProductFilter translates validated search parameters into a document
// filter. All fragments combine with implicit AND; the tag fragment is itself
// a disjunction over the listed tags.
func buildProductFilter(f domain.ProductFilter) bson.M {
	query := bson.M{}
	if f.Name != "" {
		query["name"] = f.Name
	}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.CategoryID != nil {
		query["categoryID"] = *f.CategoryID
	}
	if f.ProviderID != nil {
		query["providerID"] = *f.ProviderID
	}
	if len(f.Tags) > 0 {
		query["qTags"] = bson.M{"$in": f.Tags}
	}
	// Attribute constraints match the stored value list exactly, order
	// included: attributes[colors]=white,silver only matches a product whose
	// attributes.colors is ["white","silver"] in that order.
	for key, values := range f.Attributes {
		query["attributes."+key] = values
	}
	if f.ExcludeSKU != "" {
		query["sku"] = bson.M{"$ne": f.ExcludeSKU}
	}
	return query
}

// translateWriteError maps persistence rejections of well-formed requests
// (duplicate natural keys above all) onto the caller-visible 400 class,
// leaving everything else to surface as an internal failure
func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return &domain.BadRequestError{Message: err.Error()}
	}
	return err
}
