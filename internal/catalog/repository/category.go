package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
)

const categoryCollection = "categories"

// MongoCategoryRepository implements domain.CategoryRepository on MongoDB
type MongoCategoryRepository struct {
	coll *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) *MongoCategoryRepository {
	return &MongoCategoryRepository{coll: db.Collection(categoryCollection)}
}

func (r *MongoCategoryRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "categoryID", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (r *MongoCategoryRepository) FindByID(ctx context.Context, categoryID int) (*domain.Category, error) {
	var category domain.Category
	err := r.coll.FindOne(ctx, bson.M{"categoryID": categoryID},
		options.FindOne().SetProjection(excludeInternalID)).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Category", "categoryID", categoryID)
		}
		return nil, err
	}
	return &category, nil
}

func (r *MongoCategoryRepository) Find(ctx context.Context, filter domain.CategoryFilter, page domain.Page) ([]domain.Category, error) {
	query := bson.M{}
	if filter.Name != "" {
		query["name"] = filter.Name
	}

	opts := options.Find().
		SetSkip(int64(page.Offset)).
		SetLimit(int64(page.Limit)).
		SetSort(bson.D{{Key: "categoryID", Value: 1}}).
		SetProjection(excludeInternalID)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategoryRepository) FindChildren(ctx context.Context, parentCategoryID int) ([]domain.Category, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "categoryID", Value: 1}}).
		SetProjection(excludeInternalID)

	cursor, err := r.coll.Find(ctx, bson.M{"parentCategoryID": parentCategoryID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MongoCategoryRepository) UpdateByID(ctx context.Context, categoryID int, fields map[string]interface{}) (*domain.Category, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(excludeInternalID)

	var category domain.Category
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"categoryID": categoryID}, bson.M{"$set": fields}, opts).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Category", "categoryID", categoryID)
		}
		return nil, translateWriteError(err)
	}
	return &category, nil
}

func (r *MongoCategoryRepository) DeleteByID(ctx context.Context, categoryID int) (*domain.Category, error) {
	var category domain.Category
	err := r.coll.FindOneAndDelete(ctx, bson.M{"categoryID": categoryID},
		options.FindOneAndDelete().SetProjection(excludeInternalID)).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NewKeyNotFound("Category", "categoryID", categoryID)
		}
		return nil, err
	}
	return &category, nil
}
