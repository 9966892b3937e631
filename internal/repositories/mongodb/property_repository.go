package mongodb

import (
	"context"
	"errors"
	"fmt"

	"estatehub/internal/models"
	"estatehub/internal/repositories/interfaces"
	"estatehub/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type propertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) interfaces.PropertyRepository {
	return &propertyRepository{
		collection: db.Collection(database.PropertiesCollection),
	}
}

func (r *propertyRepository) List(ctx context.Context) ([]models.Property, error) {
	return r.find(ctx, bson.M{})
}

func (r *propertyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Property, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return models.Property(doc), nil
}

func (r *propertyRepository) ListByOwnerEmail(ctx context.Context, email string) ([]models.Property, error) {
	return r.find(ctx, bson.M{"posted_by.email": email})
}

func (r *propertyRepository) Create(ctx context.Context, property models.Property) (interface{}, error) {
	result, err := r.collection.InsertOne(ctx, bson.M(property))
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return result.InsertedID, nil
}

func (r *propertyRepository) Update(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update property: %w", err)
	}

	return result.MatchedCount, result.ModifiedCount, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete property: %w", err)
	}

	return result.DeletedCount, nil
}

func (r *propertyRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Property, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to find properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := make([]models.Property, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode property: %w", err)
		}
		properties = append(properties, models.Property(doc))
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	return properties, nil
}
