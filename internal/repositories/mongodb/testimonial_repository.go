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

type testimonialRepository struct {
	collection *mongo.Collection
}

func NewTestimonialRepository(db *mongo.Database) interfaces.TestimonialRepository {
	return &testimonialRepository{
		collection: db.Collection(database.TestimonialsCollection),
	}
}

func (r *testimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to find testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}

	testimonials := make([]models.Testimonial, 0, len(docs))
	for _, doc := range docs {
		testimonials = append(testimonials, models.Testimonial(doc))
	}

	return testimonials, nil
}

func (r *testimonialRepository) GetByEmail(ctx context.Context, email string) (models.Testimonial, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}

	return models.Testimonial(doc), nil
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial models.Testimonial) (interface{}, error) {
	result, err := r.collection.InsertOne(ctx, bson.M(testimonial))
	if err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	return result.InsertedID, nil
}

func (r *testimonialRepository) Update(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update testimonial: %w", err)
	}

	return result.MatchedCount, result.ModifiedCount, nil
}

func (r *testimonialRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete testimonial: %w", err)
	}

	return result.DeletedCount, nil
}
