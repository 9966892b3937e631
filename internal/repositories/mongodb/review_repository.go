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

type reviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) interfaces.ReviewRepository {
	return &reviewRepository{
		collection: db.Collection(database.ReviewsCollection),
	}
}

var newestFirst = bson.D{{Key: "created_at", Value: -1}}

func (r *reviewRepository) ListByPropertyIDs(ctx context.Context, propertyIDs []string) ([]models.Review, error) {
	if len(propertyIDs) == 0 {
		return []models.Review{}, nil
	}

	filter := bson.M{"property_id": bson.M{"$in": propertyIDs}}
	return r.find(ctx, filter, options.Find().SetSort(newestFirst))
}

func (r *reviewRepository) ListByPropertyID(ctx context.Context, propertyID string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"property_id": propertyID}, options.Find().SetSort(newestFirst))
}

func (r *reviewRepository) ListByReviewerEmail(ctx context.Context, email string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"reviewer_email": email})
}

func (r *reviewRepository) FindByPropertyAndReviewer(ctx context.Context, propertyID, reviewerEmail string) (*models.Review, error) {
	filter := bson.M{
		"property_id":    propertyID,
		"reviewer_email": reviewerEmail,
	}

	var review models.Review
	err := r.collection.FindOne(ctx, filter).Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, interfaces.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	review.ID = primitive.NewObjectID()

	if _, err := r.collection.InsertOne(ctx, review); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create review: %w", err)
	}

	return review.ID, nil
}

func (r *reviewRepository) Update(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, int64, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update review: %w", err)
	}

	return result.MatchedCount, result.ModifiedCount, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete review: %w", err)
	}

	return result.DeletedCount, nil
}

func (r *reviewRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Review, error) {
	cursor, err := r.collection.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}
