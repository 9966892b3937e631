package interfaces

import (
	"context"

	"estatehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewRepository lists are ordered by created_at, newest first, unless
// noted otherwise.
type ReviewRepository interface {
	ListByPropertyIDs(ctx context.Context, propertyIDs []string) ([]models.Review, error)
	ListByPropertyID(ctx context.Context, propertyID string) ([]models.Review, error)
	// ListByReviewerEmail returns reviews in store order.
	ListByReviewerEmail(ctx context.Context, email string) ([]models.Review, error)
	FindByPropertyAndReviewer(ctx context.Context, propertyID, reviewerEmail string) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
