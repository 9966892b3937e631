package interfaces

import (
	"context"

	"estatehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestimonialRepository interface {
	// List returns every testimonial, newest created_at first.
	List(ctx context.Context) ([]models.Testimonial, error)
	GetByEmail(ctx context.Context, email string) (models.Testimonial, error)
	Create(ctx context.Context, testimonial models.Testimonial) (interface{}, error)
	Update(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
