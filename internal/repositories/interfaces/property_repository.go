package interfaces

import (
	"context"

	"estatehub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyRepository interface {
	List(ctx context.Context) ([]models.Property, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Property, error)
	ListByOwnerEmail(ctx context.Context, email string) ([]models.Property, error)
	Create(ctx context.Context, property models.Property) (interface{}, error)
	// Update merges fields into the document and returns the matched and
	// modified counts.
	Update(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
