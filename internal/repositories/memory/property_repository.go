package memory

import (
	"context"

	"estatehub/internal/models"
	"estatehub/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyRepository struct {
	docs collection
}

var _ interfaces.PropertyRepository = (*PropertyRepository)(nil)

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

func (r *PropertyRepository) List(ctx context.Context) ([]models.Property, error) {
	return toProperties(r.docs.filter(all)), nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Property, error) {
	doc, ok := r.docs.first(byID(id))
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return models.Property(doc), nil
}

func (r *PropertyRepository) ListByOwnerEmail(ctx context.Context, email string) ([]models.Property, error) {
	return toProperties(r.docs.filter(byString(email, "posted_by", "email"))), nil
}

func (r *PropertyRepository) Create(ctx context.Context, property models.Property) (interface{}, error) {
	return r.docs.insert(property), nil
}

func (r *PropertyRepository) Update(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, int64, error) {
	matched, modified := r.docs.update(id, fields)
	return matched, modified, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.docs.delete(id), nil
}

// Len reports how many properties are stored.
func (r *PropertyRepository) Len() int {
	return r.docs.count()
}

func toProperties(docs []map[string]interface{}) []models.Property {
	out := make([]models.Property, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Property(d))
	}
	return out
}
