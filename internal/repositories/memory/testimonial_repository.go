package memory

import (
	"context"

	"estatehub/internal/models"
	"estatehub/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestimonialRepository struct {
	docs collection
}

var _ interfaces.TestimonialRepository = (*TestimonialRepository)(nil)

func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{}
}

func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	docs := r.docs.filter(all)
	sortNewestFirst(docs)

	out := make([]models.Testimonial, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.Testimonial(d))
	}
	return out, nil
}

func (r *TestimonialRepository) GetByEmail(ctx context.Context, email string) (models.Testimonial, error) {
	doc, ok := r.docs.first(byString(email, "email"))
	if !ok {
		return nil, interfaces.ErrNotFound
	}
	return models.Testimonial(doc), nil
}

func (r *TestimonialRepository) Create(ctx context.Context, testimonial models.Testimonial) (interface{}, error) {
	return r.docs.insert(testimonial), nil
}

func (r *TestimonialRepository) Update(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, int64, error) {
	matched, modified := r.docs.update(id, fields)
	return matched, modified, nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.docs.delete(id), nil
}

func (r *TestimonialRepository) Len() int {
	return r.docs.count()
}
