package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estatehub/internal/models"
	"estatehub/internal/repositories/interfaces"
	"estatehub/internal/utils"
	"estatehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TestimonialService interface {
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	GetTestimonialByEmail(ctx context.Context, email string) (models.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (*models.InsertResult, error)
	UpdateTestimonial(ctx context.Context, id primitive.ObjectID, fields models.Document) (*models.UpdateResult, error)
	DeleteTestimonial(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type testimonialService struct {
	testimonialRepo interfaces.TestimonialRepository
	audit           *logger.AuditLogger
	now             func() time.Time
}

func NewTestimonialService(testimonialRepo interfaces.TestimonialRepository, audit *logger.AuditLogger) TestimonialService {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		audit:           audit,
		now:             time.Now,
	}
}

func (s *testimonialService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return s.testimonialRepo.List(ctx)
}

func (s *testimonialService) GetTestimonialByEmail(ctx context.Context, email string) (models.Testimonial, error) {
	return s.testimonialRepo.GetByEmail(ctx, email)
}

// CreateTestimonial allows one testimonial per email, checked before the
// insert rather than by the store.
func (s *testimonialService) CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (*models.InsertResult, error) {
	email := testimonial.Email()

	_, err := s.testimonialRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("you have already submitted a testimonial: %w", ErrDuplicate)
	case !errors.Is(err, interfaces.ErrNotFound):
		return nil, err
	}

	insertedID, err := s.testimonialRepo.Create(ctx, testimonial)
	if err != nil {
		return nil, err
	}

	s.audit.LogAction("create", "testimonial", actorEmail(ctx), map[string]interface{}{
		"testimonial_id": models.HexID(insertedID),
	})

	return &models.InsertResult{Acknowledged: true, InsertedID: insertedID}, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, id primitive.ObjectID, fields models.Document) (*models.UpdateResult, error) {
	fields = models.StripID(fields)
	fields["updated_at"] = utils.FormatTimeISO(s.now())

	matched, modified, err := s.testimonialRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("testimonial %s: %w", id.Hex(), ErrNotFound)
	}

	s.audit.LogAction("update", "testimonial", actorEmail(ctx), map[string]interface{}{
		"testimonial_id": id.Hex(),
	})

	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
		Message:       "Testimonial updated successfully",
	}, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	deleted, err := s.testimonialRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, fmt.Errorf("testimonial %s: %w", id.Hex(), ErrNotFound)
	}

	s.audit.LogAction("delete", "testimonial", actorEmail(ctx), map[string]interface{}{
		"testimonial_id": id.Hex(),
	})

	return &models.DeleteResult{
		Acknowledged: true,
		DeletedCount: deleted,
		Message:      "Testimonial deleted successfully",
	}, nil
}
