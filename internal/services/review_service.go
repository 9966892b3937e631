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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewService interface {
	// ListOwnerReviews returns reviews left on any property posted by email,
	// newest first, each carrying its property's name and image.
	ListOwnerReviews(ctx context.Context, email string) ([]models.EnrichedReview, error)
	// ListReviewerReviews returns the reviews written by email, each carrying
	// its property's name and image.
	ListReviewerReviews(ctx context.Context, email string) ([]models.EnrichedReview, error)
	ListPropertyReviews(ctx context.Context, propertyID string) ([]models.Review, error)
	CreateReview(ctx context.Context, propertyID string, request *models.CreateReviewRequest) (*models.InsertResult, error)
	UpdateReview(ctx context.Context, id primitive.ObjectID, request *models.UpdateReviewRequest) (*models.UpdateResult, error)
	DeleteReview(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type reviewService struct {
	reviewRepo   interfaces.ReviewRepository
	propertyRepo interfaces.PropertyRepository
	audit        *logger.AuditLogger
	now          func() time.Time
}

func NewReviewService(
	reviewRepo interfaces.ReviewRepository,
	propertyRepo interfaces.PropertyRepository,
	audit *logger.AuditLogger,
) ReviewService {
	return &reviewService{
		reviewRepo:   reviewRepo,
		propertyRepo: propertyRepo,
		audit:        audit,
		now:          time.Now,
	}
}

func (s *reviewService) ListOwnerReviews(ctx context.Context, email string) ([]models.EnrichedReview, error) {
	properties, err := s.propertyRepo.ListByOwnerEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(properties) == 0 {
		return []models.EnrichedReview{}, nil
	}

	byID := make(map[string]models.Property, len(properties))
	ids := make([]string, 0, len(properties))
	for _, p := range properties {
		id := p.ID()
		byID[id] = p
		ids = append(ids, id)
	}

	reviews, err := s.reviewRepo.ListByPropertyIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedReview, 0, len(reviews))
	for _, r := range reviews {
		property, ok := byID[r.PropertyID]
		enriched = append(enriched, enrich(r, property, ok))
	}

	return enriched, nil
}

// ListReviewerReviews looks each property up individually.
func (s *reviewService) ListReviewerReviews(ctx context.Context, email string) ([]models.EnrichedReview, error) {
	reviews, err := s.reviewRepo.ListByReviewerEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedReview, 0, len(reviews))
	for _, r := range reviews {
		property, found, err := s.lookupProperty(ctx, r.PropertyID)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, enrich(r, property, found))
	}

	return enriched, nil
}

func (s *reviewService) lookupProperty(ctx context.Context, propertyID string) (models.Property, bool, error) {
	id, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return nil, false, nil
	}

	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return property, true, nil
}

func enrich(review models.Review, property models.Property, found bool) models.EnrichedReview {
	out := models.EnrichedReview{
		Review:        review,
		PropertyName:  models.UnknownPropertyName,
		PropertyImage: models.UnknownPropertyImage,
	}
	if found {
		out.PropertyName = property.Name()
		out.PropertyImage = property.Image()
	}
	return out
}

func (s *reviewService) ListPropertyReviews(ctx context.Context, propertyID string) ([]models.Review, error) {
	return s.reviewRepo.ListByPropertyID(ctx, propertyID)
}

// CreateReview rejects a second review by the same reviewer on the same
// property. The check and the insert are separate store calls, so two
// concurrent requests can both succeed.
func (s *reviewService) CreateReview(ctx context.Context, propertyID string, request *models.CreateReviewRequest) (*models.InsertResult, error) {
	_, err := s.reviewRepo.FindByPropertyAndReviewer(ctx, propertyID, request.ReviewerEmail)
	switch {
	case err == nil:
		return nil, fmt.Errorf("you have already reviewed this property: %w", ErrDuplicate)
	case !errors.Is(err, interfaces.ErrNotFound):
		return nil, err
	}

	review := &models.Review{
		PropertyID:    propertyID,
		Rating:        request.Rating,
		ReviewText:    request.ReviewText,
		ReviewerEmail: request.ReviewerEmail,
		ReviewerName:  request.ReviewerName,
		ReviewerImage: request.ReviewerImage,
		CreatedAt:     utils.FormatTimeISO(s.now()),
	}

	id, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	s.audit.LogAction("create", "review", actorEmail(ctx), map[string]interface{}{
		"review_id":   id.Hex(),
		"property_id": propertyID,
	})

	return &models.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, id primitive.ObjectID, request *models.UpdateReviewRequest) (*models.UpdateResult, error) {
	fields := bson.M{
		"rating":      request.Rating,
		"review_text": request.ReviewText,
		"updated_at":  utils.FormatTimeISO(s.now()),
	}

	matched, modified, err := s.reviewRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("review %s: %w", id.Hex(), ErrNotFound)
	}

	s.audit.LogAction("update", "review", actorEmail(ctx), map[string]interface{}{
		"review_id": id.Hex(),
	})

	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
		Message:       "Review updated successfully",
	}, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	deleted, err := s.reviewRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, fmt.Errorf("review %s: %w", id.Hex(), ErrNotFound)
	}

	s.audit.LogAction("delete", "review", actorEmail(ctx), map[string]interface{}{
		"review_id": id.Hex(),
	})

	return &models.DeleteResult{
		Acknowledged: true,
		DeletedCount: deleted,
		Message:      "Review deleted successfully",
	}, nil
}
