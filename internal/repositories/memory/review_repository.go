package memory

import (
	"context"
	"sort"
	"sync"

	"estatehub/internal/models"
	"estatehub/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewRepository struct {
	mu      sync.RWMutex
	reviews []models.Review
}

var _ interfaces.ReviewRepository = (*ReviewRepository)(nil)

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) ListByPropertyIDs(ctx context.Context, propertyIDs []string) ([]models.Review, error) {
	ids := make(map[string]struct{}, len(propertyIDs))
	for _, id := range propertyIDs {
		ids[id] = struct{}{}
	}

	out := r.filter(func(rv models.Review) bool {
		_, ok := ids[rv.PropertyID]
		return ok
	})
	newestReviewsFirst(out)
	return out, nil
}

func (r *ReviewRepository) ListByPropertyID(ctx context.Context, propertyID string) ([]models.Review, error) {
	out := r.filter(func(rv models.Review) bool { return rv.PropertyID == propertyID })
	newestReviewsFirst(out)
	return out, nil
}

func (r *ReviewRepository) ListByReviewerEmail(ctx context.Context, email string) ([]models.Review, error) {
	return r.filter(func(rv models.Review) bool { return rv.ReviewerEmail == email }), nil
}

func (r *ReviewRepository) FindByPropertyAndReviewer(ctx context.Context, propertyID, reviewerEmail string) (*models.Review, error) {
	found := r.filter(func(rv models.Review) bool {
		return rv.PropertyID == propertyID && rv.ReviewerEmail == reviewerEmail
	})
	if len(found) == 0 {
		return nil, interfaces.ErrNotFound
	}
	return &found[0], nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = primitive.NewObjectID()
	r.reviews = append(r.reviews, *review)
	return review.ID, nil
}

// Update applies the subset of $set keys a review carries.
func (r *ReviewRepository) Update(ctx context.Context, id primitive.ObjectID, fields models.Document) (int64, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID != id {
			continue
		}
		before := r.reviews[i]
		rv := &r.reviews[i]
		for k, v := range fields {
			s, _ := v.(string)
			switch k {
			case "rating":
				rv.Rating = v
			case "review_text":
				rv.ReviewText = s
			case "updated_at":
				rv.UpdatedAt = s
			case "reviewer_name":
				rv.ReviewerName = s
			case "reviewer_image":
				rv.ReviewerImage = s
			}
		}
		var modified int64
		if !sameReview(before, *rv) {
			modified = 1
		}
		return 1, modified, nil
	}
	return 0, 0, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.reviews {
		if r.reviews[i].ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *ReviewRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reviews)
}

func (r *ReviewRepository) filter(match func(models.Review) bool) []models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Review, 0)
	for _, rv := range r.reviews {
		if match(rv) {
			out = append(out, rv)
		}
	}
	return out
}

func newestReviewsFirst(reviews []models.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})
}

func sameReview(a, b models.Review) bool {
	return equal(a.Rating, b.Rating) &&
		a.ReviewText == b.ReviewText &&
		a.UpdatedAt == b.UpdatedAt &&
		a.ReviewerName == b.ReviewerName &&
		a.ReviewerImage == b.ReviewerImage
}
