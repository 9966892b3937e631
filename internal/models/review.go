package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	PropertyID    string             `json:"property_id" bson:"property_id"`
	Rating        interface{}        `json:"rating" bson:"rating"`
	ReviewText    string             `json:"review_text" bson:"review_text"`
	ReviewerEmail string             `json:"reviewer_email" bson:"reviewer_email"`
	ReviewerName  string             `json:"reviewer_name" bson:"reviewer_name"`
	ReviewerImage string             `json:"reviewer_image,omitempty" bson:"reviewer_image,omitempty"`
	CreatedAt     string             `json:"created_at" bson:"created_at"`
	UpdatedAt     string             `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// EnrichedReview carries denormalized property fields for owner and reviewer
// dashboards.
type EnrichedReview struct {
	Review        `bson:",inline"`
	PropertyName  string `json:"property_name" bson:"property_name"`
	PropertyImage string `json:"property_image" bson:"property_image"`
}

// CreateReviewRequest is the body of POST /properties/:id/reviews.
type CreateReviewRequest struct {
	Rating        interface{} `json:"rating"`
	ReviewText    string      `json:"review_text"`
	ReviewerEmail string      `json:"reviewer_email" validate:"required,email"`
	ReviewerName  string      `json:"reviewer_name"`
	ReviewerImage string      `json:"reviewer_image"`
}

// UpdateReviewRequest is the body of PUT /reviews/:id.
type UpdateReviewRequest struct {
	Rating     interface{} `json:"rating"`
	ReviewText string      `json:"review_text"`
}
