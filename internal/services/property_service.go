package services

import (
	"context"
	"fmt"

	"estatehub/internal/models"
	"estatehub/internal/repositories/interfaces"
	"estatehub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyService interface {
	ListProperties(ctx context.Context) ([]models.Property, error)
	GetProperty(ctx context.Context, id primitive.ObjectID) (models.Property, error)
	ListOwnerProperties(ctx context.Context, email string) ([]models.Property, error)
	CreateProperty(ctx context.Context, property models.Property) (*models.InsertResult, error)
	UpdateProperty(ctx context.Context, id primitive.ObjectID, fields models.Document) (*models.UpdateResult, error)
	DeleteProperty(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

type propertyService struct {
	propertyRepo interfaces.PropertyRepository
	audit        *logger.AuditLogger
}

func NewPropertyService(propertyRepo interfaces.PropertyRepository, audit *logger.AuditLogger) PropertyService {
	return &propertyService{
		propertyRepo: propertyRepo,
		audit:        audit,
	}
}

func (s *propertyService) ListProperties(ctx context.Context) ([]models.Property, error) {
	return s.propertyRepo.List(ctx)
}

func (s *propertyService) GetProperty(ctx context.Context, id primitive.ObjectID) (models.Property, error) {
	return s.propertyRepo.GetByID(ctx, id)
}

func (s *propertyService) ListOwnerProperties(ctx context.Context, email string) ([]models.Property, error) {
	return s.propertyRepo.ListByOwnerEmail(ctx, email)
}

func (s *propertyService) CreateProperty(ctx context.Context, property models.Property) (*models.InsertResult, error) {
	insertedID, err := s.propertyRepo.Create(ctx, property)
	if err != nil {
		return nil, err
	}

	s.audit.LogAction("create", "property", actorEmail(ctx), map[string]interface{}{
		"property_id": models.HexID(insertedID),
	})

	return &models.InsertResult{Acknowledged: true, InsertedID: insertedID}, nil
}

func (s *propertyService) UpdateProperty(ctx context.Context, id primitive.ObjectID, fields models.Document) (*models.UpdateResult, error) {
	matched, modified, err := s.propertyRepo.Update(ctx, id, models.StripID(fields))
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("property %s: %w", id.Hex(), ErrNotFound)
	}

	s.audit.LogAction("update", "property", actorEmail(ctx), map[string]interface{}{
		"property_id": id.Hex(),
		"modified":    modified,
	})

	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: modified,
		Message:       "Property updated successfully",
	}, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	deleted, err := s.propertyRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == 0 {
		return nil, fmt.Errorf("property %s: %w", id.Hex(), ErrNotFound)
	}

	s.audit.LogAction("delete", "property", actorEmail(ctx), map[string]interface{}{
		"property_id": id.Hex(),
	})

	return &models.DeleteResult{
		Acknowledged: true,
		DeletedCount: deleted,
		Message:      "Property deleted successfully",
	}, nil
}
