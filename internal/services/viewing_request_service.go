package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/WNjihia/home-showcase/internal/models"
	"github.com/WNjihia/home-showcase/internal/validation"
)

// MaxListLimit caps the page size of viewing request listings regardless of
// what the caller asks for.
const MaxListLimit = 100

// IViewingRequestService defines the interface for viewing request operations.
type IViewingRequestService interface {
	CreateViewingRequest(ctx context.Context, input validation.ViewingRequestInput) (*models.ViewingRequest, error)
	ListViewingRequests(ctx context.Context, propertyID *uint, skip, limit int) ([]models.ViewingRequest, int64, error)
	UpdateViewingRequestStatus(ctx context.Context, id uint, status string) (*models.ViewingRequest, error)
}

// viewingRequestService implements IViewingRequestService.
type viewingRequestService struct {
	db *gorm.DB
}

// NewViewingRequestService creates a new ViewingRequestService.
func NewViewingRequestService(db *gorm.DB) IViewingRequestService {
	return &viewingRequestService{db: db}
}

// CreateViewingRequest validates the submission, verifies the parent property
// exists and inserts the request with status "pending" and a server-assigned
// creation timestamp. Validation failure or a missing property means nothing
// is written.
func (s *viewingRequestService) CreateViewingRequest(ctx context.Context, input validation.ViewingRequestInput) (*models.ViewingRequest, error) {
	if errs := validation.ValidateViewingRequest(input, time.Now()); errs != nil {
		return nil, errs
	}

	request := &models.ViewingRequest{
		PropertyID:    input.PropertyID,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone, // stored as submitted, not the normalized form
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Message:       input.Message,
		Status:        models.StatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Property{}).Where("id = ?", input.PropertyID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check property %d: %w", input.PropertyID, err)
		}
		if count == 0 {
			return ErrPropertyNotFound
		}
		return tx.Create(request).Error
	})
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to create viewing request: %w", err)
	}
	return request, nil
}

// ListViewingRequests returns one page of viewing requests, most recent
// first, plus the total count of the filtered set before pagination.
// A nil propertyID lists requests across all properties.
func (s *viewingRequestService) ListViewingRequests(ctx context.Context, propertyID *uint, skip, limit int) ([]models.ViewingRequest, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.ViewingRequest{})
	if propertyID != nil {
		query = query.Where("property_id = ?", *propertyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count viewing requests: %w", err)
	}

	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	requests := []models.ViewingRequest{}
	err := query.
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list viewing requests: %w", err)
	}
	return requests, total, nil
}

// UpdateViewingRequestStatus sets the status of an existing request. The new
// status is checked against the allowed set before the store is touched, so
// an invalid value can never be persisted. Re-applying the current status is
// a valid no-op update.
func (s *viewingRequestService) UpdateViewingRequestStatus(ctx context.Context, id uint, status string) (*models.ViewingRequest, error) {
	if fe := validation.ValidateStatus(status); fe != nil {
		return nil, validation.Errors{*fe}
	}

	var request models.ViewingRequest
	err := s.db.WithContext(ctx).First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrViewingRequestNotFound
		}
		return nil, fmt.Errorf("failed to find viewing request %d: %w", id, err)
	}

	request.Status = status
	if err := s.db.WithContext(ctx).Model(&request).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update viewing request %d: %w", id, err)
	}
	return &request, nil
}
