package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/WNjihia/home-showcase/internal/models"
)

// IPropertyService defines the interface for property operations.
type IPropertyService interface {
	FindPropertyByID(ctx context.Context, id uint) (*models.Property, error)
	FindDefaultProperty(ctx context.Context) (*models.Property, error)
	FindDefaultPropertyWithRooms(ctx context.Context) (*models.Property, error)
}

// propertyService implements IPropertyService.
type propertyService struct {
	db *gorm.DB
}

// NewPropertyService creates a new PropertyService.
func NewPropertyService(db *gorm.DB) IPropertyService {
	return &propertyService{db: db}
}

// FindPropertyByID returns the property with the given ID.
func (s *propertyService) FindPropertyByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find property %d: %w", id, err)
	}
	return &property, nil
}

// FindDefaultProperty returns the showcase property: the row with the lowest
// ID. Ordering is explicit so the choice stays deterministic regardless of
// store iteration order.
func (s *propertyService) FindDefaultProperty(ctx context.Context) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).Order("id ASC").First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find default property: %w", err)
	}
	return &property, nil
}

// FindDefaultPropertyWithRooms returns the showcase property with its rooms
// preloaded in display order.
func (s *propertyService) FindDefaultPropertyWithRooms(ctx context.Context) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC, id ASC")
		}).
		Order("id ASC").First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to find default property: %w", err)
	}
	if property.Rooms == nil {
		property.Rooms = []models.Room{}
	}
	return &property, nil
}
