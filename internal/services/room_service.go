package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/WNjihia/home-showcase/internal/models"
)

// IRoomService defines the interface for room operations.
type IRoomService interface {
	FindRoomByID(ctx context.Context, id uint) (*models.Room, error)
	FindRoomsByPropertyID(ctx context.Context, propertyID uint) ([]models.Room, error)
}

// roomService implements IRoomService.
type roomService struct {
	db *gorm.DB
}

// NewRoomService creates a new RoomService.
func NewRoomService(db *gorm.DB) IRoomService {
	return &roomService{db: db}
}

// FindRoomByID returns the room with the given ID.
func (s *roomService) FindRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	err := s.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to find room %d: %w", id, err)
	}
	return &room, nil
}

// FindRoomsByPropertyID returns every room belonging to the property, sorted
// by display order with the row ID breaking ties.
func (s *roomService) FindRoomsByPropertyID(ctx context.Context, propertyID uint) ([]models.Room, error) {
	rooms := []models.Room{}
	err := s.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("display_order ASC, id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms for property %d: %w", propertyID, err)
	}
	return rooms, nil
}
