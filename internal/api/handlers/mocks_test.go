package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/WNjihia/home-showcase/internal/models"
	"github.com/WNjihia/home-showcase/internal/validation"
)

// --- Mocks ---

// MockPropertyService
type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) FindPropertyByID(ctx context.Context, id uint) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) FindDefaultProperty(ctx context.Context) (*models.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) FindDefaultPropertyWithRooms(ctx context.Context) (*models.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

// MockRoomService
type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) FindRoomByID(ctx context.Context, id uint) (*models.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Room), args.Error(1)
}

func (m *MockRoomService) FindRoomsByPropertyID(ctx context.Context, propertyID uint) ([]models.Room, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Room), args.Error(1)
}

// MockViewingRequestService
type MockViewingRequestService struct {
	mock.Mock
}

func (m *MockViewingRequestService) CreateViewingRequest(ctx context.Context, input validation.ViewingRequestInput) (*models.ViewingRequest, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ViewingRequest), args.Error(1)
}

func (m *MockViewingRequestService) ListViewingRequests(ctx context.Context, propertyID *uint, skip, limit int) ([]models.ViewingRequest, int64, error) {
	args := m.Called(ctx, propertyID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.ViewingRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockViewingRequestService) UpdateViewingRequestStatus(ctx context.Context, id uint, status string) (*models.ViewingRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ViewingRequest), args.Error(1)
}
