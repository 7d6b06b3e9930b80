package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/WNjihia/home-showcase/internal/api/handlers"
	"github.com/WNjihia/home-showcase/internal/models"
	"github.com/WNjihia/home-showcase/internal/services"
)

func setupRoomRouter(mockRoomSvc *MockRoomService, mockPropertySvc *MockPropertyService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewRestRoomHandler(mockRoomSvc, mockPropertySvc)
	r := gin.New()
	r.GET("/api/rooms", handler.ListRooms)
	r.GET("/api/rooms/:id", handler.GetRoomByID)
	return r
}

func TestRestRoomHandler_ListRooms_ExplicitProperty(t *testing.T) {
	mockRoomSvc := new(MockRoomService)
	mockPropertySvc := new(MockPropertyService)
	r := setupRoomRouter(mockRoomSvc, mockPropertySvc)

	expected := []models.Room{
		{ID: 1, PropertyID: 2, Name: "Living Room", RoomType: "living", DisplayOrder: 1},
		{ID: 2, PropertyID: 2, Name: "Kitchen", RoomType: "kitchen", DisplayOrder: 2},
	}
	mockRoomSvc.On("FindRoomsByPropertyID", mock.Anything, uint(2)).Return(expected, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/rooms?property_id=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var respBody []models.Room
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Len(t, respBody, 2)
	assert.Equal(t, "Living Room", respBody[0].Name)

	// The default property is never resolved when property_id is given.
	mockPropertySvc.AssertNotCalled(t, "FindDefaultProperty", mock.Anything)
	mockRoomSvc.AssertExpectations(t)
}

func TestRestRoomHandler_ListRooms_DefaultsToShowcaseProperty(t *testing.T) {
	mockRoomSvc := new(MockRoomService)
	mockPropertySvc := new(MockPropertyService)
	r := setupRoomRouter(mockRoomSvc, mockPropertySvc)

	property := &models.Property{ID: 1, Address: "Nijlanstate 54"}
	mockPropertySvc.On("FindDefaultProperty", mock.Anything).Return(property, nil)
	mockRoomSvc.On("FindRoomsByPropertyID", mock.Anything, uint(1)).Return([]models.Room{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	mockPropertySvc.AssertExpectations(t)
	mockRoomSvc.AssertExpectations(t)
}

func TestRestRoomHandler_ListRooms_NoPropertyResolvable(t *testing.T) {
	mockRoomSvc := new(MockRoomService)
	mockPropertySvc := new(MockPropertyService)
	r := setupRoomRouter(mockRoomSvc, mockPropertySvc)

	mockPropertySvc.On("FindDefaultProperty", mock.Anything).Return(nil, services.ErrPropertyNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/rooms", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No property found")

	mockPropertySvc.AssertExpectations(t)
}

func TestRestRoomHandler_ListRooms_InvalidPropertyID(t *testing.T) {
	mockRoomSvc := new(MockRoomService)
	mockPropertySvc := new(MockPropertyService)
	r := setupRoomRouter(mockRoomSvc, mockPropertySvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/rooms?property_id=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRestRoomHandler_GetRoomByID_Success(t *testing.T) {
	mockRoomSvc := new(MockRoomService)
	mockPropertySvc := new(MockPropertyService)
	r := setupRoomRouter(mockRoomSvc, mockPropertySvc)

	expected := &models.Room{ID: 3, PropertyID: 1, Name: "Bathroom", RoomType: "bathroom"}
	mockRoomSvc.On("FindRoomByID", mock.Anything, uint(3)).Return(expected, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/rooms/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var respBody models.Room
	err := json.Unmarshal(w.Body.Bytes(), &respBody)
	assert.NoError(t, err)
	assert.Equal(t, "Bathroom", respBody.Name)

	mockRoomSvc.AssertExpectations(t)
}

func TestRestRoomHandler_GetRoomByID_NotFound(t *testing.T) {
	mockRoomSvc := new(MockRoomService)
	mockPropertySvc := new(MockPropertyService)
	r := setupRoomRouter(mockRoomSvc, mockPropertySvc)

	mockRoomSvc.On("FindRoomByID", mock.Anything, uint(42)).Return(nil, services.ErrRoomNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/rooms/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Room not found")

	mockRoomSvc.AssertExpectations(t)
}

func TestRestRoomHandler_GetRoomByID_InvalidID(t *testing.T) {
	mockRoomSvc := new(MockRoomService)
	mockPropertySvc := new(MockPropertyService)
	r := setupRoomRouter(mockRoomSvc, mockPropertySvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/rooms/abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
