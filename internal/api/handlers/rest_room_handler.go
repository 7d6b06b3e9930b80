package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WNjihia/home-showcase/internal/services"
)

// RestRoomHandler handles REST requests for rooms.
type RestRoomHandler struct {
	roomService     services.IRoomService
	propertyService services.IPropertyService
}

// NewRestRoomHandler creates a new RestRoomHandler.
func NewRestRoomHandler(roomService services.IRoomService, propertyService services.IPropertyService) *RestRoomHandler {
	return &RestRoomHandler{
		roomService:     roomService,
		propertyService: propertyService,
	}
}

// ListRooms handles GET /api/rooms
// Without a property_id query parameter the rooms of the showcase property
// are returned.
func (h *RestRoomHandler) ListRooms(c *gin.Context) {
	var propertyID uint

	if propertyIDStr := c.Query("property_id"); propertyIDStr != "" {
		parsed, err := strconv.ParseUint(propertyIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property_id format"})
			return
		}
		propertyID = uint(parsed)
	} else {
		property, err := h.propertyService.FindDefaultProperty(c.Request.Context())
		if err != nil {
			if errors.Is(err, services.ErrPropertyNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "No property found"})
			} else {
				_ = c.Error(err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve property"})
			}
			return
		}
		propertyID = property.ID
	}

	rooms, err := h.roomService.FindRoomsByPropertyID(c.Request.Context(), propertyID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rooms"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoomByID handles GET /api/rooms/:id
func (h *RestRoomHandler) GetRoomByID(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID format"})
		return
	}

	room, err := h.roomService.FindRoomByID(c.Request.Context(), uint(roomID))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve room"})
		}
		return
	}

	c.JSON(http.StatusOK, room)
}
