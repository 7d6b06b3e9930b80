package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WNjihia/home-showcase/internal/services"
)

// RestPropertyHandler handles REST requests for the showcase property.
type RestPropertyHandler struct {
	propertyService services.IPropertyService
}

// NewRestPropertyHandler creates a new RestPropertyHandler.
func NewRestPropertyHandler(propertyService services.IPropertyService) *RestPropertyHandler {
	return &RestPropertyHandler{propertyService: propertyService}
}

// GetProperty handles GET /api/property
func (h *RestPropertyHandler) GetProperty(c *gin.Context) {
	property, err := h.propertyService.FindDefaultProperty(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve property"})
		}
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetPropertyWithRooms handles GET /api/property/full
func (h *RestPropertyHandler) GetPropertyWithRooms(c *gin.Context) {
	property, err := h.propertyService.FindDefaultPropertyWithRooms(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		} else {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve property"})
		}
		return
	}

	c.JSON(http.StatusOK, property)
}
