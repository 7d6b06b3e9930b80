package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WNjihia/home-showcase/internal/services"
	"github.com/WNjihia/home-showcase/internal/validation"
)

// RestViewingRequestHandler handles REST requests for viewing requests.
type RestViewingRequestHandler struct {
	viewingService services.IViewingRequestService
}

// NewRestViewingRequestHandler creates a new RestViewingRequestHandler.
func NewRestViewingRequestHandler(viewingService services.IViewingRequestService) *RestViewingRequestHandler {
	return &RestViewingRequestHandler{viewingService: viewingService}
}

// respondValidationError writes the 422 response carrying field-level detail.
func respondValidationError(c *gin.Context, errs validation.Errors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "validation failed",
		"details": errs,
	})
}

// CreateViewingRequest handles POST /api/viewing-requests
func (h *RestViewingRequestHandler) CreateViewingRequest(c *gin.Context) {
	var input validation.ViewingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	request, err := h.viewingService.CreateViewingRequest(c.Request.Context(), input)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			respondValidationError(c, verrs)
		case errors.Is(err, services.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create viewing request"})
		}
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListViewingRequests handles GET /api/viewing-requests
func (h *RestViewingRequestHandler) ListViewingRequests(c *gin.Context) {
	var errs validation.Errors

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		errs = append(errs, validation.FieldError{Field: "skip", Message: "must be a non-negative integer"})
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > services.MaxListLimit {
		errs = append(errs, validation.FieldError{Field: "limit", Message: "must be an integer between 1 and 100"})
	}

	var propertyID *uint
	if propertyIDStr := c.Query("property_id"); propertyIDStr != "" {
		parsed, err := strconv.ParseUint(propertyIDStr, 10, 64)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: "property_id", Message: "must be a positive integer"})
		} else {
			id := uint(parsed)
			propertyID = &id
		}
	}

	if len(errs) > 0 {
		respondValidationError(c, errs)
		return
	}

	requests, total, err := h.viewingService.ListViewingRequests(c.Request.Context(), propertyID, skip, limit)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list viewing requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"total":    total,
	})
}

// statusUpdateBody is the body of a status update call.
type statusUpdateBody struct {
	Status string `json:"status"`
}

// UpdateViewingRequestStatus handles PATCH /api/viewing-requests/:id/status
func (h *RestViewingRequestHandler) UpdateViewingRequestStatus(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid viewing request ID format"})
		return
	}

	var body statusUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	request, err := h.viewingService.UpdateViewingRequestStatus(c.Request.Context(), uint(requestID), body.Status)
	if err != nil {
		var verrs validation.Errors
		switch {
		case errors.As(err, &verrs):
			respondValidationError(c, verrs)
		case errors.Is(err, services.ErrViewingRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Viewing request not found"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update viewing request"})
		}
		return
	}

	c.JSON(http.StatusOK, request)
}
