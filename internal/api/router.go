package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/WNjihia/home-showcase/internal/api/handlers"
	"github.com/WNjihia/home-showcase/internal/api/middleware"
	"github.com/WNjihia/home-showcase/internal/config"
	"github.com/WNjihia/home-showcase/internal/services"
)

// SetupRouter configures and returns the main Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Initialize services needed by API handlers
	propertyService := services.NewPropertyService(db)
	roomService := services.NewRoomService(db)
	viewingService := services.NewViewingRequestService(db)

	r := gin.Default()

	// Apply global middleware first (order matters)
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RequestIDMiddleware())

	// Initialize handlers
	propertyHandler := handlers.NewRestPropertyHandler(propertyService)
	roomHandler := handlers.NewRestRoomHandler(roomService, propertyService)
	viewingHandler := handlers.NewRestViewingRequestHandler(viewingService)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		// Property routes
		apiGroup.GET("/property", propertyHandler.GetProperty)
		apiGroup.GET("/property/full", propertyHandler.GetPropertyWithRooms)

		// Room routes
		apiGroup.GET("/rooms", roomHandler.ListRooms)
		apiGroup.GET("/rooms/:id", roomHandler.GetRoomByID)

		// Viewing request routes
		apiGroup.POST("/viewing-requests", viewingHandler.CreateViewingRequest)
		apiGroup.GET("/viewing-requests", viewingHandler.ListViewingRequests)
		apiGroup.PATCH("/viewing-requests/:id/status", viewingHandler.UpdateViewingRequestStatus)
	}

	return r
}
