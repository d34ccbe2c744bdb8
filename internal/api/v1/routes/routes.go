package routes

import (
	"github.com/gin-gonic/gin"

	"tubepick/internal/api/middleware"
	"tubepick/internal/api/v1/handlers"
	"tubepick/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, findService services.FindService) {
	router.Use(middleware.RequestID())

	findHandler := handlers.NewFindHandler(findService)
	router.POST("/find", findHandler.Find)
}
