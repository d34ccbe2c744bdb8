package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tubepick/internal/api/middleware"
	"tubepick/internal/api/v1/dto"
	"tubepick/internal/api/v1/services"
)

// FindHandler handles find workflow API endpoints
type FindHandler struct {
	service services.FindService
}

// NewFindHandler creates a new find handler
func NewFindHandler(service services.FindService) *FindHandler {
	return &FindHandler{
		service: service,
	}
}

// Find handles POST /api/v1/find
// Runs the search → filter → best-pick workflow for one query
func (h *FindHandler) Find(c *gin.Context) {
	var req dto.FindRequest
	if err := middleware.ValidateRequest(c, &req); err != nil {
		middleware.HandleError(c, err)
		return
	}

	resp, err := h.service.Find(c.Request.Context(), req.Query)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
