package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-service/internal/dto"
	"venue-service/internal/service"
	"venue-service/pkg/response"
)

// TourHandler handles tour HTTP requests
type TourHandler struct {
	tourService service.TourService
}

// NewTourHandler creates a new TourHandler
func NewTourHandler(tourService service.TourService) *TourHandler {
	return &TourHandler{tourService: tourService}
}

// List handles GET /api/tours
func (h *TourHandler) List(c *gin.Context) {
	tours, err := h.tourService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToursFromDomain(tours))
}

// Create handles POST /api/tours
func (h *TourHandler) Create(c *gin.Context) {
	var req dto.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "tipo, fechaInicio and duracion are required")
		return
	}

	tour, err := req.ToDomain()
	if err != nil {
		handleError(c, err)
		return
	}

	id, err := h.tourService.Create(c.Request.Context(), tour)
	if err != nil {
		handleError(c, err)
		return
	}
	response.CreatedID(c, id, "Tour scheduled")
}
