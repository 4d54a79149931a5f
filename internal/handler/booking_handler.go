package handler

import (
	"github.com/gin-gonic/gin"

	"venue-service/internal/dto"
	"venue-service/internal/service"
	"venue-service/pkg/response"
)

// BookingHandler handles booking and movement HTTP requests
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Book handles POST /api/book
func (h *BookingHandler) Book(c *gin.Context) {
	var req dto.BookTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "idParticipante and idRecorrido are required")
		return
	}

	if err := h.bookingService.BookTour(c.Request.Context(), req.IDParticipante, req.IDRecorrido); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, "Tour booked")
}

// Move handles POST /api/move
func (h *BookingHandler) Move(c *gin.Context) {
	var req dto.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "idParticipante and idZona are required")
		return
	}

	if err := h.bookingService.Move(c.Request.Context(), req.IDParticipante, req.IDZona); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, "Avatar moved")
}
