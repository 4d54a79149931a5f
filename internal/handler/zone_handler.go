package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-service/internal/dto"
	"venue-service/internal/service"
	"venue-service/pkg/response"
)

// ZoneHandler handles zone HTTP requests
type ZoneHandler struct {
	zoneService service.ZoneService
}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler(zoneService service.ZoneService) *ZoneHandler {
	return &ZoneHandler{zoneService: zoneService}
}

// List handles GET /api/zones
func (h *ZoneHandler) List(c *gin.Context) {
	zones, err := h.zoneService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ZonesFromDomain(zones))
}

// Create handles POST /api/zones
func (h *ZoneHandler) Create(c *gin.Context) {
	var req dto.ZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nombre is required")
		return
	}

	id, err := h.zoneService.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		handleError(c, err)
		return
	}
	response.CreatedID(c, id, "Zone created")
}

// Update handles PUT /api/zones/:id
func (h *ZoneHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nombre is required")
		return
	}

	zone := req.ToDomain()
	zone.ID = id
	if err := h.zoneService.Update(c.Request.Context(), zone); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, "Zone updated")
}

// Delete handles DELETE /api/zones/:id
func (h *ZoneHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.zoneService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, "Zone deleted")
}
