package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"venue-service/internal/domain"
	"venue-service/internal/dto"
	"venue-service/internal/service"
	"venue-service/pkg/response"
)

// ParticipantHandler handles participant HTTP requests
type ParticipantHandler struct {
	participantService service.ParticipantService
	roleService        service.RoleService
}

// NewParticipantHandler creates a new ParticipantHandler
func NewParticipantHandler(participantService service.ParticipantService, roleService service.RoleService) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
		roleService:        roleService,
	}
}

// List handles GET /api/participants
func (h *ParticipantHandler) List(c *gin.Context) {
	rows, err := h.participantService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ParticipantsFromDomain(rows))
}

// Register handles POST /api/participants
func (h *ParticipantHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nombre, username and password are required")
		return
	}

	p := &domain.Participant{
		Name:             req.Nombre,
		Email:            req.Correo,
		Username:         req.Username,
		ConnectionActive: true,
	}
	id, err := h.participantService.Register(c.Request.Context(), p, req.Password, req.IDRol)
	if err != nil {
		handleError(c, err)
		return
	}
	response.CreatedID(c, id, "Participant registered")
}

// Update handles PUT /api/participants/:id
func (h *ParticipantHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "nombre is required")
		return
	}

	p := &domain.Participant{
		ID:               id,
		Name:             req.Nombre,
		Email:            req.Correo,
		ConnectionActive: req.ConexionActiva,
	}
	if err := h.participantService.Update(c.Request.Context(), p); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, "Participant updated")
}

// Delete handles DELETE /api/participants/:id
func (h *ParticipantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.participantService.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, "Participant deleted")
}

// ListRoles handles GET /api/roles
func (h *ParticipantHandler) ListRoles(c *gin.Context) {
	roles, err := h.roleService.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RolesFromDomain(roles))
}
