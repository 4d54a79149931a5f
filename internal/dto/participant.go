package dto

import "venue-service/internal/domain"

// RegisterRequest is the payload for registering a participant
type RegisterRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Correo   string `json:"correo"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	IDRol    *int64 `json:"idRol"`
}

// UpdateParticipantRequest is the payload for updating a participant
type UpdateParticipantRequest struct {
	Nombre         string `json:"nombre" binding:"required"`
	Correo         string `json:"correo"`
	ConexionActiva bool   `json:"conexionActiva"`
}

// ParticipantResponse is a participant row in API responses. TourType
// carries the booked tour's type and UbicacionActual the avatar's
// current zone name; both are null when unset.
type ParticipantResponse struct {
	IDParticipante  int64   `json:"idParticipante"`
	Nombre          string  `json:"nombre"`
	Correo          string  `json:"correo"`
	Username        string  `json:"username"`
	ConexionActiva  bool    `json:"conexionActiva"`
	IDRecorrido     *int64  `json:"idRecorrido"`
	TourType        *string `json:"tourType"`
	UbicacionActual *string `json:"ubicacionActual"`
}

// ParticipantFromDomain converts a domain ParticipantInfo row
func ParticipantFromDomain(p *domain.ParticipantInfo) *ParticipantResponse {
	return &ParticipantResponse{
		IDParticipante:  p.ID,
		Nombre:          p.Name,
		Correo:          p.Email,
		Username:        p.Username,
		ConexionActiva:  p.ConnectionActive,
		IDRecorrido:     p.TourID,
		TourType:        p.TourType,
		UbicacionActual: p.CurrentZone,
	}
}

// ParticipantsFromDomain converts a slice of listing rows
func ParticipantsFromDomain(rows []*domain.ParticipantInfo) []*ParticipantResponse {
	out := make([]*ParticipantResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, ParticipantFromDomain(p))
	}
	return out
}
