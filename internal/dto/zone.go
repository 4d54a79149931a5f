package dto

import "venue-service/internal/domain"

// ZoneRequest is the payload for creating or updating a zone
type ZoneRequest struct {
	Nombre      string `json:"nombre" binding:"required"`
	Descripcion string `json:"descripcion"`
	EsPrivada   bool   `json:"esPrivada"`
}

// ToDomain converts the request to a domain Zone
func (r *ZoneRequest) ToDomain() *domain.Zone {
	return &domain.Zone{
		Name:        r.Nombre,
		Description: r.Descripcion,
		IsPrivate:   r.EsPrivada,
	}
}

// ZoneResponse is a zone in API responses
type ZoneResponse struct {
	IDZona      int64  `json:"idZona"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	EsPrivada   bool   `json:"esPrivada"`
}

// ZoneFromDomain converts a domain Zone to its API representation
func ZoneFromDomain(z *domain.Zone) *ZoneResponse {
	return &ZoneResponse{
		IDZona:      z.ID,
		Nombre:      z.Name,
		Descripcion: z.Description,
		EsPrivada:   z.IsPrivate,
	}
}

// ZonesFromDomain converts a slice of domain Zones
func ZonesFromDomain(zones []*domain.Zone) []*ZoneResponse {
	out := make([]*ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, ZoneFromDomain(z))
	}
	return out
}
