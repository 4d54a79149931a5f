package dto

import "venue-service/internal/domain"

// RoleResponse is a role row in API responses
type RoleResponse struct {
	IDRol     int64  `json:"idRol"`
	NombreRol string `json:"nombreRol"`
}

// RolesFromDomain converts a slice of domain Roles
func RolesFromDomain(roles []*domain.Role) []*RoleResponse {
	out := make([]*RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, &RoleResponse{IDRol: r.ID, NombreRol: r.Name})
	}
	return out
}
