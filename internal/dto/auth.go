package dto

import "venue-service/internal/domain"

// LoginRequest is the payload for authenticating a participant
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo is the authenticated user object the client keeps
type UserInfo struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Username string `json:"username"`
	Role     string `json:"role"`
	RoleID   int64  `json:"roleId"`
}

// LoginResponse is returned on successful authentication. Token is an
// access token clients may present on later requests; the user object
// alone preserves the original contract.
type LoginResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
	Token   string   `json:"token,omitempty"`
}

// LoginFailure is returned when credentials do not match
type LoginFailure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// UserFromDomain converts an authenticated user to its API form
func UserFromDomain(u *domain.AuthenticatedUser) UserInfo {
	return UserInfo{
		ID:       u.ID,
		Nombre:   u.Name,
		Username: u.Username,
		Role:     u.RoleName,
		RoleID:   u.RoleID,
	}
}
