package service

import (
	"context"

	"venue-service/internal/domain"
	"venue-service/internal/repository"
)

// RoleService exposes the role catalog
type RoleService interface {
	List(ctx context.Context) ([]*domain.Role, error)
}

type roleService struct {
	repo repository.RoleRepository
}

// NewRoleService creates a role service
func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

func (s *roleService) List(ctx context.Context) ([]*domain.Role, error) {
	return s.repo.List(ctx)
}
