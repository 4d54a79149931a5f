package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"venue-service/internal/domain"
	"venue-service/internal/repository"
)

// ParticipantService handles participant business logic
type ParticipantService interface {
	List(ctx context.Context) ([]*domain.ParticipantInfo, error)
	Register(ctx context.Context, p *domain.Participant, password string, roleID *int64) (int64, error)
	Update(ctx context.Context, p *domain.Participant) error
	Delete(ctx context.Context, id int64) error
}

type participantService struct {
	repo     repository.ParticipantRepository
	roleRepo repository.RoleRepository
}

// NewParticipantService creates a participant service
func NewParticipantService(repo repository.ParticipantRepository, roleRepo repository.RoleRepository) ParticipantService {
	return &participantService{repo: repo, roleRepo: roleRepo}
}

func (s *participantService) List(ctx context.Context) ([]*domain.ParticipantInfo, error) {
	return s.repo.List(ctx)
}

// Register hashes the password, resolves the avatar's role and creates
// participant plus avatar in one step. Without an explicit role the
// avatar starts as an explorer.
func (s *participantService) Register(ctx context.Context, p *domain.Participant, password string, roleID *int64) (int64, error) {
	if err := p.ValidateRegistration(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(password) == "" {
		return 0, domain.ErrInvalidPassword
	}

	role := domain.RoleExplorer
	if roleID != nil {
		exists, err := s.roleRepo.Exists(ctx, *roleID)
		if err != nil {
			return 0, err
		}
		if !exists {
			return 0, domain.ErrRoleNotFound
		}
		role = *roleID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	p.PasswordHash = string(hash)

	avatar := &domain.Avatar{
		Type:   domain.DefaultAvatarType,
		State:  domain.AvatarStateIdle,
		RoleID: role,
	}
	return s.repo.Register(ctx, p, avatar)
}

func (s *participantService) Update(ctx context.Context, p *domain.Participant) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.ErrInvalidName
	}
	return s.repo.Update(ctx, p)
}

func (s *participantService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
