package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"venue-service/internal/domain"
	"venue-service/internal/repository"
)

// AuthService handles authentication
type AuthService interface {
	// Login verifies the credentials and returns the authenticated user
	// together with a signed access token. A wrong username and a wrong
	// password both come back as ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.AuthenticatedUser, string, error)
}

// TokenConfig holds the settings for issued access tokens
type TokenConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

type authService struct {
	repo  repository.ParticipantRepository
	token TokenConfig
}

// NewAuthService creates an auth service
func NewAuthService(repo repository.ParticipantRepository, token TokenConfig) AuthService {
	return &authService{repo: repo, token: token}
}

func (s *authService) Login(ctx context.Context, username, password string) (*domain.AuthenticatedUser, string, error) {
	creds, err := s.repo.GetCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrParticipantNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(&creds.User)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return &creds.User, token, nil
}

func (s *authService) issueToken(user *domain.AuthenticatedUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      fmt.Sprintf("%d", user.ID),
		"username": user.Username,
		"role":     user.RoleName,
		"iss":      s.token.Issuer,
		"iat":      now.Unix(),
		"exp":      now.Add(s.token.TTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.token.Secret))
}
