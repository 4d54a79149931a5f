package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"venue-service/internal/domain"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{Secret: "test-secret", TTL: time.Hour, Issuer: "venue-service"}
}

func addUser(t *testing.T, repo *MockParticipantRepository, username, password string, roleID int64) int64 {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	id := repo.nextID
	repo.AddParticipant(
		&domain.Participant{ID: id, Name: "User " + username, Username: username, PasswordHash: string(hash)},
		&domain.Avatar{ParticipantID: id, RoleID: roleID},
	)
	return id
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	repo := NewMockParticipantRepository()
	addUser(t, repo, "ana", "hunter2", domain.RoleAdmin)
	svc := NewAuthService(repo, testTokenConfig())

	user, token, err := svc.Login(ctx, "ana", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "ana" || user.RoleID != domain.RoleAdmin {
		t.Errorf("unexpected user: %+v", user)
	}
	if token == "" {
		t.Error("expected a signed token")
	}
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	repo := NewMockParticipantRepository()
	addUser(t, repo, "ana", "hunter2", domain.RoleExplorer)
	svc := NewAuthService(repo, testTokenConfig())

	_, _, err := svc.Login(ctx, "ana", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(NewMockParticipantRepository(), testTokenConfig())

	// An unknown username must be indistinguishable from a bad password.
	_, _, err := svc.Login(ctx, "nobody", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_TokenClaims(t *testing.T) {
	ctx := context.Background()
	repo := NewMockParticipantRepository()
	addUser(t, repo, "ana", "hunter2", domain.RoleExplorer)
	cfg := testTokenConfig()
	svc := NewAuthService(repo, cfg)

	_, tokenString, err := svc.Login(ctx, "ana", "hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token does not parse: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["username"] != "ana" {
		t.Errorf("unexpected username claim: %v", claims["username"])
	}
	if claims["iss"] != cfg.Issuer {
		t.Errorf("unexpected issuer claim: %v", claims["iss"])
	}
}
