package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"oilsaas/internal/auth"
	apperrors "oilsaas/internal/errors"
	"oilsaas/internal/model"
)

// AuthResult is the response shape shared by sign-up and sign-in.
type AuthResult struct {
	UserID  string
	Name    string
	Email   string
	Company string
	Token   string
}

// AuthService handles the demo authentication flow. No session state is kept:
// the token is a deterministic digest, documented as non-verifiable.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password, company string) (*AuthResult, error)
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
}

type authService struct {
	store DocumentStore
	log   zerolog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(store DocumentStore, log zerolog.Logger) AuthService {
	return &authService{store: store, log: log}
}

// SignUp registers a new user. Email uniqueness is enforced by a pre-check
// query, not a store constraint: concurrent signups with the same email can
// race. Accepted for this system.
func (s *authService) SignUp(ctx context.Context, name, email, password, company string) (*AuthResult, error) {
	existing, err := s.store.GetDocuments(ctx, model.CollectionUserAuth, map[string]interface{}{"email": email}, 0)
	if err != nil {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if len(existing) > 0 {
		return nil, apperrors.ErrEmailTaken
	}

	user := model.UserAuth{
		Name:         name,
		Email:        email,
		PasswordHash: auth.HashPassword(password),
		Company:      company,
		Role:         model.RoleUser,
	}
	id, err := s.store.CreateDocument(ctx, model.CollectionUserAuth, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", id).Msg("user signed up")
	return &AuthResult{
		UserID:  id,
		Name:    name,
		Email:   email,
		Company: company,
		Token:   auth.DeriveToken(email, id),
	}, nil
}

// SignIn verifies the password digest against the stored one and recomputes
// the same token formula as sign-up.
func (s *authService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	users, err := s.store.GetDocuments(ctx, model.CollectionUserAuth, map[string]interface{}{"email": email}, 0)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if len(users) == 0 {
		return nil, apperrors.ErrUserNotFound
	}

	doc := users[0]
	hash, _ := doc["password_hash"].(string)
	if hash != auth.HashPassword(password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	id, _ := doc["id"].(string)
	storedEmail, _ := doc["email"].(string)
	name, _ := doc["name"].(string)
	company, _ := doc["company"].(string)

	return &AuthResult{
		UserID:  id,
		Name:    name,
		Email:   storedEmail,
		Company: company,
		Token:   auth.DeriveToken(storedEmail, id),
	}, nil
}
