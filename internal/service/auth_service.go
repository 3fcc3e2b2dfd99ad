package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/studenthub/examgate/config"
	"github.com/studenthub/examgate/internal/auth"
	"github.com/studenthub/examgate/internal/dto"
	"github.com/studenthub/examgate/internal/examapi"
	"github.com/studenthub/examgate/internal/model"
	"github.com/studenthub/examgate/internal/repository"
)

// AuthService logs users in against the remote API, keeps their identity
// record (with the remote bearer token) in the local store, and exchanges it
// for a gateway session token.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)
	Logout(key string) error
	// Authenticate resolves a gateway token into the explicit auth context
	// used by everything downstream.
	Authenticate(token string) (*auth.Context, error)
	// Clear drops the identity after the remote API answered 401; the next
	// request then fails authentication and the UI redirects to login.
	Clear(key string)
}

type authService struct {
	client       examapi.Client
	identityRepo repository.IdentityRepository
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewAuthService(cfg *config.Config, client examapi.Client, identityRepo repository.IdentityRepository) AuthService {
	return &authService{
		client:       client,
		identityRepo: identityRepo,
		jwtSecret:    cfg.Auth.JWTSecret,
		tokenTTL:     time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	result, err := s.client.Login(ctx, username, password)
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("Remote login failed")
		return nil, err
	}

	identity := &model.Identity{
		Key:         uuid.NewString(),
		Name:        result.Name,
		Role:        result.Role,
		RemoteToken: result.Token,
	}
	if err := s.identityRepo.Create(identity); err != nil {
		return nil, fmt.Errorf("storing identity: %w", err)
	}

	token, err := auth.IssueToken(s.jwtSecret, identity.Key, identity.Name, identity.Role, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	log.Info().Str("name", identity.Name).Str("role", identity.Role).Msg("User logged in")
	return &dto.LoginResponse{Token: token, Name: identity.Name, Role: identity.Role}, nil
}

func (s *authService) Logout(key string) error {
	if err := s.identityRepo.DeleteByKey(key); err != nil {
		return fmt.Errorf("clearing identity: %w", err)
	}
	return nil
}

func (s *authService) Authenticate(token string) (*auth.Context, error) {
	key, err := auth.ParseToken(s.jwtSecret, token)
	if err != nil {
		return nil, err
	}
	identity, err := s.identityRepo.FindByKey(key)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Context{
		Key:         identity.Key,
		Name:        identity.Name,
		Role:        identity.Role,
		RemoteToken: identity.RemoteToken,
	}, nil
}

func (s *authService) Clear(key string) {
	if err := s.identityRepo.DeleteByKey(key); err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to clear identity after remote 401")
	}
}
