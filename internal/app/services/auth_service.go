package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/IndiraMehta/EduTask/internal/app/models"
	"github.com/IndiraMehta/EduTask/internal/app/models/dto"
	"github.com/IndiraMehta/EduTask/internal/app/repositories"
	"github.com/IndiraMehta/EduTask/internal/pkg/apperrors"
	"github.com/IndiraMehta/EduTask/internal/pkg/auth"
	"github.com/IndiraMehta/EduTask/internal/pkg/logger"
)

// AuthService handles registration, login and token refresh
type AuthService struct {
	identityRepo *repositories.IdentityRepository
	jwtService   *auth.JWTService
}

// NewAuthService creates a new AuthService instance
func NewAuthService(identityRepo *repositories.IdentityRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		identityRepo: identityRepo,
		jwtService:   jwtService,
	}
}

// Register creates a new identity and returns its first token pair.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	identity := &models.Identity{
		UID:          uuid.New().String(),
		Email:        req.Email,
		PasswordHash: passwordHash,
	}

	identityID, err := s.identityRepo.Create(ctx, identity)
	if err != nil {
		return nil, err
	}
	identity.ID = identityID

	logger.Info().Str("uid", identity.UID).Msg("Identity registered")
	return s.issueTokens(ctx, identity)
}

// Login verifies credentials and returns a fresh token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	identity, err := s.identityRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(identity.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, identity)
}

// RefreshToken exchanges a valid refresh token for a new pair. The used
// token is revoked so each refresh token works exactly once.
func (s *AuthService) RefreshToken(ctx context.Context, token string) (*dto.TokenResponse, error) {
	stored, err := s.identityRepo.GetRefreshToken(ctx, token)
	if err != nil {
		return nil, err
	}

	identity, err := s.identityRepo.GetByID(ctx, stored.IdentityID)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, apperrors.ErrTokenInvalid
	}

	if err := s.identityRepo.RevokeRefreshToken(ctx, token); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, identity)
}

func (s *AuthService) issueTokens(ctx context.Context, identity *models.Identity) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(identity.UID, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.identityRepo.SaveRefreshToken(ctx, identity.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}
