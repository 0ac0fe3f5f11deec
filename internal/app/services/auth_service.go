package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/upgoma/upg-portal/internal/app/models/dto"
	"github.com/upgoma/upg-portal/internal/app/repositories"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
	"github.com/upgoma/upg-portal/internal/pkg/auth"
)

// AdminStore is the persistence contract for the administrator account.
type AdminStore interface {
	GetByEmail(ctx context.Context, email string) (*repositories.Admin, error)
}

// AuthService authenticates the single administrator account.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
}

type authService struct {
	adminEmail string
	store      AdminStore // nil when the record store is not configured
	jwt        *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates the auth service bound to the configured
// administrator address.
func NewAuthService(adminEmail string, store AdminStore, jwt *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{adminEmail: adminEmail, store: store, jwt: jwt, logger: logger}
}

// Login verifies the administrator credentials and issues a token.
// Every failure collapses into the same invalid-credentials error so
// the response never reveals which check rejected the attempt. A
// mismatched email is rejected locally before any store access.
func (s *authService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	if email != s.adminEmail {
		return nil, apperrors.ErrInvalidCredentials
	}
	if s.store == nil {
		s.logger.Warn().Msg("Login attempted with no record store configured")
		return nil, apperrors.ErrInvalidCredentials
	}

	admin, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Admin lookup failed during login")
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(admin.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("Token generation failed")
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		Email:       admin.Email,
	}, nil
}
