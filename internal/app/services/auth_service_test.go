package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upgoma/upg-portal/internal/app/repositories"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
	"github.com/upgoma/upg-portal/internal/pkg/auth"
)

const adminEmail = "jacquesmasuruku2@gmail.com"

type fakeAdminStore struct {
	admin   *repositories.Admin
	lookups int
}

func (f *fakeAdminStore) GetByEmail(ctx context.Context, email string) (*repositories.Admin, error) {
	f.lookups++
	if f.admin == nil || f.admin.Email != email {
		return nil, apperrors.ErrResourceNotFound
	}
	return f.admin, nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "portal.upgoma.org",
	})
}

func storedAdmin(t *testing.T, password string) *repositories.Admin {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &repositories.Admin{ID: 1, Email: adminEmail, PasswordHash: hash}
}

func TestAuthLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		store := &fakeAdminStore{admin: storedAdmin(t, "s3cret")}
		jwt := testJWTService()
		svc := NewAuthService(adminEmail, store, jwt, zerolog.Nop())

		resp, err := svc.Login(ctx, adminEmail, "s3cret")
		require.NoError(t, err)
		assert.Equal(t, adminEmail, resp.Email)
		assert.Equal(t, 3600, resp.ExpiresIn)

		claims, err := jwt.ValidateToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, adminEmail, claims.Email)
	})

	t.Run("foreign email is rejected before any store access", func(t *testing.T) {
		store := &fakeAdminStore{admin: storedAdmin(t, "s3cret")}
		svc := NewAuthService(adminEmail, store, testJWTService(), zerolog.Nop())

		_, err := svc.Login(ctx, "someone@else.org", "s3cret")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Zero(t, store.lookups)
	})

	t.Run("wrong password collapses to invalid credentials", func(t *testing.T) {
		store := &fakeAdminStore{admin: storedAdmin(t, "s3cret")}
		svc := NewAuthService(adminEmail, store, testJWTService(), zerolog.Nop())

		_, err := svc.Login(ctx, adminEmail, "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("missing account collapses to invalid credentials", func(t *testing.T) {
		svc := NewAuthService(adminEmail, &fakeAdminStore{}, testJWTService(), zerolog.Nop())
		_, err := svc.Login(ctx, adminEmail, "s3cret")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("no store collapses to invalid credentials", func(t *testing.T) {
		svc := NewAuthService(adminEmail, nil, testJWTService(), zerolog.Nop())
		_, err := svc.Login(ctx, adminEmail, "s3cret")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
