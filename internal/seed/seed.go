package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/upgoma/upg-portal/internal/app/repositories"
	"github.com/upgoma/upg-portal/internal/config"
	"github.com/upgoma/upg-portal/internal/pkg/auth"
)

// CreateDefaultData ensures the administrator account exists. The
// portal has exactly one publishing identity, configured by address and
// password.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)

	exists, err := adminRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin account exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin account already exists, skipping creation")
		return nil
	}

	if cfg.Admin.Password == "" {
		lgr.Warn().Str("email", cfg.Admin.Email).Msg("No admin password configured, login will be impossible until one is set")
		return nil
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Creating admin account...")

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	id, err := adminRepo.Create(ctx, &repositories.Admin{Email: cfg.Admin.Email, PasswordHash: hash})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Int64("adminID", id).Msg("Admin account created successfully")
	return nil
}
