package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository over one connection pool. Nil
// when the record store collaborator is not configured.
type Repositories struct {
	NewsRepository         *NewsRepository
	RegistrationRepository *RegistrationRepository
	AdminRepository        *AdminRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		NewsRepository:         NewNewsRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		AdminRepository:        NewAdminRepository(db),
	}
}
