package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/pkg/logger"
)

// RegistrationRepository handles registration database operations
type RegistrationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *pgxpool.Pool) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert writes one registration record and returns its identifier.
func (r *RegistrationRepository) Insert(ctx context.Context, reg *models.Registration) (int64, error) {
	sql, args, err := r.sb.Insert("registrations").
		Columns(
			"first_name", "last_name", "middle_name",
			"email", "phone", "gender", "marital_status",
			"birth_date", "birth_place", "previous_school",
			"target_faculty", "target_department",
			"passport_photo_url", "academic_docs_url",
		).
		Values(
			reg.FirstName, reg.LastName, reg.MiddleName,
			reg.Email, reg.Phone, string(reg.Gender), string(reg.MaritalStatus),
			reg.BirthDate, reg.BirthPlace, reg.PreviousSchool,
			reg.TargetFaculty, reg.TargetDepartment,
			reg.PassportPhotoURL, reg.AcademicDocsURL,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert registration SQL")
		return 0, fmt.Errorf("failed to build insert registration query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("email", reg.Email).Msg("Error executing insert registration query")
		return 0, fmt.Errorf("error inserting registration: %w", err)
	}

	return id, nil
}

// CountByFaculty returns how many registrations target each faculty,
// used by the admin dashboard summary.
func (r *RegistrationRepository) CountByFaculty(ctx context.Context) (map[string]int64, error) {
	sql, args, err := r.sb.Select("target_faculty", "COUNT(*)").
		From("registrations").
		GroupBy("target_faculty").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build registration count query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying registration counts: %w", err)
	}
	defer rows.Close()

	counts := map[string]int64{}
	for rows.Next() {
		var faculty string
		var n int64
		if err := rows.Scan(&faculty, &n); err != nil {
			return nil, fmt.Errorf("error scanning registration count row: %w", err)
		}
		counts[faculty] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration count rows: %w", err)
	}

	return counts, nil
}
