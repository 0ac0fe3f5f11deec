package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
	"github.com/upgoma/upg-portal/internal/pkg/logger"
)

// NewsRecord is a raw feed row. Author and image are nullable in the
// store; defaults are applied by the service layer.
type NewsRecord struct {
	ID          string
	Title       string
	Content     string
	Author      *string
	Category    string
	ImageURL    *string
	PublishDate time.Time
	Views       int64
}

// NewsRepository handles news database operations
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new NewsRepository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves every news record ordered by publish date descending.
func (r *NewsRepository) GetAll(ctx context.Context) ([]NewsRecord, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "author", "category", "image_url", "publish_date", "views").
		From("news").
		OrderBy("publish_date DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all news SQL")
		return nil, fmt.Errorf("failed to build news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all news query")
		return nil, fmt.Errorf("error querying news: %w", err)
	}
	defer rows.Close()

	records := []NewsRecord{}
	for rows.Next() {
		var rec NewsRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.Author, &rec.Category, &rec.ImageURL, &rec.PublishDate, &rec.Views); err != nil {
			logger.Error().Err(err).Msg("Error scanning news row")
			return nil, fmt.Errorf("error scanning news row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating news rows")
		return nil, fmt.Errorf("error iterating news rows: %w", err)
	}

	return records, nil
}

// GetByID retrieves one news record.
func (r *NewsRepository) GetByID(ctx context.Context, id string) (*NewsRecord, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "author", "category", "image_url", "publish_date", "views").
		From("news").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get news by ID SQL")
		return nil, fmt.Errorf("failed to build news query: %w", err)
	}

	var rec NewsRecord
	err = r.db.QueryRow(ctx, sql, args...).Scan(&rec.ID, &rec.Title, &rec.Content, &rec.Author, &rec.Category, &rec.ImageURL, &rec.PublishDate, &rec.Views)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNewsNotFound
		}
		logger.Error().Err(err).Str("newsID", id).Msg("Error scanning news row")
		return nil, fmt.Errorf("error getting news by ID: %w", err)
	}

	return &rec, nil
}

// Insert writes a news record with the current timestamp as publish date.
func (r *NewsRepository) Insert(ctx context.Context, rec *NewsRecord) error {
	sql, args, err := r.sb.Insert("news").
		Columns("id", "title", "content", "author", "category", "image_url", "publish_date").
		Values(rec.ID, rec.Title, rec.Content, rec.Author, rec.Category, rec.ImageURL, rec.PublishDate).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert news SQL")
		return fmt.Errorf("failed to build insert news query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("newsID", rec.ID).Msg("Error executing insert news query")
		return fmt.Errorf("error inserting news: %w", err)
	}

	return nil
}

// IncrementViews bumps the view counter of one record. Missing records
// are not an error; the counter is informational only.
func (r *NewsRepository) IncrementViews(ctx context.Context, id string) error {
	sql, args, err := r.sb.Update("news").
		Set("views", squirrel.Expr("views + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build increment views query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error incrementing views: %w", err)
	}

	return nil
}
