package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/app/repositories"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
)

// NewsStore is the record-store contract the feed depends on.
type NewsStore interface {
	GetAll(ctx context.Context) ([]repositories.NewsRecord, error)
	GetByID(ctx context.Context, id string) (*repositories.NewsRecord, error)
	Insert(ctx context.Context, rec *repositories.NewsRecord) error
	IncrementViews(ctx context.Context, id string) error
}

// NewsService drives the public feed: it lists items with the bundled
// fallback and publishes new ones, resynchronizing from the store.
type NewsService interface {
	List(ctx context.Context) []models.NewsItem
	Get(ctx context.Context, id string) (*models.NewsItem, error)
	Publish(ctx context.Context, item *models.NewsItem) ([]models.NewsItem, error)
}

type newsService struct {
	store  NewsStore // nil when the record store is not configured
	logger zerolog.Logger
}

// NewNewsService creates a news service. A nil store puts the feed in
// permanent fallback mode.
func NewNewsService(store NewsStore, logger zerolog.Logger) NewsService {
	return &newsService{store: store, logger: logger}
}

// List returns all feed items ordered by publish date descending. An
// unconfigured store, a query error or an empty result all yield the
// bundled fallback list in its fixed order.
func (s *newsService) List(ctx context.Context) []models.NewsItem {
	if s.store == nil {
		return models.FallbackNews
	}

	records, err := s.store.GetAll(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("News fetch failed, serving bundled fallback")
		return models.FallbackNews
	}
	if len(records) == 0 {
		return models.FallbackNews
	}

	items := make([]models.NewsItem, 0, len(records))
	for _, rec := range records {
		items = append(items, mapNewsRecord(rec))
	}
	return items
}

// Get returns a single item and bumps its view counter best-effort.
func (s *newsService) Get(ctx context.Context, id string) (*models.NewsItem, error) {
	if s.store == nil {
		for _, item := range models.FallbackNews {
			if item.ID == id {
				return &item, nil
			}
		}
		return nil, fmt.Errorf("news item %s: %w", id, apperrors.ErrNewsNotFound)
	}

	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.IncrementViews(ctx, id); err != nil {
		s.logger.Warn().Err(err).Str("newsID", id).Msg("Failed to increment view counter")
	}

	item := mapNewsRecord(*rec)
	return &item, nil
}

// Publish inserts the item with the current timestamp as publish date
// and re-fetches the whole list from the source of truth; there is no
// optimistic local insert. A nil store makes this a no-op.
func (s *newsService) Publish(ctx context.Context, item *models.NewsItem) ([]models.NewsItem, error) {
	if s.store == nil {
		return nil, nil
	}

	rec := repositories.NewsRecord{
		ID:          item.ID,
		Title:       item.Title,
		Content:     item.Content,
		Category:    string(item.Category),
		PublishDate: time.Now(),
	}
	if item.Author != "" {
		rec.Author = &item.Author
	}
	if item.Image != "" {
		rec.ImageURL = &item.Image
	}

	if err := s.store.Insert(ctx, &rec); err != nil {
		return nil, err
	}

	return s.List(ctx), nil
}

// mapNewsRecord applies the feed defaults: institutional author,
// placeholder image and a short localized date.
func mapNewsRecord(rec repositories.NewsRecord) models.NewsItem {
	author := models.DefaultAuthor
	if rec.Author != nil && *rec.Author != "" {
		author = *rec.Author
	}

	image := models.DefaultNewsImage
	if rec.ImageURL != nil && *rec.ImageURL != "" {
		image = *rec.ImageURL
	}

	return models.NewsItem{
		ID:          rec.ID,
		Title:       rec.Title,
		Content:     rec.Content,
		Author:      author,
		Category:    models.NewsCategory(rec.Category),
		Date:        formatFrenchDate(rec.PublishDate),
		Image:       image,
		Views:       rec.Views,
		PublishDate: rec.PublishDate,
	}
}

var frenchMonths = [...]string{
	"Jan", "Fév", "Mar", "Avr", "Mai", "Juin",
	"Juil", "Août", "Sep", "Oct", "Nov", "Déc",
}

// formatFrenchDate renders a publish date as the short day/month/year
// form used on the site, e.g. "15 Oct 2025".
func formatFrenchDate(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}
