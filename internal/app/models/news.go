package models

import "time"

// NewsCategory is the category label of a published item.
type NewsCategory string

const (
	CategoryNews         NewsCategory = "Actualité"
	CategoryEvent        NewsCategory = "Événement"
	CategoryAnnouncement NewsCategory = "Annonce"
)

// Valid reports whether the category is one of the published labels.
func (c NewsCategory) Valid() bool {
	switch c {
	case CategoryNews, CategoryEvent, CategoryAnnouncement:
		return true
	}
	return false
}

// NewsItem represents a published announcement on the public feed.
type NewsItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	Category    NewsCategory `json:"category"`
	Date        string       `json:"date"`
	Image       string       `json:"image,omitempty"`
	Views       int64        `json:"views,omitempty"`
	PublishDate time.Time    `json:"-"`
}
