package model

import (
	"strings"
	"time"
)

const (
	TableName  = "gallery_items"
	EntityName = "gallery"

	FieldID           = "id"
	FieldTitle        = "title"
	FieldCategory     = "category"
	FieldCaption      = "caption"
	FieldImageURL     = "image_url"
	FieldThumbnailURL = "thumbnail_url"
	FieldPosition     = "position"
	FieldCreatedAt    = "created_at"
)

const (
	// CategoryAll is the filter value that shows every item.
	CategoryAll  = "all"
	CategoryHero = "hero"
)

// Columns lists the selectable columns in scan order.
func Columns() []string {
	return []string{
		FieldID, FieldTitle, FieldCategory, FieldCaption,
		FieldImageURL, FieldThumbnailURL, FieldPosition, FieldCreatedAt,
	}
}

type Item struct {
	ID           string    `db:"id"`
	Title        string    `db:"title"`
	Category     string    `db:"category"`
	Caption      string    `db:"caption"`
	ImageURL     string    `db:"image_url"`
	ThumbnailURL string    `db:"thumbnail_url"`
	Position     int       `db:"position"`
	CreatedAt    time.Time `db:"created_at"`
}

// DisplayCaption falls back to the title when no caption was written.
func (i Item) DisplayCaption() string {
	if caption := strings.TrimSpace(i.Caption); caption != "" {
		return caption
	}

	return i.Title
}

// NormalizeCategory maps "" and "all" to the unfiltered view.
func NormalizeCategory(category string) string {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == CategoryAll {
		return ""
	}

	return category
}
