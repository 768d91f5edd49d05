package models

import (
	"time"

	"github.com/content-comments-api/internal/markdown"
)

// Article represents a content item that comments attach to
type Article struct {
	ID          string     `json:"id" db:"id"`
	Slug        string     `json:"slug" db:"slug"`
	Title       string     `json:"title" db:"title"`
	Body        string     `json:"body,omitempty" db:"body"`
	AuthorID    string     `json:"author_id,omitempty" db:"author_id"`
	Tags        []string   `json:"tags" db:"-"` // Stored as JSON string in DB
	Status      string     `json:"status" db:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// Article statuses
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// ValidStatuses defines allowed article statuses
var ValidStatuses = map[string]bool{
	StatusDraft:     true,
	StatusPublished: true,
}

// RenderedArticle is an article prepared for display: the body has
// inline citations rewritten, and the trailing reference section is
// split out into a sorted table plus rendered HTML. The embedded
// article's Body is cleared; Body below is the processed text.
type RenderedArticle struct {
	Article           Article              `json:"article"`
	Body              string               `json:"body"`
	References        []markdown.Reference `json:"references"`
	ReferenceListHTML string               `json:"reference_list_html,omitempty"`
}

// ArticlePage is one page of an article listing
type ArticlePage struct {
	Items     []Article `json:"items"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	PageCount int       `json:"page_count"`
	Total     int       `json:"total"`
}
