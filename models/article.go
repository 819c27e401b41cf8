package models

import (
	"time"

	"github.com/google/uuid"
)

// Article is authored content: a slug-addressed post with an inline,
// denormalized tag list.
type Article struct {
	// ArticleID is the immutable unique identifier of the article.
	ArticleID uuid.UUID `json:"-"`

	// UserID is the owning author. Deleting the author deletes the
	// article and everything hanging off it.
	UserID uuid.UUID `json:"-"`

	// Slug is derived from the title at publish time and globally unique.
	// It is treated as immutable after creation: changing it would break
	// existing permalinks.
	Slug string `json:"slug"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`

	// TagList is stored inline on the article rather than in a separate
	// tag table. "Articles with tag X" is index-accelerated; "all
	// distinct tags" requires a full scan — an accepted tradeoff at the
	// target data volume.
	TagList []string `json:"tag_list"`

	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is always populated for articles (unlike Follow and
	// ArticleFavorite): it defaults to the creation time and is
	// refreshed by the database trigger on every real change.
	UpdatedAt time.Time `json:"updated_at"`
}

// ArticleUpdate describes a partial update of an article. Nil fields are
// left untouched. The slug is deliberately absent: permalinks outlive
// retitles.
type ArticleUpdate struct {
	ArticleID   uuid.UUID
	Title       *string
	Description *string
	Body        *string
	TagList     []string
}

// IsEmpty reports whether the update carries no column changes at all.
func (a ArticleUpdate) IsEmpty() bool {
	return a.Title == nil && a.Description == nil && a.Body == nil &&
		a.TagList == nil
}

// TableName returns the name of the database table
// associated with the Article model.
func (a Article) TableName() string {
	return "article"
}
