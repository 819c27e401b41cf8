package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleFavorite records that a user likes an article. The pair is the
// primary key; there is no independent identity and no stored counter —
// favorites counts are always derived with count(*) so they cannot drift.
//
// Nothing prevents an author from favoriting their own article; that is a
// deliberate design decision, not an oversight.
type ArticleFavorite struct {
	ArticleID uuid.UUID `json:"article_id"`
	UserID    uuid.UUID `json:"user_id"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ArticleFavorite model.
func (f ArticleFavorite) TableName() string {
	return "article_favorite"
}
