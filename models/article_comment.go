package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleComment is a child record of an article.
//
// CommentID is an identity token only. Sequences under MVCC produce gaps
// and, with concurrent transactions, values that commit out of order —
// so display order is always by CreatedAt, with CommentID as a stable
// tie-break for sub-resolution timestamps.
type ArticleComment struct {
	CommentID int64     `json:"comment_id"`
	ArticleID uuid.UUID `json:"article_id"`
	UserID    uuid.UUID `json:"user_id"`

	Body string `json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ArticleComment model.
func (c ArticleComment) TableName() string {
	return "article_comment"
}
