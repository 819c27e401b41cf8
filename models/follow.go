package models

import (
	"time"

	"github.com/google/uuid"
)

// Follow is a directed edge in the social graph: FollowingUserID follows
// FollowedUserID. The edge has no identity of its own — the pair is the
// primary key, with the follower listed first because "who do I follow"
// is the dominant query.
type Follow struct {
	FollowingUserID uuid.UUID `json:"following_user_id"`
	FollowedUserID  uuid.UUID `json:"followed_user_id"`

	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt exists for schema uniformity only; a follow edge has
	// nothing to mutate, so any non-null value signals an unexpected
	// write path.
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Follow model.
func (f Follow) TableName() string {
	return "follow"
}
