package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity: identity, credentials and public
// profile metadata. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the immutable unique identifier of the user.
	UserID uuid.UUID `json:"-"`

	// Username is unique case-insensitively; the original casing is
	// preserved for display.
	Username string `json:"username"`

	// Email is unique case-insensitively, same as Username.
	Email string `json:"email"`

	// Bio is free-form profile text. Never null: an absent bio is the
	// empty string.
	Bio string `json:"bio"`

	// Image is an optional avatar URL. Nil means the user has no image.
	Image *string `json:"image"`

	// PasswordHash stores the Argon2id-derived credential in PHC string
	// format. This value MUST be a derived value, never plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	// Set once at insert and never changed afterwards.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is nil until the row is mutated for the first time.
	// It is refreshed by the database trigger on every real change.
	UpdatedAt *time.Time `json:"updated_at"`
}

// UserUpdate describes a partial update of a user. Nil fields are left
// untouched by the persistence layer.
type UserUpdate struct {
	UserID       uuid.UUID
	Username     *string
	Email        *string
	Bio          *string
	Image        *string
	PasswordHash *string
}

// IsEmpty reports whether the update carries no column changes at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Bio == nil &&
		u.Image == nil && u.PasswordHash == nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return `"user"`
}
