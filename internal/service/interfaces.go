package service

import (
	"context"

	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
)

// IDGenerator produces new entity identifiers. Satisfied by
// utils.UUIDGenerator; declared here so tests can substitute a
// deterministic source.
type IDGenerator interface {
	Generate() uuid.UUID
}

// UserService owns the account lifecycle rules the schema cannot express:
// input validation and password hashing. Plaintext passwords are hashed
// here, exactly once, before they reach the repository — a pre-hashed
// value is never accepted from a caller.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	// UpdateProfile applies a partial profile update. The PasswordHash
	// field of the update is ignored; use ChangePassword.
	UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ProfileService resolves public profiles and manages the social graph by
// username, the way callers address other users.
type ProfileService interface {
	GetProfile(ctx context.Context, username string, viewerID *uuid.UUID) (models.Profile, error)
	// Follow is idempotent: following someone already followed is
	// already-satisfied, not an error. Self-follows are rejected with
	// store.ErrSelfFollow.
	Follow(ctx context.Context, followerID uuid.UUID, username string) (models.Profile, error)
	// Unfollow is likewise idempotent over missing edges.
	Unfollow(ctx context.Context, followerID uuid.UUID, username string) (models.Profile, error)
	Following(ctx context.Context, userID uuid.UUID) ([]models.Profile, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]models.Profile, error)
}

// ArticleService owns publication rules: slug derivation from the title,
// tag normalization, and author-only mutation.
type ArticleService interface {
	// Publish derives the slug from the title. A colliding slug surfaces
	// as store.ErrDuplicateSlug unchanged — disambiguation (e.g.
	// suffixing) stays with the caller.
	Publish(ctx context.Context, authorID uuid.UUID, title, description, body string, tags []string) (models.Article, error)
	GetBySlug(ctx context.Context, slug string) (models.Article, error)
	Update(ctx context.Context, requesterID uuid.UUID, update models.ArticleUpdate) (models.Article, error)
	Delete(ctx context.Context, requesterID, articleID uuid.UUID) error
	ListByTag(ctx context.Context, tag string) ([]models.Article, error)
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]models.Article, error)
	Tags(ctx context.Context) ([]string, error)
}

// FavoriteService manages the user-likes-article relation with idempotent
// semantics: favoriting twice and unfavoriting a non-favorite are both
// no-ops at this level.
type FavoriteService interface {
	Favorite(ctx context.Context, articleID, userID uuid.UUID) error
	Unfavorite(ctx context.Context, articleID, userID uuid.UUID) error
	IsFavorited(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
	Count(ctx context.Context, articleID uuid.UUID) (int64, error)
}

// CommentService manages article comments with author-only deletion.
type CommentService interface {
	Add(ctx context.Context, articleID, userID uuid.UUID, body string) (models.ArticleComment, error)
	// ListForArticle returns comments in display order: chronological,
	// ids breaking timestamp ties.
	ListForArticle(ctx context.Context, articleID uuid.UUID) ([]models.ArticleComment, error)
	Delete(ctx context.Context, requesterID uuid.UUID, commentID int64) error
}
