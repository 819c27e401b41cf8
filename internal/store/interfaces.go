package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
)

// UserRepository persists account entities. Username and email uniqueness is
// case-insensitive and enforced by the storage layer itself, so concurrent
// inserts of the same name race safely into exactly one winner.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	// DeleteUser removes the user and, through schema cascades in the same
	// transaction, every follow edge, article, favorite and comment that
	// references them.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// FollowRepository persists the directed social graph.
type FollowRepository interface {
	// CreateFollow inserts the edge follower→followed. Returns
	// ErrSelfFollow or ErrDuplicateFollow on invariant breach; turning a
	// duplicate into an idempotent no-op is the caller's decision.
	CreateFollow(ctx context.Context, followerID, followedID uuid.UUID) (models.Follow, error)
	// DeleteFollow removes the edge and reports whether it existed.
	// Removing a missing edge is not an error at this layer.
	DeleteFollow(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	// GetFollowing answers "who does userID follow" — a primary-key-prefix
	// scan, the access pattern the key order was chosen for.
	GetFollowing(ctx context.Context, userID uuid.UUID) ([]models.Follow, error)
	// GetFollowers answers "who follows userID" via the secondary index.
	GetFollowers(ctx context.Context, userID uuid.UUID) ([]models.Follow, error)
}

// ArticleRepository persists authored content.
type ArticleRepository interface {
	// CreateArticle inserts an article with a caller-computed slug. A
	// duplicate slug is rejected with ErrDuplicateSlug; retry or
	// disambiguation strategy belongs to the caller.
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)
	GetArticleByID(ctx context.Context, articleID uuid.UUID) (models.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (models.Article, error)
	UpdateArticle(ctx context.Context, update models.ArticleUpdate) (models.Article, error)
	DeleteArticle(ctx context.Context, articleID uuid.UUID) error
	// GetArticlesByTag is index-accelerated (GIN containment).
	GetArticlesByTag(ctx context.Context, tag string) ([]models.Article, error)
	GetArticlesByAuthor(ctx context.Context, userID uuid.UUID) ([]models.Article, error)
	// GetAllTags is a full scan over tag_list. Acceptable at the target
	// data volume only; callers needing frequent global tag listings should
	// maintain their own aggregate.
	GetAllTags(ctx context.Context) ([]string, error)
}

// FavoriteRepository persists the user-likes-article relation. There is no
// stored counter; counts are always derived from the relation.
type FavoriteRepository interface {
	AddFavorite(ctx context.Context, articleID, userID uuid.UUID) (models.ArticleFavorite, error)
	RemoveFavorite(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
	IsFavorited(ctx context.Context, articleID, userID uuid.UUID) (bool, error)
	CountFavorites(ctx context.Context, articleID uuid.UUID) (int64, error)
}

// CommentRepository persists article comments. Listing order is always
// created_at with comment_id as tie-break — never comment_id alone.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.ArticleComment) (models.ArticleComment, error)
	GetCommentByID(ctx context.Context, commentID int64) (models.ArticleComment, error)
	GetArticleComments(ctx context.Context, articleID uuid.UUID) ([]models.ArticleComment, error)
	// DeleteComment reports whether the comment existed.
	DeleteComment(ctx context.Context, commentID int64) (bool, error)
}
