package store

import (
	"github.com/akarpushin/conduit-data/internal/logger"
)

// Repositories bundles every entity repository behind one handle, all
// sharing the same *DB connection pool.
type Repositories struct {
	Users     UserRepository
	Follows   FollowRepository
	Articles  ArticleRepository
	Favorites FavoriteRepository
	Comments  CommentRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db, log),
		Follows:   NewFollowRepository(db, log),
		Articles:  NewArticleRepository(db, log),
		Favorites: NewFavoriteRepository(db, log),
		Comments:  NewCommentRepository(db, log),
	}
}
