package service

import (
	"github.com/akarpushin/conduit-data/internal/crypto"
	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/internal/store"
	"github.com/akarpushin/conduit-data/internal/utils"
)

// Services bundles every entity service behind one handle.
type Services struct {
	Users     UserService
	Profiles  ProfileService
	Articles  ArticleService
	Favorites FavoriteService
	Comments  CommentService
}

func NewServices(repos *store.Repositories, log *logger.Logger) *Services {
	ids := utils.NewUUIDGenerator()
	hasher := crypto.NewPasswordHasher()

	return &Services{
		Users:     NewUserService(repos.Users, hasher, ids, log),
		Profiles:  NewProfileService(repos.Users, repos.Follows, log),
		Articles:  NewArticleService(repos.Articles, ids, log),
		Favorites: NewFavoriteService(repos.Favorites, log),
		Comments:  NewCommentService(repos.Comments, log),
	}
}
