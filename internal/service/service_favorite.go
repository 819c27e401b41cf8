package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/internal/store"
	"github.com/google/uuid"
)

// favoriteService is the concrete implementation of FavoriteService.
type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	logger             *logger.Logger
}

// NewFavoriteService constructs a FavoriteService wired to the given
// repository.
func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

// Favorite marks the article as liked by the user. The storage layer
// rejects a duplicate with store.ErrDuplicateFavorite; that is mapped to
// already-satisfied here, so favoriting twice succeeds quietly.
func (s *favoriteService) Favorite(ctx context.Context, articleID, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	_, err := s.favoriteRepository.AddFavorite(ctx, articleID, userID)
	if err != nil && !errors.Is(err, store.ErrDuplicateFavorite) {
		log.Err(err).
			Str("article_id", articleID.String()).
			Str("user_id", userID.String()).
			Msg("favorite creation ended with error")
		return fmt.Errorf("favorite creation ended with error: %w", err)
	}

	return nil
}

// Unfavorite removes the like if present; removing a non-favorite is a
// no-op.
func (s *favoriteService) Unfavorite(ctx context.Context, articleID, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if _, err := s.favoriteRepository.RemoveFavorite(ctx, articleID, userID); err != nil {
		log.Err(err).
			Str("article_id", articleID.String()).
			Str("user_id", userID.String()).
			Msg("favorite deletion ended with error")
		return fmt.Errorf("favorite deletion ended with error: %w", err)
	}

	return nil
}

// IsFavorited reports whether the user has favorited the article.
func (s *favoriteService) IsFavorited(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	favorited, err := s.favoriteRepository.IsFavorited(ctx, articleID, userID)
	if err != nil {
		return false, fmt.Errorf("favorite check failed: %w", err)
	}

	return favorited, nil
}

// Count returns the article's favorites count, derived from the relation.
func (s *favoriteService) Count(ctx context.Context, articleID uuid.UUID) (int64, error) {
	count, err := s.favoriteRepository.CountFavorites(ctx, articleID)
	if err != nil {
		return 0, fmt.Errorf("favorite count failed: %w", err)
	}

	return count, nil
}
