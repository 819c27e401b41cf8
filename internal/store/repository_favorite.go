package store

import (
	"context"
	"fmt"

	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository].
type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("FavoriteRepository created")
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

// AddFavorite records that userID likes articleID. A duplicate insert is
// rejected by the composite primary key as ErrDuplicateFavorite; the
// caller decides whether that is an error or already-satisfied. Authors
// favoriting their own articles is allowed on purpose.
func (r *favoriteRepository) AddFavorite(ctx context.Context, articleID, userID uuid.UUID) (models.ArticleFavorite, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, addFavorite, articleID, userID)

	var favorite models.ArticleFavorite
	err := row.Scan(&favorite.ArticleID, &favorite.UserID, &favorite.CreatedAt, &favorite.UpdatedAt)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			log.Err(err).
				Str("func", "favoriteRepository.AddFavorite").
				Str("article_id", articleID.String()).
				Str("user_id", userID.String()).
				Msg("favorite insert rejected by constraint")
			return models.ArticleFavorite{}, mapped
		}

		log.Err(err).
			Str("func", "favoriteRepository.AddFavorite").
			Str("article_id", articleID.String()).
			Str("user_id", userID.String()).
			Msg("failed to insert favorite")
		return models.ArticleFavorite{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return favorite, nil
}

// RemoveFavorite deletes the favorite and reports whether it existed.
func (r *favoriteRepository) RemoveFavorite(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, removeFavorite, articleID, userID)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return false, mapped
		}

		log.Err(err).
			Str("func", "favoriteRepository.RemoveFavorite").
			Str("article_id", articleID.String()).
			Str("user_id", userID.String()).
			Msg("failed to delete favorite")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// IsFavorited reports whether userID has favorited articleID.
func (r *favoriteRepository) IsFavorited(ctx context.Context, articleID, userID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	err := r.DB.QueryRowContext(ctx, isFavorited, articleID, userID).Scan(&exists)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return false, mapped
		}

		log.Err(err).
			Str("func", "favoriteRepository.IsFavorited").
			Msg("failed to query favorite")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// CountFavorites computes the favorites count from the relation itself.
// There is no stored counter to drift out of sync.
func (r *favoriteRepository) CountFavorites(ctx context.Context, articleID uuid.UUID) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	err := r.DB.QueryRowContext(ctx, countFavorites, articleID).Scan(&count)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return 0, mapped
		}

		log.Err(err).
			Str("func", "favoriteRepository.CountFavorites").
			Str("article_id", articleID.String()).
			Msg("failed to count favorites")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
