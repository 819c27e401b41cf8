package store

import (
	"context"
	"fmt"

	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
)

// followRepository is the PostgreSQL-backed implementation of
// [FollowRepository].
type followRepository struct {
	*DB
	logger *logger.Logger
}

// NewFollowRepository constructs a [FollowRepository] backed by the provided
// database connection and logger.
func NewFollowRepository(db *DB, logger *logger.Logger) FollowRepository {
	logger.Debug().Msg("FollowRepository created")
	return &followRepository{
		DB:     db,
		logger: logger,
	}
}

func scanFollow(row rowScanner) (models.Follow, error) {
	var follow models.Follow
	err := row.Scan(
		&follow.FollowingUserID,
		&follow.FollowedUserID,
		&follow.CreatedAt,
		&follow.UpdatedAt,
	)
	return follow, err
}

// CreateFollow inserts the directed edge follower→followed.
//
// The self-follow check and the duplicate-edge rejection both live in the
// schema, so the outcome is race-free: concurrent identical inserts produce
// exactly one edge and one ErrDuplicateFollow.
func (r *followRepository) CreateFollow(ctx context.Context, followerID, followedID uuid.UUID) (models.Follow, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createFollow, followerID, followedID)

	follow, err := scanFollow(row)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			log.Err(err).
				Str("func", "followRepository.CreateFollow").
				Str("following_user_id", followerID.String()).
				Str("followed_user_id", followedID.String()).
				Msg("follow insert rejected by constraint")
			return models.Follow{}, mapped
		}

		log.Err(err).
			Str("func", "followRepository.CreateFollow").
			Str("following_user_id", followerID.String()).
			Str("followed_user_id", followedID.String()).
			Msg("failed to insert follow edge")
		return models.Follow{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return follow, nil
}

// DeleteFollow removes the edge and reports whether it existed. A missing
// edge is not an error here — whether to surface that is the caller's call.
func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteFollow, followerID, followedID)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return false, mapped
		}

		log.Err(err).
			Str("func", "followRepository.DeleteFollow").
			Str("following_user_id", followerID.String()).
			Str("followed_user_id", followedID.String()).
			Msg("failed to delete follow edge")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// IsFollowing reports whether the follower→followed edge exists.
func (r *followRepository) IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	err := r.DB.QueryRowContext(ctx, isFollowing, followerID, followedID).Scan(&exists)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return false, mapped
		}

		log.Err(err).
			Str("func", "followRepository.IsFollowing").
			Msg("failed to query follow edge")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// GetFollowing lists the edges where userID is the follower — a
// primary-key-prefix scan.
func (r *followRepository) GetFollowing(ctx context.Context, userID uuid.UUID) ([]models.Follow, error) {
	return r.listFollows(ctx, "followRepository.GetFollowing", getFollowing, userID)
}

// GetFollowers lists the edges where userID is the followee, served by the
// secondary index. The schema intentionally optimizes GetFollowing over
// this path.
func (r *followRepository) GetFollowers(ctx context.Context, userID uuid.UUID) ([]models.Follow, error) {
	return r.listFollows(ctx, "followRepository.GetFollowers", getFollowers, userID)
}

func (r *followRepository) listFollows(ctx context.Context, caller, query string, userID uuid.UUID) ([]models.Follow, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return nil, mapped
		}

		log.Err(err).
			Str("func", caller).
			Str("user_id", userID.String()).
			Msg("failed to query follow edges")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	follows := make([]models.Follow, 0, 16)

	for rows.Next() {
		follow, scanErr := scanFollow(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Str("user_id", userID.String()).
				Msg("failed to scan follow row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		follows = append(follows, follow)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Str("user_id", userID.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return follows, nil
}
