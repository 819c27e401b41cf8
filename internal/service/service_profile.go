package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/internal/store"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
)

// profileService is the concrete implementation of ProfileService. It
// resolves usernames to accounts and manages follow edges on top of the
// user and follow repositories.
type profileService struct {
	userRepository   store.UserRepository
	followRepository store.FollowRepository
	logger           *logger.Logger
}

// NewProfileService constructs a ProfileService wired to the given
// repositories.
func NewProfileService(userRepository store.UserRepository, followRepository store.FollowRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository:   userRepository,
		followRepository: followRepository,
		logger:           logger,
	}
}

func profileOf(user models.User, following bool) models.Profile {
	return models.Profile{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: following,
	}
}

// GetProfile resolves a public profile by username. When viewerID is
// non-nil, Following reflects whether the viewer follows this user;
// anonymous viewers always see false.
func (s *profileService) GetProfile(ctx context.Context, username string, viewerID *uuid.UUID) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return models.Profile{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("profile lookup failed")
		return models.Profile{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	following := false
	if viewerID != nil {
		following, err = s.followRepository.IsFollowing(ctx, *viewerID, user.UserID)
		if err != nil {
			log.Err(err).Str("username", username).Msg("follow check failed")
			return models.Profile{}, fmt.Errorf("follow check failed: %w", err)
		}
	}

	return profileOf(user, following), nil
}

// Follow makes followerID follow the named user and returns the resulting
// profile. Following an already-followed user is already-satisfied, not an
// error; the duplicate-edge rejection from storage is absorbed here, at
// the caller layer the data contract assigns it to. A self-follow
// surfaces store.ErrSelfFollow.
func (s *profileService) Follow(ctx context.Context, followerID uuid.UUID, username string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("followee lookup failed")
		return models.Profile{}, fmt.Errorf("followee lookup failed: %w", err)
	}

	// Cheap pre-check; the schema's check constraint remains the authority.
	if user.UserID == followerID {
		return models.Profile{}, store.ErrSelfFollow
	}

	_, err = s.followRepository.CreateFollow(ctx, followerID, user.UserID)
	if err != nil && !errors.Is(err, store.ErrDuplicateFollow) {
		log.Err(err).
			Str("following_user_id", followerID.String()).
			Str("username", username).
			Msg("follow creation ended with error")
		return models.Profile{}, fmt.Errorf("follow creation ended with error: %w", err)
	}

	return profileOf(user, true), nil
}

// Unfollow removes the follow edge if present. Unfollowing someone not
// followed is a no-op.
func (s *profileService) Unfollow(ctx context.Context, followerID uuid.UUID, username string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("followee lookup failed")
		return models.Profile{}, fmt.Errorf("followee lookup failed: %w", err)
	}

	if _, err := s.followRepository.DeleteFollow(ctx, followerID, user.UserID); err != nil {
		log.Err(err).
			Str("following_user_id", followerID.String()).
			Str("username", username).
			Msg("follow deletion ended with error")
		return models.Profile{}, fmt.Errorf("follow deletion ended with error: %w", err)
	}

	return profileOf(user, false), nil
}

// Following lists the profiles the user follows.
func (s *profileService) Following(ctx context.Context, userID uuid.UUID) ([]models.Profile, error) {
	edges, err := s.followRepository.GetFollowing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("following listing failed: %w", err)
	}

	profiles := make([]models.Profile, 0, len(edges))
	for _, edge := range edges {
		user, err := s.userRepository.GetUserByID(ctx, edge.FollowedUserID)
		if err != nil {
			return nil, fmt.Errorf("followed user lookup failed: %w", err)
		}
		profiles = append(profiles, profileOf(user, true))
	}

	return profiles, nil
}

// Followers lists the profiles following the user. Following is reported
// from the user's own perspective: whether they follow each follower back.
func (s *profileService) Followers(ctx context.Context, userID uuid.UUID) ([]models.Profile, error) {
	edges, err := s.followRepository.GetFollowers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("followers listing failed: %w", err)
	}

	profiles := make([]models.Profile, 0, len(edges))
	for _, edge := range edges {
		user, err := s.userRepository.GetUserByID(ctx, edge.FollowingUserID)
		if err != nil {
			return nil, fmt.Errorf("follower lookup failed: %w", err)
		}

		followsBack, err := s.followRepository.IsFollowing(ctx, userID, user.UserID)
		if err != nil {
			return nil, fmt.Errorf("follow check failed: %w", err)
		}

		profiles = append(profiles, profileOf(user, followsBack))
	}

	return profiles, nil
}
