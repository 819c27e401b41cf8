package service

import (
	"context"
	"fmt"

	"github.com/akarpushin/conduit-data/internal/crypto"
	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/internal/store"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
)

// userService is the concrete implementation of UserService. It validates
// input, hashes passwords with Argon2id before persistence, and delegates
// storage to a store.UserRepository.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	ids            IDGenerator
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository,
// password hasher, and id generator.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            ids,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates that username, email, and password are non-empty, hashes the
// plaintext password, assigns a fresh identifier, and persists the result.
// The bio starts empty and the image unset.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - store.ErrDuplicateUsername / store.ErrDuplicateEmail (wrapped) when
//     the case-insensitive uniqueness constraints reject the account.
func (s *userService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       s.ids.Generate(),
		Username:     username,
		Email:        email,
		Bio:          "",
		PasswordHash: passwordHash,
	}

	registeredUser, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies a user's credentials by email.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. store.ErrNotFound).
//   - ErrWrongPassword if the password does not match the stored hash.
func (s *userService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Msg("invalid authentication data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := s.hasher.Verify(password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", foundUser.UserID.String()).Msg("password verification failed")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().Str("user_id", foundUser.UserID.String()).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetByID retrieves an account by identifier.
func (s *userService) GetByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// GetByUsername retrieves an account by username, case-insensitively.
func (s *userService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	if username == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial update of username/email/bio/image.
// Any PasswordHash carried in the update is dropped: credentials only
// change through ChangePassword, which re-hashes from plaintext.
func (s *userService) UpdateProfile(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	update.PasswordHash = nil

	updatedUser, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Str("user_id", update.UserID.String()).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// ChangePassword re-hashes and stores a new password for the user.
func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	_, err = s.userRepository.UpdateUser(ctx, models.UserUpdate{
		UserID:       userID,
		PasswordHash: &passwordHash,
	})
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("password update ended with error")
		return fmt.Errorf("password update ended with error: %w", err)
	}

	return nil
}

// Delete removes the account and, through the schema's cascades, all its
// follow edges, articles, favorites, and comments in one transaction.
func (s *userService) Delete(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
