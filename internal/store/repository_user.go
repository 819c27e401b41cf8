package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It executes all account CRUD operations directly against the "user" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner lets the scan helpers work with both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Username,
		&user.Email,
		&user.Bio,
		&user.Image,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// CreateUser inserts a new account. The caller supplies the id and an
// already-hashed password; this layer persists what it is given.
//
// Returns ErrDuplicateUsername or ErrDuplicateEmail when the
// case-insensitive uniqueness constraints reject the row.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createUser,
		user.UserID, user.Username, user.Email, user.Bio, user.Image, user.PasswordHash)

	created, err := scanUser(row)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			log.Err(err).
				Str("func", "userRepository.CreateUser").
				Str("username", user.Username).
				Msg("user insert rejected by constraint")
			return models.User{}, mapped
		}

		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("username", user.Username).
			Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetUserByID retrieves an account by its immutable identifier.
func (r *userRepository) GetUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	return r.getUser(ctx, "userRepository.GetUserByID", getUserByID, userID)
}

// GetUserByUsername retrieves an account by username. Matching is
// case-insensitive through the column collation: looking up "Bob" finds
// a user stored as "bob".
func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getUser(ctx, "userRepository.GetUserByUsername", getUserByUsername, username)
}

// GetUserByEmail retrieves an account by email, case-insensitively.
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, "userRepository.GetUserByEmail", getUserByEmail, email)
}

func (r *userRepository) getUser(ctx context.Context, caller, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.DB.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		if mapped := mapPostgresError(err); mapped != nil {
			return models.User{}, mapped
		}

		log.Err(err).
			Str("func", caller).
			Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateUser applies a partial update: only non-nil fields are written.
// An empty update performs no write at all, so the touch-on-change trigger
// never fires and updated_at stays put.
//
// Uniqueness of a changed username or email is re-validated by the same
// constraints as at creation, closing the race with concurrent writers.
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.GetUserByID(ctx, update.UserID)
	}

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "userRepository.UpdateUser").
			Str("user_id", update.UserID.String()).
			Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		if mapped := mapPostgresError(err); mapped != nil {
			log.Err(err).
				Str("func", "userRepository.UpdateUser").
				Str("user_id", update.UserID.String()).
				Msg("user update rejected by constraint")
			return models.User{}, mapped
		}

		log.Err(err).
			Str("func", "userRepository.UpdateUser").
			Str("user_id", update.UserID.String()).
			Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteUser removes the account. The schema's ON DELETE CASCADE clauses
// remove every dependent follow edge, article, favorite and comment within
// the same transaction, so no intermediate state is ever visible.
func (r *userRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return mapped
		}

		log.Err(err).
			Str("func", "userRepository.DeleteUser").
			Str("user_id", userID.String()).
			Msg("failed to delete user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
