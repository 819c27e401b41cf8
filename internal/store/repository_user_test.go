package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgConstraintError(code, constraint string) error {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func userRows(user models.User) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.
		NewRows([]string{"user_id", "username", "email", "bio", "image", "password_hash", "created_at", "updated_at"}).
		AddRow(user.UserID.String(), user.Username, user.Email, user.Bio, nil, user.PasswordHash, now, now)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		UserID:       uuid.New(),
		Username:     "john",
		Email:        "john@example.com",
		Bio:          "",
		PasswordHash: "$argon2id$hash",
	}

	mock.ExpectQuery(`INSERT INTO "user"`).
		WithArgs(user.UserID, user.Username, user.Email, user.Bio, user.Image, user.PasswordHash).
		WillReturnRows(userRows(user))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != user.UserID {
		t.Errorf("expected UserID=%s, got %s", user.UserID, created.UserID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt == nil {
		t.Error("expected timestamps to be populated")
	}
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: uuid.New(), Username: "john"}

	mock.ExpectQuery(`INSERT INTO "user"`).
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "user_username_key"))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected error to wrap ErrConstraintViolation, got %v", err)
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: uuid.New(), Email: "john@example.com"}

	mock.ExpectQuery(`INSERT INTO "user"`).
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "user_email_key"))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: uuid.New(), Username: "john"}

	mock.ExpectQuery(`INSERT INTO "user"`).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if !strings.Contains(err.Error(), "db network error") {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
}

func TestGetUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: uuid.New(), Username: "john", Email: "john@example.com"}

	mock.ExpectQuery("SELECT user_id").
		WithArgs(user.UserID).
		WillReturnRows(userRows(user))

	found, err := repo.GetUserByID(ctx, user.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "john" {
		t.Errorf("expected username john, got %s", found.Username)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery("SELECT user_id").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByID(ctx, userID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: uuid.New(), Username: "John", Email: "john@example.com"}

	mock.ExpectQuery("SELECT user_id").
		WithArgs("John").
		WillReturnRows(userRows(user))

	found, err := repo.GetUserByUsername(ctx, "John")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != user.UserID {
		t.Errorf("expected UserID=%s, got %s", user.UserID, found.UserID)
	}
}

func TestGetUserByEmail_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id").
		WithArgs("john@example.com").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetUserByEmail(ctx, "john@example.com")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateUser_PartialUpdate(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	bio := "gopher"
	user := models.User{UserID: uuid.New(), Username: "john", Email: "john@example.com", Bio: bio}

	mock.ExpectQuery(`UPDATE "user" SET`).
		WithArgs(bio, user.UserID).
		WillReturnRows(userRows(user))

	updated, err := repo.UpdateUser(ctx, models.UserUpdate{UserID: user.UserID, Bio: &bio})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bio != bio {
		t.Errorf("expected bio %q, got %q", bio, updated.Bio)
	}
}

func TestUpdateUser_EmptyUpdateIsARead(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{UserID: uuid.New(), Username: "john"}

	// No UPDATE must reach the database; the empty update degrades to a
	// lookup, so updated_at cannot move.
	mock.ExpectQuery("SELECT user_id").
		WithArgs(user.UserID).
		WillReturnRows(userRows(user))

	updated, err := repo.UpdateUser(ctx, models.UserUpdate{UserID: user.UserID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Username != "john" {
		t.Errorf("expected username john, got %s", updated.Username)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateUser_DuplicateUsername(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	username := "taken"

	mock.ExpectQuery(`UPDATE "user" SET`).
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "user_username_key"))

	_, err := repo.UpdateUser(ctx, models.UserUpdate{UserID: uuid.New(), Username: &username})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	bio := "gopher"

	mock.ExpectQuery(`UPDATE "user" SET`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateUser(ctx, models.UserUpdate{UserID: uuid.New(), Bio: &bio})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM "user"`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(ctx, userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM "user"`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(ctx, userID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
