package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

func newTestFavoriteRepo(t *testing.T) (*favoriteRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &favoriteRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestAddFavorite_Success(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	ctx := context.Background()
	articleID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"article_id", "user_id", "created_at", "updated_at"}).
		AddRow(articleID.String(), userID.String(), now, now)

	mock.ExpectQuery("INSERT INTO article_favorite").
		WithArgs(articleID, userID).
		WillReturnRows(rows)

	favorite, err := repo.AddFavorite(ctx, articleID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if favorite.ArticleID != articleID {
		t.Errorf("expected article_id %s, got %s", articleID, favorite.ArticleID)
	}
	if favorite.UserID != userID {
		t.Errorf("expected user_id %s, got %s", userID, favorite.UserID)
	}
}

func TestAddFavorite_Duplicate(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO article_favorite").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "article_favorite_pkey"))

	_, err := repo.AddFavorite(ctx, uuid.New(), uuid.New())
	if !errors.Is(err, ErrDuplicateFavorite) {
		t.Fatalf("expected ErrDuplicateFavorite, got %v", err)
	}
}

func TestAddFavorite_MissingArticle(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO article_favorite").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.AddFavorite(ctx, uuid.New(), uuid.New())
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestRemoveFavorite_Existed(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	ctx := context.Background()
	articleID := uuid.New()
	userID := uuid.New()

	mock.ExpectExec("DELETE FROM article_favorite").
		WithArgs(articleID, userID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	existed, err := repo.RemoveFavorite(ctx, articleID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !existed {
		t.Error("expected existed=true")
	}
}

func TestRemoveFavorite_NotFavorited(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM article_favorite").
		WillReturnResult(sqlmock.NewResult(0, 0))

	existed, err := repo.RemoveFavorite(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if existed {
		t.Error("expected existed=false for an absent favorite")
	}
}

func TestIsFavorited(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	ctx := context.Background()
	articleID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(articleID, userID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	favorited, err := repo.IsFavorited(ctx, articleID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if favorited {
		t.Error("expected favorited=false")
	}
}

func TestCountFavorites(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	ctx := context.Background()
	articleID := uuid.New()

	mock.ExpectQuery("SELECT count").
		WithArgs(articleID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountFavorites(ctx, articleID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 7 {
		t.Errorf("expected count=7, got %d", count)
	}
}

func TestCountFavorites_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestFavoriteRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT count").
		WillReturnError(errors.New("db failure"))

	_, err := repo.CountFavorites(ctx, uuid.New())
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
