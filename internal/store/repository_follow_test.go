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

func newTestFollowRepo(t *testing.T) (*followRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &followRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateFollow_Success(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()
	followerID := uuid.New()
	followedID := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"following_user_id", "followed_user_id", "created_at", "updated_at"}).
		AddRow(followerID.String(), followedID.String(), now, now)

	mock.ExpectQuery("INSERT INTO follow").
		WithArgs(followerID, followedID).
		WillReturnRows(rows)

	follow, err := repo.CreateFollow(ctx, followerID, followedID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if follow.FollowingUserID != followerID {
		t.Errorf("expected following_user_id %s, got %s", followerID, follow.FollowingUserID)
	}
	if follow.FollowedUserID != followedID {
		t.Errorf("expected followed_user_id %s, got %s", followedID, follow.FollowedUserID)
	}
}

func TestCreateFollow_Duplicate(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO follow").
		WillReturnError(pgConstraintError(pgerrcode.UniqueViolation, "follow_pkey"))

	_, err := repo.CreateFollow(ctx, uuid.New(), uuid.New())
	if !errors.Is(err, ErrDuplicateFollow) {
		t.Fatalf("expected ErrDuplicateFollow, got %v", err)
	}
}

func TestCreateFollow_SelfFollow(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectQuery("INSERT INTO follow").
		WillReturnError(pgConstraintError(pgerrcode.CheckViolation, "user_cannot_follow_self"))

	_, err := repo.CreateFollow(ctx, userID, userID)
	if !errors.Is(err, ErrSelfFollow) {
		t.Fatalf("expected ErrSelfFollow, got %v", err)
	}
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected error to wrap ErrConstraintViolation, got %v", err)
	}
}

func TestCreateFollow_MissingUser(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO follow").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateFollow(ctx, uuid.New(), uuid.New())
	if !errors.Is(err, ErrForeignKeyViolation) {
		t.Fatalf("expected ErrForeignKeyViolation, got %v", err)
	}
}

func TestDeleteFollow_Existed(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()
	followerID := uuid.New()
	followedID := uuid.New()

	mock.ExpectExec("DELETE FROM follow").
		WithArgs(followerID, followedID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	existed, err := repo.DeleteFollow(ctx, followerID, followedID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !existed {
		t.Error("expected existed=true")
	}
}

func TestDeleteFollow_NotFollowed(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM follow").
		WillReturnResult(sqlmock.NewResult(0, 0))

	existed, err := repo.DeleteFollow(ctx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if existed {
		t.Error("expected existed=false for an absent edge")
	}
}

func TestIsFollowing(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()
	followerID := uuid.New()
	followedID := uuid.New()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(followerID, followedID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	following, err := repo.IsFollowing(ctx, followerID, followedID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !following {
		t.Error("expected following=true")
	}
}

func TestGetFollowing_ReturnsEdges(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"following_user_id", "followed_user_id", "created_at", "updated_at"}).
		AddRow(userID.String(), first.String(), now, now).
		AddRow(userID.String(), second.String(), now, now)

	mock.ExpectQuery("SELECT following_user_id").
		WithArgs(userID).
		WillReturnRows(rows)

	follows, err := repo.GetFollowing(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(follows) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(follows))
	}
	if follows[0].FollowedUserID != first {
		t.Errorf("expected first edge to %s, got %s", first, follows[0].FollowedUserID)
	}
}

func TestGetFollowers_Empty(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"following_user_id", "followed_user_id", "created_at", "updated_at"})

	mock.ExpectQuery("SELECT following_user_id").
		WithArgs(userID).
		WillReturnRows(rows)

	followers, err := repo.GetFollowers(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(followers) != 0 {
		t.Fatalf("expected no edges, got %d", len(followers))
	}
}

func TestGetFollowing_ScanError(t *testing.T) {
	repo, mock, db := newTestFollowRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := uuid.New()

	rows := sqlmock.NewRows([]string{"following_user_id"}).AddRow(userID.String())

	mock.ExpectQuery("SELECT following_user_id").
		WithArgs(userID).
		WillReturnRows(rows)

	_, err := repo.GetFollowing(ctx, userID)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}
