package service

import (
	"context"
	"testing"

	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/internal/mock"
	"github.com/akarpushin/conduit-data/internal/store"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFavoriteSvc(t *testing.T, ctrl *gomock.Controller) (*favoriteService, *mock.MockFavoriteRepository) {
	t.Helper()
	mockRepo := mock.NewMockFavoriteRepository(ctrl)
	svc := NewFavoriteService(mockRepo, logger.Nop()).(*favoriteService)
	return svc, mockRepo
}

func TestFavoriteService_Favorite_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	articleID := uuid.New()
	userID := uuid.New()

	mockRepo.EXPECT().AddFavorite(ctx, articleID, userID).
		Return(models.ArticleFavorite{ArticleID: articleID, UserID: userID}, nil)

	err := svc.Favorite(ctx, articleID, userID)
	require.NoError(t, err)
}

func TestFavoriteService_Favorite_DuplicateIsSatisfied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	articleID := uuid.New()
	userID := uuid.New()

	mockRepo.EXPECT().AddFavorite(ctx, articleID, userID).
		Return(models.ArticleFavorite{}, store.ErrDuplicateFavorite)

	err := svc.Favorite(ctx, articleID, userID)
	require.NoError(t, err, "favoriting twice must be a no-op")
}

func TestFavoriteService_Favorite_MissingArticle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().AddFavorite(ctx, gomock.Any(), gomock.Any()).
		Return(models.ArticleFavorite{}, store.ErrForeignKeyViolation)

	err := svc.Favorite(ctx, uuid.New(), uuid.New())
	require.ErrorIs(t, err, store.ErrForeignKeyViolation)
}

func TestFavoriteService_Unfavorite_MissingIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	articleID := uuid.New()
	userID := uuid.New()

	mockRepo.EXPECT().RemoveFavorite(ctx, articleID, userID).Return(false, nil)

	err := svc.Unfavorite(ctx, articleID, userID)
	require.NoError(t, err)
}

func TestFavoriteService_IsFavorited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()

	articleID := uuid.New()
	userID := uuid.New()

	mockRepo.EXPECT().IsFavorited(ctx, articleID, userID).Return(true, nil)

	favorited, err := svc.IsFavorited(ctx, articleID, userID)
	require.NoError(t, err)
	assert.True(t, favorited)
}

func TestFavoriteService_Count(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestFavoriteSvc(t, ctrl)
	ctx := context.Background()
	articleID := uuid.New()

	mockRepo.EXPECT().CountFavorites(ctx, articleID).Return(int64(3), nil)

	count, err := svc.Count(ctx, articleID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
