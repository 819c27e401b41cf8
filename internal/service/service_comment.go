package service

import (
	"context"
	"fmt"

	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/internal/store"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
)

// commentService is the concrete implementation of CommentService.
type commentService struct {
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService wired to the given
// repository.
func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// Add appends a comment to the article.
func (s *commentService) Add(ctx context.Context, articleID, userID uuid.UUID, body string) (models.ArticleComment, error) {
	log := logger.FromContext(ctx)

	if body == "" {
		log.Error().Str("article_id", articleID.String()).Msg("empty comment body provided")
		return models.ArticleComment{}, ErrInvalidDataProvided
	}

	comment, err := s.commentRepository.CreateComment(ctx, models.ArticleComment{
		ArticleID: articleID,
		UserID:    userID,
		Body:      body,
	})
	if err != nil {
		log.Err(err).Str("article_id", articleID.String()).Msg("comment creation ended with error")
		return models.ArticleComment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return comment, nil
}

// ListForArticle returns the article's comments in display order.
func (s *commentService) ListForArticle(ctx context.Context, articleID uuid.UUID) ([]models.ArticleComment, error) {
	comments, err := s.commentRepository.GetArticleComments(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("comment listing failed: %w", err)
	}

	return comments, nil
}

// Delete removes a comment after verifying the requester wrote it.
func (s *commentService) Delete(ctx context.Context, requesterID uuid.UUID, commentID int64) error {
	log := logger.FromContext(ctx)

	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("comment search by id failed: %w", err)
	}

	if comment.UserID != requesterID {
		log.Warn().
			Int64("comment_id", commentID).
			Str("requester_id", requesterID.String()).
			Msg("deletion rejected: requester is not the comment author")
		return ErrNotCommentAuthor
	}

	if _, err := s.commentRepository.DeleteComment(ctx, commentID); err != nil {
		log.Err(err).Int64("comment_id", commentID).Msg("comment deletion ended with error")
		return fmt.Errorf("comment deletion ended with error: %w", err)
	}

	return nil
}
