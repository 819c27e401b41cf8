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

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository].
type commentRepository struct {
	*DB
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("CommentRepository created")
	return &commentRepository{
		DB:     db,
		logger: logger,
	}
}

func scanComment(row rowScanner) (models.ArticleComment, error) {
	var comment models.ArticleComment
	err := row.Scan(
		&comment.CommentID,
		&comment.ArticleID,
		&comment.UserID,
		&comment.Body,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	return comment, err
}

// CreateComment appends a comment to an article. The sequence-assigned
// comment_id is an identity token only — no ordering or gaplessness is
// promised.
func (r *commentRepository) CreateComment(ctx context.Context, comment models.ArticleComment) (models.ArticleComment, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createComment, comment.ArticleID, comment.UserID, comment.Body)

	created, err := scanComment(row)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			log.Err(err).
				Str("func", "commentRepository.CreateComment").
				Str("article_id", comment.ArticleID.String()).
				Msg("comment insert rejected by constraint")
			return models.ArticleComment{}, mapped
		}

		log.Err(err).
			Str("func", "commentRepository.CreateComment").
			Str("article_id", comment.ArticleID.String()).
			Msg("failed to insert comment")
		return models.ArticleComment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetCommentByID retrieves a single comment.
func (r *commentRepository) GetCommentByID(ctx context.Context, commentID int64) (models.ArticleComment, error) {
	log := logger.FromContext(ctx)

	comment, err := scanComment(r.DB.QueryRowContext(ctx, getCommentByID, commentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ArticleComment{}, ErrNotFound
		}
		if mapped := mapPostgresError(err); mapped != nil {
			return models.ArticleComment{}, mapped
		}

		log.Err(err).
			Str("func", "commentRepository.GetCommentByID").
			Int64("comment_id", commentID).
			Msg("failed to query comment")
		return models.ArticleComment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return comment, nil
}

// GetArticleComments lists an article's comments in chronological order,
// comment_id breaking ties between sub-resolution timestamps. The
// (article_id, created_at) index serves this directly.
func (r *commentRepository) GetArticleComments(ctx context.Context, articleID uuid.UUID) ([]models.ArticleComment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getArticleComments, articleID)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return nil, mapped
		}

		log.Err(err).
			Str("func", "commentRepository.GetArticleComments").
			Str("article_id", articleID.String()).
			Msg("failed to query comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.ArticleComment, 0, 16)

	for rows.Next() {
		comment, scanErr := scanComment(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "commentRepository.GetArticleComments").
				Str("article_id", articleID.String()).
				Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		comments = append(comments, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "commentRepository.GetArticleComments").
			Str("article_id", articleID.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return comments, nil
}

// DeleteComment removes a single comment by id, reporting whether it
// existed.
func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteComment, commentID)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return false, mapped
		}

		log.Err(err).
			Str("func", "commentRepository.DeleteComment").
			Int64("comment_id", commentID).
			Msg("failed to delete comment")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}
