package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// articleRepository is the PostgreSQL-backed implementation of
// [ArticleRepository]. The denormalized tag_list column is bound and
// scanned through pq.Array.
type articleRepository struct {
	*DB
	logger *logger.Logger
}

// NewArticleRepository constructs an [ArticleRepository] backed by the
// provided database connection and logger.
func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("ArticleRepository created")
	return &articleRepository{
		DB:     db,
		logger: logger,
	}
}

func scanArticle(row rowScanner) (models.Article, error) {
	var article models.Article
	err := row.Scan(
		&article.ArticleID,
		&article.UserID,
		&article.Slug,
		&article.Title,
		&article.Description,
		&article.Body,
		pq.Array(&article.TagList),
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	return article, err
}

// CreateArticle inserts a new article. The slug is computed by the caller;
// a duplicate is rejected with ErrDuplicateSlug and the retry or
// disambiguation strategy (e.g. suffixing) stays with the caller.
func (r *articleRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createArticle,
		article.ArticleID, article.UserID, article.Slug,
		article.Title, article.Description, article.Body,
		pq.Array(article.TagList))

	created, err := scanArticle(row)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			log.Err(err).
				Str("func", "articleRepository.CreateArticle").
				Str("slug", article.Slug).
				Msg("article insert rejected by constraint")
			return models.Article{}, mapped
		}

		log.Err(err).
			Str("func", "articleRepository.CreateArticle").
			Str("slug", article.Slug).
			Msg("failed to insert article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetArticleByID retrieves an article by its identifier.
func (r *articleRepository) GetArticleByID(ctx context.Context, articleID uuid.UUID) (models.Article, error) {
	return r.getArticle(ctx, "articleRepository.GetArticleByID", getArticleByID, articleID)
}

// GetArticleBySlug retrieves an article by its permalink slug.
func (r *articleRepository) GetArticleBySlug(ctx context.Context, slug string) (models.Article, error) {
	return r.getArticle(ctx, "articleRepository.GetArticleBySlug", getArticleBySlug, slug)
}

func (r *articleRepository) getArticle(ctx context.Context, caller, query string, arg any) (models.Article, error) {
	log := logger.FromContext(ctx)

	article, err := scanArticle(r.DB.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrNotFound
		}
		if mapped := mapPostgresError(err); mapped != nil {
			return models.Article{}, mapped
		}

		log.Err(err).
			Str("func", caller).
			Msg("failed to query article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return article, nil
}

// UpdateArticle applies a partial update to title/description/body/tag_list.
// The slug never changes through this path: permalinks outlive retitles.
// An empty update performs no write, leaving updated_at untouched.
func (r *articleRepository) UpdateArticle(ctx context.Context, update models.ArticleUpdate) (models.Article, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return r.GetArticleByID(ctx, update.ArticleID)
	}

	query, args, err := buildUpdateArticleQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.UpdateArticle").
			Str("article_id", update.ArticleID.String()).
			Msg("failed to build update query")
		return models.Article{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanArticle(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, ErrNotFound
		}
		if mapped := mapPostgresError(err); mapped != nil {
			return models.Article{}, mapped
		}

		log.Err(err).
			Str("func", "articleRepository.UpdateArticle").
			Str("article_id", update.ArticleID.String()).
			Msg("failed to update article")
		return models.Article{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteArticle removes the article; the schema cascades to its favorites
// and comments within the same transaction.
func (r *articleRepository) DeleteArticle(ctx context.Context, articleID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteArticle, articleID)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return mapped
		}

		log.Err(err).
			Str("func", "articleRepository.DeleteArticle").
			Str("article_id", articleID.String()).
			Msg("failed to delete article")
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

// GetArticlesByTag lists articles carrying the given tag, newest first.
// Served by the GIN index on tag_list.
func (r *articleRepository) GetArticlesByTag(ctx context.Context, tag string) ([]models.Article, error) {
	return r.listArticles(ctx, "articleRepository.GetArticlesByTag", getArticlesByTag, pq.Array([]string{tag}))
}

// GetArticlesByAuthor lists an author's articles, newest first.
func (r *articleRepository) GetArticlesByAuthor(ctx context.Context, userID uuid.UUID) ([]models.Article, error) {
	return r.listArticles(ctx, "articleRepository.GetArticlesByAuthor", getArticlesByAuthor, userID)
}

func (r *articleRepository) listArticles(ctx context.Context, caller, query string, arg any) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return nil, mapped
		}

		log.Err(err).
			Str("func", caller).
			Msg("failed to query articles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0, 16)

	for rows.Next() {
		article, scanErr := scanArticle(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", caller).
				Msg("failed to scan article row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		articles = append(articles, article)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", caller).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return articles, nil
}

// GetAllTags returns every distinct tag in use, sorted. This is an
// unindexed full scan — fine at the target data volume, not a path to lean
// on for frequent global listings.
func (r *articleRepository) GetAllTags(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllTags)
	if err != nil {
		if mapped := mapPostgresError(err); mapped != nil {
			return nil, mapped
		}

		log.Err(err).
			Str("func", "articleRepository.GetAllTags").
			Msg("failed to query tags")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]string, 0, 32)

	for rows.Next() {
		var tag string
		if scanErr := rows.Scan(&tag); scanErr != nil {
			log.Err(scanErr).
				Str("func", "articleRepository.GetAllTags").
				Msg("failed to scan tag row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tags = append(tags, tag)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "articleRepository.GetAllTags").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tags, nil
}
