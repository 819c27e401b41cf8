package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/akarpushin/conduit-data/internal/logger"
	"github.com/akarpushin/conduit-data/internal/slug"
	"github.com/akarpushin/conduit-data/internal/store"
	"github.com/akarpushin/conduit-data/models"
	"github.com/google/uuid"
)

// articleService is the concrete implementation of ArticleService.
type articleService struct {
	articleRepository store.ArticleRepository
	ids               IDGenerator
	logger            *logger.Logger
}

// NewArticleService constructs an ArticleService wired to the given
// repository and id generator.
func NewArticleService(articleRepository store.ArticleRepository, ids IDGenerator, logger *logger.Logger) ArticleService {
	return &articleService{
		articleRepository: articleRepository,
		ids:               ids,
		logger:            logger,
	}
}

// normalizeTags sorts the tag list and drops duplicates and empty strings.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))

	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	sort.Strings(normalized)
	return normalized
}

// Publish creates a new article. The slug is derived from the title here;
// if it collides with an existing article the storage rejection
// (store.ErrDuplicateSlug) passes through unchanged, and choosing a new
// title or suffix is the caller's move.
func (s *articleService) Publish(ctx context.Context, authorID uuid.UUID, title, description, body string, tags []string) (models.Article, error) {
	log := logger.FromContext(ctx)

	if title == "" || description == "" || body == "" {
		log.Error().Str("title", title).Msg("invalid article data provided")
		return models.Article{}, ErrInvalidDataProvided
	}

	articleSlug := slug.Make(title)
	if articleSlug == "" {
		log.Error().Str("title", title).Msg("title produces an empty slug")
		return models.Article{}, ErrInvalidDataProvided
	}

	article := models.Article{
		ArticleID:   s.ids.Generate(),
		UserID:      authorID,
		Slug:        articleSlug,
		Title:       title,
		Description: description,
		Body:        body,
		TagList:     normalizeTags(tags),
	}

	createdArticle, err := s.articleRepository.CreateArticle(ctx, article)
	if err != nil {
		log.Err(err).Str("slug", articleSlug).Msg("article creation ended with error")
		return models.Article{}, fmt.Errorf("article creation ended with error: %w", err)
	}

	return createdArticle, nil
}

// GetBySlug retrieves an article by permalink.
func (s *articleService) GetBySlug(ctx context.Context, slug string) (models.Article, error) {
	if slug == "" {
		return models.Article{}, ErrInvalidDataProvided
	}

	article, err := s.articleRepository.GetArticleBySlug(ctx, slug)
	if err != nil {
		return models.Article{}, fmt.Errorf("article search by slug failed: %w", err)
	}

	return article, nil
}

// Update applies a partial update after verifying the requester owns the
// article. The tag list, when supplied, is normalized the same way as at
// publish time.
func (s *articleService) Update(ctx context.Context, requesterID uuid.UUID, update models.ArticleUpdate) (models.Article, error) {
	log := logger.FromContext(ctx)

	current, err := s.articleRepository.GetArticleByID(ctx, update.ArticleID)
	if err != nil {
		return models.Article{}, fmt.Errorf("article search by id failed: %w", err)
	}

	if current.UserID != requesterID {
		log.Warn().
			Str("article_id", update.ArticleID.String()).
			Str("requester_id", requesterID.String()).
			Msg("update rejected: requester is not the author")
		return models.Article{}, ErrNotArticleAuthor
	}

	if update.TagList != nil {
		update.TagList = normalizeTags(update.TagList)
	}

	updatedArticle, err := s.articleRepository.UpdateArticle(ctx, update)
	if err != nil {
		log.Err(err).Str("article_id", update.ArticleID.String()).Msg("article update ended with error")
		return models.Article{}, fmt.Errorf("article update ended with error: %w", err)
	}

	return updatedArticle, nil
}

// Delete removes an article after verifying ownership. The schema cascades
// to favorites and comments in the same transaction.
func (s *articleService) Delete(ctx context.Context, requesterID, articleID uuid.UUID) error {
	log := logger.FromContext(ctx)

	current, err := s.articleRepository.GetArticleByID(ctx, articleID)
	if err != nil {
		return fmt.Errorf("article search by id failed: %w", err)
	}

	if current.UserID != requesterID {
		log.Warn().
			Str("article_id", articleID.String()).
			Str("requester_id", requesterID.String()).
			Msg("deletion rejected: requester is not the author")
		return ErrNotArticleAuthor
	}

	if err := s.articleRepository.DeleteArticle(ctx, articleID); err != nil {
		log.Err(err).Str("article_id", articleID.String()).Msg("article deletion ended with error")
		return fmt.Errorf("article deletion ended with error: %w", err)
	}

	return nil
}

// ListByTag lists articles carrying the tag, newest first.
func (s *articleService) ListByTag(ctx context.Context, tag string) ([]models.Article, error) {
	if tag == "" {
		return nil, ErrInvalidDataProvided
	}

	articles, err := s.articleRepository.GetArticlesByTag(ctx, tag)
	if err != nil {
		return nil, fmt.Errorf("article search by tag failed: %w", err)
	}

	return articles, nil
}

// ListByAuthor lists the author's articles, newest first.
func (s *articleService) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]models.Article, error) {
	articles, err := s.articleRepository.GetArticlesByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("article search by author failed: %w", err)
	}

	return articles, nil
}

// Tags lists every distinct tag in use.
func (s *articleService) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.articleRepository.GetAllTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("tag listing failed: %w", err)
	}

	return tags, nil
}
