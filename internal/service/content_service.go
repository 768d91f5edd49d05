package service

import (
	"context"

	"github.com/content-comments-api/internal/apperr"
	"github.com/content-comments-api/internal/markdown"
	"github.com/content-comments-api/internal/models"
	"github.com/content-comments-api/internal/repository"
	"github.com/rs/zerolog"
)

const defaultArticlePageSize = 10

type contentService struct {
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newContentService(articles repository.ArticleRepository, log zerolog.Logger) ContentService {
	return &contentService{
		articles: articles,
		log:      log.With().Str("component", "content_service").Logger(),
	}
}

// GetArticle loads an article by slug and runs its body through the
// reference pipeline. When the body carries no reference section the
// content passes through unchanged and no reference list is rendered.
func (s *contentService) GetArticle(ctx context.Context, slug string) (*models.RenderedArticle, error) {
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		s.log.Error().Err(err).Str("slug", slug).Msg("Failed to load article")
		return nil, apperr.Wrap(apperr.Backend, "failed to load article", err)
	}
	if article == nil {
		return nil, apperr.New(apperr.NotFound, "article not found")
	}

	body, refs := markdown.ExtractReferences(article.Body)
	body = markdown.RewriteInlineCitations(body, refs)

	rendered := &models.RenderedArticle{
		Article:           *article,
		Body:              body,
		References:        markdown.SortedReferences(refs),
		ReferenceListHTML: markdown.RenderReferenceList(refs),
	}
	rendered.Article.Body = ""

	return rendered, nil
}

// ListArticles returns one page of published articles, newest first
func (s *contentService) ListArticles(ctx context.Context, page, pageSize int) (*models.ArticlePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultArticlePageSize
	}

	items, total, err := s.articles.List(ctx, page, pageSize, true)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list articles")
		return nil, apperr.Wrap(apperr.Backend, "failed to load articles", err)
	}

	// Listings carry metadata only; bodies are fetched per article.
	for i := range items {
		items[i].Body = ""
	}

	pageCount := 0
	if total > 0 {
		pageCount = (total + pageSize - 1) / pageSize
	}

	return &models.ArticlePage{
		Items:     items,
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
		Total:     total,
	}, nil
}
