package service

import (
	"context"
	"strings"
	"time"

	"github.com/content-comments-api/internal/apperr"
	"github.com/content-comments-api/internal/config"
	"github.com/content-comments-api/internal/models"
	"github.com/content-comments-api/internal/repository"
	"github.com/content-comments-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	cfg      *config.CommentConfig
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, cfg *config.CommentConfig, log zerolog.Logger) CommentService {
	return &commentService{
		comments: comments,
		articles: articles,
		cfg:      cfg,
		log:      log.With().Str("component", "comment_service").Logger(),
	}
}

// ListComments returns one page of comments for an article, newest
// first, optionally filtered by a case-insensitive search over author
// username and body. Page and pageSize fall back to defaults when out
// of range; a whitespace-only search is treated as absent. An empty
// page is a normal result, distinct from a backend failure.
func (s *commentService) ListComments(ctx context.Context, articleID string, page, pageSize int, search string) (*models.CommentPage, error) {
	if strings.TrimSpace(articleID) == "" {
		return nil, apperr.Validation("article reference is required", map[string]string{"article_id": "article_id is required"})
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.cfg.DefaultPageSize
	}
	if s.cfg.MaxPageSize > 0 && pageSize > s.cfg.MaxPageSize {
		pageSize = s.cfg.MaxPageSize
	}

	filter := repository.CommentFilter{
		ArticleID: articleID,
		Search:    strings.TrimSpace(search),
	}

	items, total, err := s.comments.List(ctx, filter, page, pageSize)
	if err != nil {
		s.log.Error().Err(err).Str("article_id", articleID).Msg("Failed to list comments")
		return nil, apperr.Wrap(apperr.Backend, "failed to load comments", err)
	}

	pageCount := 0
	if total > 0 {
		pageCount = (total + pageSize - 1) / pageSize
	}

	return &models.CommentPage{
		Items:     items,
		Page:      page,
		PageSize:  pageSize,
		PageCount: pageCount,
		Total:     total,
	}, nil
}

// CreateComment stores a new comment authored by the session identity.
// The author always comes from currentUser; nothing a client sends can
// change that. No write happens when validation fails.
func (s *commentService) CreateComment(ctx context.Context, currentUser *models.CurrentUser, articleID, content string) (*models.Comment, error) {
	if currentUser == nil {
		return nil, apperr.New(apperr.Unauthenticated, "sign in to comment")
	}

	content = strings.TrimSpace(content)
	if verrs := validation.ValidateCommentContent(content); len(verrs) > 0 {
		return nil, apperr.Validation("invalid comment", validation.FieldMap(verrs))
	}

	if strings.TrimSpace(articleID) == "" {
		return nil, apperr.Validation("invalid comment", map[string]string{"article_id": "article reference is required"})
	}

	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to verify article", err)
	}
	if !exists {
		return nil, apperr.Validation("invalid comment", map[string]string{"article_id": "referenced article does not exist"})
	}

	now := time.Now().UTC()
	comment := &models.Comment{
		DocumentID: uuid.NewString(),
		ArticleID:  articleID,
		UserID:     currentUser.ID,
		Content:    content,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		s.log.Error().Err(err).Str("article_id", articleID).Msg("Failed to create comment")
		return nil, apperr.Wrap(apperr.Backend, "failed to create comment", err)
	}

	comment.User = &models.CommentAuthor{
		ID:       currentUser.ID,
		Username: currentUser.Username,
		Email:    currentUser.Email,
	}

	return comment, nil
}

// UpdateComment replaces the content of a comment owned by the caller.
// Ownership is verified here, against the stored comment, on every
// call; any client-side check is advisory only.
func (s *commentService) UpdateComment(ctx context.Context, currentUser *models.CurrentUser, documentID, content string) (*models.Comment, error) {
	if currentUser == nil {
		return nil, apperr.New(apperr.Unauthenticated, "sign in to edit comments")
	}

	content = strings.TrimSpace(content)
	if verrs := validation.ValidateCommentContent(content); len(verrs) > 0 {
		return nil, apperr.Validation("invalid comment", validation.FieldMap(verrs))
	}

	comment, err := s.comments.GetByDocumentID(ctx, documentID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Backend, "failed to load comment", err)
	}
	if comment == nil {
		return nil, apperr.New(apperr.NotFound, "comment not found")
	}
	if comment.UserID == "" || comment.UserID != currentUser.ID {
		return nil, apperr.New(apperr.Forbidden, "you can only edit your own comments")
	}

	now := time.Now().UTC()
	if err := s.comments.UpdateContent(ctx, documentID, content, now); err != nil {
		s.log.Error().Err(err).Str("document_id", documentID).Msg("Failed to update comment")
		return nil, apperr.Wrap(apperr.Backend, "failed to update comment", err)
	}

	comment.Content = content
	comment.UpdatedAt = now

	return comment, nil
}

// DeleteComment removes a comment owned by the caller. Deleting an
// already-removed comment reports NotFound.
func (s *commentService) DeleteComment(ctx context.Context, currentUser *models.CurrentUser, documentID string) error {
	if currentUser == nil {
		return apperr.New(apperr.Unauthenticated, "sign in to delete comments")
	}

	comment, err := s.comments.GetByDocumentID(ctx, documentID)
	if err != nil {
		return apperr.Wrap(apperr.Backend, "failed to load comment", err)
	}
	if comment == nil {
		return apperr.New(apperr.NotFound, "comment not found")
	}
	if comment.UserID == "" || comment.UserID != currentUser.ID {
		return apperr.New(apperr.Forbidden, "you can only delete your own comments")
	}

	deleted, err := s.comments.Delete(ctx, documentID)
	if err != nil {
		s.log.Error().Err(err).Str("document_id", documentID).Msg("Failed to delete comment")
		return apperr.Wrap(apperr.Backend, "failed to delete comment", err)
	}
	if !deleted {
		// Lost a race with another delete of the same comment.
		return apperr.New(apperr.NotFound, "comment not found")
	}

	return nil
}
