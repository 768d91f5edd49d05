package service

import (
	"context"

	"github.com/content-comments-api/internal/auth"
	"github.com/content-comments-api/internal/config"
	"github.com/content-comments-api/internal/models"
	"github.com/content-comments-api/internal/repository"
	"github.com/rs/zerolog"
)

// AuthService defines the interface for registration, login and
// credential verification
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	VerifyCredential(ctx context.Context, credential string) (*models.CurrentUser, error)
	Logout(ctx context.Context, credential string)
}

// CommentService defines the comment query and mutation pipeline.
// All mutations take the session identity explicitly; there is no way
// to pass a client-asserted author.
type CommentService interface {
	ListComments(ctx context.Context, articleID string, page, pageSize int, search string) (*models.CommentPage, error)
	CreateComment(ctx context.Context, currentUser *models.CurrentUser, articleID, content string) (*models.Comment, error)
	UpdateComment(ctx context.Context, currentUser *models.CurrentUser, documentID, content string) (*models.Comment, error)
	DeleteComment(ctx context.Context, currentUser *models.CurrentUser, documentID string) error
}

// ContentService defines article reads with markdown reference
// processing applied
type ContentService interface {
	GetArticle(ctx context.Context, slug string) (*models.RenderedArticle, error)
	ListArticles(ctx context.Context, page, pageSize int) (*models.ArticlePage, error)
}

// Services holds all service interfaces
type Services struct {
	Auth    AuthService
	Comment CommentService
	Content ContentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, identityCache *auth.IdentityCache, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Auth:    newAuthService(repos.User, identityCache, &cfg.Auth, log),
		Comment: newCommentService(repos.Comment, repos.Article, &cfg.Comment, log),
		Content: newContentService(repos.Article, log),
	}
}
