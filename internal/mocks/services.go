package mocks

import (
	"context"

	"github.com/content-comments-api/internal/apperr"
	"github.com/content-comments-api/internal/models"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	RegisterFunc         func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	LoginFunc            func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	VerifyCredentialFunc func(ctx context.Context, credential string) (*models.CurrentUser, error)
	LogoutCalls          []string
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, apperr.New(apperr.Backend, "not implemented")
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, apperr.New(apperr.Backend, "not implemented")
}

func (m *MockAuthService) VerifyCredential(ctx context.Context, credential string) (*models.CurrentUser, error) {
	if m.VerifyCredentialFunc != nil {
		return m.VerifyCredentialFunc(ctx, credential)
	}
	return nil, apperr.New(apperr.Unauthenticated, "invalid credential")
}

func (m *MockAuthService) Logout(ctx context.Context, credential string) {
	m.LogoutCalls = append(m.LogoutCalls, credential)
}

// MockCommentService is a mock implementation of service.CommentService
type MockCommentService struct {
	ListFunc   func(ctx context.Context, articleID string, page, pageSize int, search string) (*models.CommentPage, error)
	CreateFunc func(ctx context.Context, currentUser *models.CurrentUser, articleID, content string) (*models.Comment, error)
	UpdateFunc func(ctx context.Context, currentUser *models.CurrentUser, documentID, content string) (*models.Comment, error)
	DeleteFunc func(ctx context.Context, currentUser *models.CurrentUser, documentID string) error
}

func (m *MockCommentService) ListComments(ctx context.Context, articleID string, page, pageSize int, search string) (*models.CommentPage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, articleID, page, pageSize, search)
	}
	return &models.CommentPage{}, nil
}

func (m *MockCommentService) CreateComment(ctx context.Context, currentUser *models.CurrentUser, articleID, content string) (*models.Comment, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, currentUser, articleID, content)
	}
	return nil, apperr.New(apperr.Backend, "not implemented")
}

func (m *MockCommentService) UpdateComment(ctx context.Context, currentUser *models.CurrentUser, documentID, content string) (*models.Comment, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, currentUser, documentID, content)
	}
	return nil, apperr.New(apperr.Backend, "not implemented")
}

func (m *MockCommentService) DeleteComment(ctx context.Context, currentUser *models.CurrentUser, documentID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, currentUser, documentID)
	}
	return apperr.New(apperr.Backend, "not implemented")
}

// MockContentService is a mock implementation of service.ContentService
type MockContentService struct {
	GetArticleFunc   func(ctx context.Context, slug string) (*models.RenderedArticle, error)
	ListArticlesFunc func(ctx context.Context, page, pageSize int) (*models.ArticlePage, error)
}

func (m *MockContentService) GetArticle(ctx context.Context, slug string) (*models.RenderedArticle, error) {
	if m.GetArticleFunc != nil {
		return m.GetArticleFunc(ctx, slug)
	}
	return nil, apperr.New(apperr.NotFound, "article not found")
}

func (m *MockContentService) ListArticles(ctx context.Context, page, pageSize int) (*models.ArticlePage, error) {
	if m.ListArticlesFunc != nil {
		return m.ListArticlesFunc(ctx, page, pageSize)
	}
	return &models.ArticlePage{}, nil
}
