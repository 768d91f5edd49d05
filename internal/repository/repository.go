package repository

import (
	"context"
	"time"

	"github.com/content-comments-api/internal/database"
	"github.com/content-comments-api/internal/models"
)

// CommentFilter is the fixed set of predicates a comment listing
// supports: article equality plus an optional case-insensitive
// substring search over author username and comment body. Repositories
// translate it into SQL; callers never pass query fragments through.
type CommentFilter struct {
	ArticleID string
	Search    string
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context, page, pageSize int, publishedOnly bool) ([]models.Article, int, error)
}

// CommentRepository defines the interface for comment data operations.
// List returns one page plus the total match count from a single
// point-in-time read.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByDocumentID(ctx context.Context, documentID string) (*models.Comment, error)
	List(ctx context.Context, filter CommentFilter, page, pageSize int) ([]models.Comment, int, error)
	UpdateContent(ctx context.Context, documentID, content string, updatedAt time.Time) error
	Delete(ctx context.Context, documentID string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
	}
}
