package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/content-comments-api/internal/models"
	"github.com/content-comments-api/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users        map[string]*models.User
	EmailToUser  map[string]*models.User
	CreateError  error
	GetByIDError error
	GetByIDCalls int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:       make(map[string]*models.User),
		EmailToUser: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Users[user.ID] = user
	m.EmailToUser[user.Email] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.GetByIDCalls++
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	return m.Users[id], nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.EmailToUser[email], nil
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := m.EmailToUser[email]
	return ok, nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range m.Users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[string]*models.Article
	BySlug      map[string]*models.Article
	ExistsError error
	GetError    error
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
		BySlug:   make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	m.Articles[article.ID] = article
	m.BySlug[article.Slug] = article
	return nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.Articles[id], nil
}

func (m *MockArticleRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	return m.BySlug[slug], nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id string) (bool, error) {
	if m.ExistsError != nil {
		return false, m.ExistsError
	}
	_, ok := m.Articles[id]
	return ok, nil
}

func (m *MockArticleRepository) List(ctx context.Context, page, pageSize int, publishedOnly bool) ([]models.Article, int, error) {
	var all []models.Article
	for _, a := range m.Articles {
		if publishedOnly && a.Status != models.StatusPublished {
			continue
		}
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	return paginate(all, page, pageSize), len(all), nil
}

// MockCommentRepository is an in-memory CommentRepository that mirrors
// the SQL listing semantics: article equality, case-insensitive
// substring search over author username and content, newest first.
type MockCommentRepository struct {
	Comments    map[string]*models.Comment
	nextID      int64
	CreateError error
	ListError   error
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{Comments: make(map[string]*models.Comment)}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	m.nextID++
	comment.ID = m.nextID
	stored := *comment
	m.Comments[comment.DocumentID] = &stored
	return nil
}

func (m *MockCommentRepository) GetByDocumentID(ctx context.Context, documentID string) (*models.Comment, error) {
	comment, ok := m.Comments[documentID]
	if !ok {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (m *MockCommentRepository) List(ctx context.Context, filter repository.CommentFilter, page, pageSize int) ([]models.Comment, int, error) {
	if m.ListError != nil {
		return nil, 0, m.ListError
	}

	var matched []models.Comment
	for _, c := range m.Comments {
		if c.ArticleID != filter.ArticleID {
			continue
		}
		if filter.Search != "" && !matchesSearch(c, filter.Search) {
			continue
		}
		matched = append(matched, *c)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	return paginate(matched, page, pageSize), len(matched), nil
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, documentID, content string, updatedAt time.Time) error {
	m.UpdateCalls++
	if comment, ok := m.Comments[documentID]; ok {
		comment.Content = content
		comment.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, documentID string) (bool, error) {
	m.DeleteCalls++
	if _, ok := m.Comments[documentID]; !ok {
		return false, nil
	}
	delete(m.Comments, documentID)
	return true, nil
}

func matchesSearch(c *models.Comment, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(c.Content), needle) {
		return true
	}
	if c.User != nil && strings.Contains(strings.ToLower(c.User.Username), needle) {
		return true
	}
	return false
}

func paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(items) || start < 0 {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
