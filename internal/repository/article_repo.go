package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/content-comments-api/internal/database"
	"github.com/content-comments-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `id, slug, title, body, author_id, tags, status, published_at, created_at, updated_at`

// Create inserts a new article
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	tagsJSON, _ := json.Marshal(article.Tags)
	if article.Tags == nil {
		tagsJSON = []byte("[]")
	}

	query := `
		INSERT INTO articles (id, slug, title, body, author_id, tags, status, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		article.ID, article.Slug, article.Title, article.Body, nullString(article.AuthorID),
		tagsJSON, article.Status, article.PublishedAt,
		article.CreatedAt, time.Now(),
	)
	return err
}

// GetByID retrieves an article by ID
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetBySlug retrieves an article by its URL slug
func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *articleRepo) getOne(ctx context.Context, query string, arg interface{}) (*models.Article, error) {
	var article models.Article
	var tagsJSON []byte
	var authorID sql.NullString
	var publishedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&article.ID, &article.Slug, &article.Title, &article.Body, &authorID,
		&tagsJSON, &article.Status, &publishedAt, &article.CreatedAt, &article.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	json.Unmarshal(tagsJSON, &article.Tags)
	article.AuthorID = authorID.String
	if publishedAt.Valid {
		article.PublishedAt = &publishedAt.Time
	}

	return &article, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)", id).Scan(&exists)
	return exists, err
}

// List returns one page of articles, newest first, with the total count
func (r *articleRepo) List(ctx context.Context, page, pageSize int, publishedOnly bool) ([]models.Article, int, error) {
	where := ""
	if publishedOnly {
		where = ` WHERE status = 'published'`
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`+where).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + articleColumns + ` FROM articles` + where +
		` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var article models.Article
		var tagsJSON []byte
		var authorID sql.NullString
		var publishedAt sql.NullTime

		err := rows.Scan(
			&article.ID, &article.Slug, &article.Title, &article.Body, &authorID,
			&tagsJSON, &article.Status, &publishedAt, &article.CreatedAt, &article.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		json.Unmarshal(tagsJSON, &article.Tags)
		article.AuthorID = authorID.String
		if publishedAt.Valid {
			article.PublishedAt = &publishedAt.Time
		}
		articles = append(articles, article)
	}

	return articles, total, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
