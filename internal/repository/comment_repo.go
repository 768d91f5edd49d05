package repository

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/content-comments-api/internal/database"
	"github.com/content-comments-api/internal/models"
)

// psql builds queries with PostgreSQL-style $n placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// predicate translates the filter into SQL conditions: article
// equality, AND-combined with an OR over author username and body
// when a search term is present.
func (f CommentFilter) predicate() sq.Sqlizer {
	conds := sq.And{sq.Eq{"c.article_id": f.ArticleID}}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"u.username": pattern},
			sq.ILike{"c.content": pattern},
		})
	}
	return conds
}

// Create inserts a new comment and fills in the assigned numeric ID
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (document_id, article_id, user_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		comment.DocumentID, comment.ArticleID, nullString(comment.UserID), comment.Content,
		comment.CreatedAt, comment.UpdatedAt,
	).Scan(&comment.ID)
}

// GetByDocumentID retrieves a comment with its author by stable ID
func (r *commentRepo) GetByDocumentID(ctx context.Context, documentID string) (*models.Comment, error) {
	query := `
		SELECT c.id, c.document_id, c.article_id, c.user_id, c.content, c.created_at, c.updated_at,
		       u.id, u.username, u.email
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.document_id = $1
	`
	comment, err := scanComment(r.db.QueryRowContext(ctx, query, documentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns one page of comments matching filter, newest first,
// together with the total match count. Count and page are read inside
// a single read-only transaction so the result reflects one point in
// time.
func (r *commentRepo) List(ctx context.Context, filter CommentFilter, page, pageSize int) ([]models.Comment, int, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, 0, err
	}
	defer tx.Rollback()

	countSQL, countArgs, err := psql.
		Select("COUNT(*)").
		From("comments c").
		LeftJoin("users u ON u.id = c.user_id").
		Where(filter.predicate()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := tx.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listSQL, listArgs, err := psql.
		Select(
			"c.id", "c.document_id", "c.article_id", "c.user_id", "c.content", "c.created_at", "c.updated_at",
			"u.id", "u.username", "u.email",
		).
		From("comments c").
		LeftJoin("users u ON u.id = c.user_id").
		Where(filter.predicate()).
		OrderBy("c.created_at DESC", "c.id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := tx.QueryContext(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, 0, err
		}
		comments = append(comments, *comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// UpdateContent replaces the body of a comment. Only content is
// mutable after creation.
func (r *commentRepo) UpdateContent(ctx context.Context, documentID, content string, updatedAt time.Time) error {
	query := `UPDATE comments SET content = $1, updated_at = $2 WHERE document_id = $3`
	_, err := r.db.ExecContext(ctx, query, content, updatedAt, documentID)
	return err
}

// Delete removes a comment, reporting whether a row was deleted
func (r *commentRepo) Delete(ctx context.Context, documentID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE document_id = $1`, documentID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// scanner covers both sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(s scanner) (*models.Comment, error) {
	var comment models.Comment
	var userID, authorID, authorName, authorEmail sql.NullString

	err := s.Scan(
		&comment.ID, &comment.DocumentID, &comment.ArticleID, &userID, &comment.Content,
		&comment.CreatedAt, &comment.UpdatedAt,
		&authorID, &authorName, &authorEmail,
	)
	if err != nil {
		return nil, err
	}

	comment.UserID = userID.String
	if authorID.Valid {
		comment.User = &models.CommentAuthor{
			ID:       authorID.String,
			Username: authorName.String,
			Email:    authorEmail.String,
		}
	}

	return &comment, nil
}
