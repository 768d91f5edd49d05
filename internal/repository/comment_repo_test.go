package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/content-comments-api/internal/database"
	"github.com/content-comments-api/internal/models"
	"github.com/content-comments-api/internal/repository"
)

func newMockRepo(t *testing.T) (repository.CommentRepository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New failed: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	return repository.NewCommentRepo(&database.DB{DB: mockDB}), mock
}

var commentColumns = []string{
	"id", "document_id", "article_id", "user_id", "content", "created_at", "updated_at",
	"u_id", "u_username", "u_email",
}

func TestCommentRepo_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO comments .* RETURNING id`).
		WithArgs("doc-1", "a1", "u1", "hello", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	comment := &models.Comment{
		DocumentID: "doc-1",
		ArticleID:  "a1",
		UserID:     "u1",
		Content:    "hello",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repo.Create(context.Background(), comment); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if comment.ID != 42 {
		t.Errorf("Expected assigned id 42, got %d", comment.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestCommentRepo_GetByDocumentID_NoRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM comments c\s+LEFT JOIN users u`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(commentColumns))

	comment, err := repo.GetByDocumentID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("GetByDocumentID failed: %v", err)
	}
	if comment != nil {
		t.Errorf("Expected nil for missing comment, got %+v", comment)
	}
}

func TestCommentRepo_GetByDocumentID_AnonymousAuthor(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	// user_id is NULL after the author account was deleted
	mock.ExpectQuery(`SELECT .* FROM comments c\s+LEFT JOIN users u`).
		WithArgs("doc-1").
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(int64(1), "doc-1", "a1", nil, "orphaned", now, now, nil, nil, nil))

	comment, err := repo.GetByDocumentID(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("GetByDocumentID failed: %v", err)
	}
	if comment.UserID != "" {
		t.Errorf("Expected empty user id, got %q", comment.UserID)
	}
	if comment.User != nil {
		t.Errorf("Expected no author projection, got %+v", comment.User)
	}
}

func TestCommentRepo_List_SinglePointInTimeRead(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM comments c LEFT JOIN users u ON u\.id = c\.user_id WHERE`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT c\.id, c\.document_id, .* ORDER BY c\.created_at DESC, c\.id DESC LIMIT 5 OFFSET 5`).
		WithArgs("a1").
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(int64(2), "doc-2", "a1", "u1", "second", now, now, "u1", "alice", "alice@example.com").
			AddRow(int64(1), "doc-1", "a1", "u1", "first", now.Add(-time.Minute), now.Add(-time.Minute), "u1", "alice", "alice@example.com"))
	mock.ExpectCommit()

	items, total, err := repo.List(context.Background(), repository.CommentFilter{ArticleID: "a1"}, 2, 5)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 7 {
		t.Errorf("Expected total 7, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].User == nil || items[0].User.Username != "alice" {
		t.Errorf("Expected author attached, got %+v", items[0].User)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestCommentRepo_List_SearchUsesILike(t *testing.T) {
	repo, mock := newMockRepo(t)

	filter := repository.CommentFilter{ArticleID: "a1", Search: "alice"}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\).*u\.username ILIKE .* OR c\.content ILIKE`).
		WithArgs("a1", "%alice%", "%alice%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT c\.id, .*ILIKE`).
		WithArgs("a1", "%alice%", "%alice%").
		WillReturnRows(sqlmock.NewRows(commentColumns))
	mock.ExpectCommit()

	items, total, err := repo.List(context.Background(), filter, 1, 5)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 0 || len(items) != 0 {
		t.Errorf("Expected empty page, got total %d items %d", total, len(items))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestCommentRepo_UpdateContent(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectExec(`UPDATE comments SET content = \$1, updated_at = \$2 WHERE document_id = \$3`).
		WithArgs("edited", now, "doc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateContent(context.Background(), "doc-1", "edited", now); err != nil {
		t.Fatalf("UpdateContent failed: %v", err)
	}
}

func TestCommentRepo_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM comments WHERE document_id = \$1`).
		WithArgs("doc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("Expected a row deleted")
	}

	mock.ExpectExec(`DELETE FROM comments WHERE document_id = \$1`).
		WithArgs("doc-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err = repo.Delete(context.Background(), "doc-1")
	if err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if deleted {
		t.Error("Expected no row deleted on second delete")
	}
}
