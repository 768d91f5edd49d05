package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	ID         int64          `json:"id" db:"id"`
	DocumentID string         `json:"document_id" db:"document_id"`
	ArticleID  string         `json:"article_id" db:"article_id"`
	UserID     string         `json:"-" db:"user_id"`
	Content    string         `json:"content" db:"content"`
	User       *CommentAuthor `json:"user,omitempty" db:"-"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

// CommentAuthor is the author projection attached to a comment.
// The author is assigned server-side from the validated session
// identity; it is never taken from a client payload.
type CommentAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// CommentPage is one page of a comment listing, recomputed per request
type CommentPage struct {
	Items     []Comment `json:"items"`
	Page      int       `json:"page"`
	PageSize  int       `json:"page_size"`
	PageCount int       `json:"page_count"`
	Total     int       `json:"total"`
}

// CreateCommentRequest is the payload for posting a comment.
// Any author field a client sends is ignored; authorship comes
// from the session.
type CreateCommentRequest struct {
	Content   string `json:"content"`
	ArticleID string `json:"article_id"`
}

// UpdateCommentRequest is the payload for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// IsCommentOwner reports whether currentUser authored the comment.
// This is a UI hint for showing edit/delete affordances only. It is
// NOT a security boundary: the mutation services re-verify ownership
// on every call and must be assumed to face a hostile client.
func IsCommentOwner(comment *Comment, currentUser *CurrentUser) bool {
	if comment == nil || currentUser == nil {
		return false
	}
	if comment.UserID == "" || currentUser.ID == "" {
		return false
	}
	return comment.UserID == currentUser.ID
}
