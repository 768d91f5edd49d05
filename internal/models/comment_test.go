package models

import "testing"

func TestIsCommentOwner(t *testing.T) {
	owner := &CurrentUser{ID: "u1", Username: "alice"}
	other := &CurrentUser{ID: "u2", Username: "bob"}
	comment := &Comment{DocumentID: "d1", UserID: "u1"}

	if !IsCommentOwner(comment, owner) {
		t.Error("Expected owner match")
	}
	if IsCommentOwner(comment, other) {
		t.Error("Expected non-owner mismatch")
	}
}

func TestIsCommentOwner_AnonymousNeverOwns(t *testing.T) {
	user := &CurrentUser{ID: "u1"}

	if IsCommentOwner(&Comment{UserID: ""}, user) {
		t.Error("Ownerless comment must not match any user")
	}
	if IsCommentOwner(&Comment{UserID: "u1"}, &CurrentUser{}) {
		t.Error("Identity without an id must not match")
	}
	if IsCommentOwner(nil, user) || IsCommentOwner(&Comment{UserID: "u1"}, nil) {
		t.Error("Nil inputs must not match")
	}
}
