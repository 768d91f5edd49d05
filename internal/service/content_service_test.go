package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/content-comments-api/internal/apperr"
	"github.com/content-comments-api/internal/mocks"
	"github.com/content-comments-api/internal/models"
	"github.com/rs/zerolog"
)

func TestGetArticle_RunsReferencePipeline(t *testing.T) {
	articleRepo := mocks.NewMockArticleRepository()
	svc := newContentService(articleRepo, zerolog.Nop())

	articleRepo.Create(context.Background(), &models.Article{
		ID:     "a1",
		Slug:   "go-generics",
		Title:  "Go Generics",
		Body:   "See [1] and [2].\n\n## Sources\n- [1](https://a.com) Title A\n- [2](https://b.com)",
		Status: models.StatusPublished,
	})

	rendered, err := svc.GetArticle(context.Background(), "go-generics")
	if err != nil {
		t.Fatalf("GetArticle failed: %v", err)
	}

	if !strings.Contains(rendered.Body, `href="#ref-1"`) || !strings.Contains(rendered.Body, `href="#ref-2"`) {
		t.Errorf("Expected inline citations rewritten, got %q", rendered.Body)
	}
	if strings.Contains(rendered.Body, "## Sources") {
		t.Errorf("Expected reference section stripped from body, got %q", rendered.Body)
	}
	if rendered.Article.Body != "" {
		t.Error("Expected raw body cleared on the embedded article")
	}

	if len(rendered.References) != 2 {
		t.Fatalf("Expected 2 references, got %d", len(rendered.References))
	}
	if rendered.References[0].Number != 1 || rendered.References[1].Number != 2 {
		t.Errorf("Expected references in ascending order, got %+v", rendered.References)
	}
	// Untitled reference falls back to its host name
	if rendered.References[1].DisplayTitle() != "b.com" {
		t.Errorf("Expected host fallback, got %q", rendered.References[1].DisplayTitle())
	}

	if !strings.Contains(rendered.ReferenceListHTML, `id="ref-1"`) {
		t.Errorf("Expected rendered reference list, got %q", rendered.ReferenceListHTML)
	}
}

func TestGetArticle_NoReferences(t *testing.T) {
	articleRepo := mocks.NewMockArticleRepository()
	svc := newContentService(articleRepo, zerolog.Nop())

	articleRepo.Create(context.Background(), &models.Article{
		ID:     "a1",
		Slug:   "plain",
		Title:  "Plain",
		Body:   "No citations here.",
		Status: models.StatusPublished,
	})

	rendered, err := svc.GetArticle(context.Background(), "plain")
	if err != nil {
		t.Fatalf("GetArticle failed: %v", err)
	}
	if rendered.Body != "No citations here." {
		t.Errorf("Expected body passed through, got %q", rendered.Body)
	}
	if len(rendered.References) != 0 || rendered.ReferenceListHTML != "" {
		t.Errorf("Expected no reference output, got %+v", rendered)
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	svc := newContentService(mocks.NewMockArticleRepository(), zerolog.Nop())

	_, err := svc.GetArticle(context.Background(), "missing")
	if !apperr.IsKind(err, apperr.NotFound) {
		t.Errorf("Expected NotFound, got %v", err)
	}
}

func TestListArticles_PublishedOnly(t *testing.T) {
	articleRepo := mocks.NewMockArticleRepository()
	svc := newContentService(articleRepo, zerolog.Nop())

	now := time.Now()
	articleRepo.Create(context.Background(), &models.Article{
		ID: "a1", Slug: "live", Title: "Live", Body: "text",
		Status: models.StatusPublished, CreatedAt: now,
	})
	articleRepo.Create(context.Background(), &models.Article{
		ID: "a2", Slug: "wip", Title: "WIP", Body: "text",
		Status: models.StatusDraft, CreatedAt: now.Add(time.Minute),
	})

	page, err := svc.ListArticles(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}

	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("Expected only the published article, got %+v", page)
	}
	if page.Items[0].Slug != "live" {
		t.Errorf("Expected live article, got %q", page.Items[0].Slug)
	}
	if page.Items[0].Body != "" {
		t.Error("Expected listing bodies cleared")
	}
	if page.Page != 1 || page.PageSize != 10 {
		t.Errorf("Expected default pagination, got page %d size %d", page.Page, page.PageSize)
	}
}
