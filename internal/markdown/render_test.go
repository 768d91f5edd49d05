package markdown

import (
	"strings"
	"testing"
)

func TestRenderReferenceList_Empty(t *testing.T) {
	if got := RenderReferenceList(map[int]Reference{}); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
}

func TestRenderReferenceList_Order(t *testing.T) {
	refs := map[int]Reference{
		2: {Number: 2, URL: "https://b.com", Title: "Beta"},
		1: {Number: 1, URL: "https://a.com", Title: "Alpha"},
	}

	got := RenderReferenceList(refs)

	alpha := strings.Index(got, "Alpha")
	beta := strings.Index(got, "Beta")
	if alpha == -1 || beta == -1 {
		t.Fatalf("Expected both titles rendered, got %q", got)
	}
	if alpha > beta {
		t.Errorf("Expected ascending numeric order, got %q", got)
	}
	if !strings.Contains(got, `id="ref-1"`) || !strings.Contains(got, `id="ref-2"`) {
		t.Errorf("Expected anchor targets for both entries, got %q", got)
	}
}

func TestRenderReferenceList_HostFallbackAndHost(t *testing.T) {
	refs := map[int]Reference{
		1: {Number: 1, URL: "https://example.org/deep/path"},
	}

	got := RenderReferenceList(refs)

	if !strings.Contains(got, ">example.org</a>") {
		t.Errorf("Expected host-name fallback as link text, got %q", got)
	}
	if !strings.Contains(got, `<span class="reference-host">example.org</span>`) {
		t.Errorf("Expected host label span, got %q", got)
	}
}

func TestRenderReferenceList_SanitizesURLScheme(t *testing.T) {
	refs := map[int]Reference{
		1: {Number: 1, URL: "javascript:alert(1)", Title: "Bad"},
	}

	got := RenderReferenceList(refs)

	if strings.Contains(got, "javascript:") {
		t.Errorf("Expected javascript scheme stripped, got %q", got)
	}
	if !strings.Contains(got, "Bad") {
		t.Errorf("Expected title text preserved, got %q", got)
	}
}

func TestRenderReferenceList_EscapesTitle(t *testing.T) {
	refs := map[int]Reference{
		1: {Number: 1, URL: "https://a.com", Title: `<script>alert("x")</script>`},
	}

	got := RenderReferenceList(refs)

	if strings.Contains(got, "<script>") {
		t.Errorf("Expected script tags escaped, got %q", got)
	}
}
