package markdown

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractReferences_HeaderedSection(t *testing.T) {
	raw := "See [1] and [2].\n\n## Sources\n- [1](https://a.com) Title A\n- [2](https://b.com)"

	body, refs := ExtractReferences(raw)

	if body != "See [1] and [2]." {
		t.Errorf("Expected body %q, got %q", "See [1] and [2].", body)
	}
	if len(refs) != 2 {
		t.Fatalf("Expected 2 references, got %d", len(refs))
	}
	if refs[1].URL != "https://a.com" || refs[1].Title != "Title A" {
		t.Errorf("Unexpected reference 1: %+v", refs[1])
	}
	if refs[2].URL != "https://b.com" || refs[2].Title != "" {
		t.Errorf("Unexpected reference 2: %+v", refs[2])
	}
}

func TestExtractReferences_ReferencesHeader(t *testing.T) {
	raw := "Body text.\n\n## References\n[3](https://example.org/page \"Quoted Title\")"

	body, refs := ExtractReferences(raw)

	if body != "Body text." {
		t.Errorf("Expected body %q, got %q", "Body text.", body)
	}
	if refs[3].Title != "Quoted Title" {
		t.Errorf("Expected quoted title, got %q", refs[3].Title)
	}
}

func TestExtractReferences_HorizontalRuleAfterSources(t *testing.T) {
	raw := "Main text.\nSources below:\n---\n- [1](https://a.com) A"

	body, refs := ExtractReferences(raw)

	if body != "Main text.\nSources below:" {
		t.Errorf("Expected body without rule, got %q", body)
	}
	if len(refs) != 1 || refs[1].Title != "A" {
		t.Errorf("Expected one reference titled A, got %+v", refs)
	}
}

func TestExtractReferences_BareTrailingList(t *testing.T) {
	raw := "Some prose with [1] inline.\n\n[1](https://a.com) First\n[2](https://b.com) Second"

	body, refs := ExtractReferences(raw)

	if body != "Some prose with [1] inline." {
		t.Errorf("Expected trailing list stripped, got %q", body)
	}
	if len(refs) != 2 {
		t.Errorf("Expected 2 references, got %d", len(refs))
	}
}

func TestExtractReferences_Empty(t *testing.T) {
	body, refs := ExtractReferences("")

	if body != "" {
		t.Errorf("Expected empty body, got %q", body)
	}
	if len(refs) != 0 {
		t.Errorf("Expected no references, got %d", len(refs))
	}
}

func TestExtractReferences_NoReferenceSection(t *testing.T) {
	raw := "Just an article body.\nNothing else.\n"

	body, refs := ExtractReferences(raw)

	if body != "Just an article body.\nNothing else." {
		t.Errorf("Expected trimmed body, got %q", body)
	}
	if len(refs) != 0 {
		t.Errorf("Expected no references, got %d", len(refs))
	}
}

func TestExtractReferences_DuplicateNumbersLastWins(t *testing.T) {
	raw := "Body.\n\n## Sources\n- [1](https://first.com) First\n- [1](https://second.com) Second"

	_, refs := ExtractReferences(raw)

	if len(refs) != 1 {
		t.Fatalf("Expected 1 reference, got %d", len(refs))
	}
	if refs[1].URL != "https://second.com" {
		t.Errorf("Expected last occurrence to win, got %q", refs[1].URL)
	}
}

func TestExtractReferences_QuotedTitleBeatsTrailing(t *testing.T) {
	raw := "Body.\n\n## Sources\n- [1](https://a.com \"Quoted\") Trailing text"

	_, refs := ExtractReferences(raw)

	if refs[1].Title != "Quoted" {
		t.Errorf("Expected quoted title precedence, got %q", refs[1].Title)
	}
}

func TestExtractReferences_HeaderWithNoReferenceLines(t *testing.T) {
	raw := "Body text.\n\n## Sources\nno links here"

	body, refs := ExtractReferences(raw)

	if body != "Body text." {
		t.Errorf("Expected body above header, got %q", body)
	}
	if len(refs) != 0 {
		t.Errorf("Expected no references, got %d", len(refs))
	}
}

func TestExtractReferences_RoundTrip(t *testing.T) {
	section := "## Sources\n- [1](https://a.com) Title A\n- [2](https://b.com)"
	raw := "See [1] and [2].\n\n" + section

	body, _ := ExtractReferences(raw)

	if rebuilt := body + "\n\n" + section; rebuilt != raw {
		t.Errorf("Expected extraction to be reversible, got %q", rebuilt)
	}
}

func TestRewriteInlineCitations_Basic(t *testing.T) {
	refs := map[int]Reference{
		1: {Number: 1, URL: "https://a.com", Title: "Title A"},
	}

	got := RewriteInlineCitations("See [1] for details.", refs)

	want := `See <sup class="citation"><a href="#ref-1" title="Title A">[1]</a></sup> for details.`
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestRewriteInlineCitations_DanglingNumberUntouched(t *testing.T) {
	refs := map[int]Reference{
		1: {Number: 1, URL: "https://a.com"},
	}

	got := RewriteInlineCitations("See [1] and also [5].", refs)

	if !strings.Contains(got, "[5]") || strings.Contains(got, "#ref-5") {
		t.Errorf("Dangling citation should stay literal, got %q", got)
	}
}

func TestRewriteInlineCitations_MarkdownLinkSkipped(t *testing.T) {
	refs := map[int]Reference{
		1: {Number: 1, URL: "https://a.com"},
	}

	content := "A real link [1](https://elsewhere.com) stays."
	got := RewriteInlineCitations(content, refs)

	if got != content {
		t.Errorf("Markdown link should not be rewritten, got %q", got)
	}
}

func TestRewriteInlineCitations_Adjacent(t *testing.T) {
	refs := map[int]Reference{
		1: {Number: 1, URL: "https://a.com"},
		2: {Number: 2, URL: "https://b.com"},
		3: {Number: 3, URL: "https://c.com"},
	}

	got := RewriteInlineCitations("Claims[1][2][3].", refs)

	for _, anchor := range []string{"#ref-1", "#ref-2", "#ref-3"} {
		if !strings.Contains(got, anchor) {
			t.Errorf("Expected anchor %s in %q", anchor, got)
		}
	}
	if strings.Contains(got, "[1][2]") {
		t.Errorf("Adjacent citations should each be replaced, got %q", got)
	}
}

func TestRewriteInlineCitations_NoReferences(t *testing.T) {
	content := "Mentions [1] but no reference table."

	if got := RewriteInlineCitations(content, map[int]Reference{}); got != content {
		t.Errorf("Expected content unchanged, got %q", got)
	}
}

func TestDisplayTitle_HostFallback(t *testing.T) {
	ref := Reference{Number: 2, URL: "https://b.com/some/path"}

	if got := ref.DisplayTitle(); got != "b.com" {
		t.Errorf("Expected host fallback b.com, got %q", got)
	}
}

func TestHostLabel_UnparsableURL(t *testing.T) {
	raw := "not a url at all"

	if got := HostLabel(raw); got != raw {
		t.Errorf("Expected raw string back, got %q", got)
	}
}

func TestSortedReferences_Ascending(t *testing.T) {
	refs := map[int]Reference{
		7: {Number: 7, URL: "https://g.com"},
		2: {Number: 2, URL: "https://b.com"},
		5: {Number: 5, URL: "https://e.com"},
	}

	sorted := SortedReferences(refs)

	numbers := make([]int, len(sorted))
	for i, r := range sorted {
		numbers[i] = r.Number
	}
	if !reflect.DeepEqual(numbers, []int{2, 5, 7}) {
		t.Errorf("Expected ascending order, got %v", numbers)
	}
}

