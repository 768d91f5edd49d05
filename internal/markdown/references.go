// Package markdown implements the reference-citation pipeline for raw
// markdown bodies: it splits off a trailing "Sources"/"References"
// section into a numbered reference table, rewrites inline [n]
// citation markers into anchored links, and renders the consolidated
// reference list. Parsing is pure: same input, same output, no I/O.
package markdown

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Reference is a single numbered source extracted from a markdown body
type Reference struct {
	Number int    `json:"number"`
	URL    string `json:"url"`
	Title  string `json:"title,omitempty"`
}

// refLineRegex recognizes one reference line: an optional bullet,
// [<number>](<url>), an optional quoted title right after the URL, and
// optional trailing free-text title.
var refLineRegex = regexp.MustCompile(`^[-*]?\s*\[(\d+)\]\(([^)\s]+)(?:\s+"([^"]+)")?\)\s*(.*)$`)

// ExtractReferences splits raw markdown into the displayable body and a
// numbered reference map. Two conventions are tried in order: an
// explicit section header ("## Sources", "## References", or a "---"
// rule directly after a line mentioning sources), then a bare trailing
// list of reference lines. Duplicate numbers are last-wins. Empty input
// yields an empty body and an empty map; this is not an error.
func ExtractReferences(raw string) (string, map[int]Reference) {
	refs := make(map[int]Reference)
	if raw == "" {
		return "", refs
	}

	lines := strings.Split(raw, "\n")

	if marker, ok := findSectionMarker(lines); ok {
		// Headered convention: everything from the marker down is a
		// candidate reference line; the marker line itself never matches.
		for _, line := range lines[marker:] {
			parseReferenceLine(line, refs)
		}
		return rightTrim(strings.Join(lines[:marker], "\n")), refs
	}

	// Fallback convention: a bare trailing list of [n](url) lines.
	first := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if !refLineRegex.MatchString(lines[i]) {
			break
		}
		parseReferenceLine(lines[i], refs)
		first = i
	}
	if first == -1 {
		return rightTrim(raw), refs
	}
	return rightTrim(strings.Join(lines[:first], "\n")), refs
}

// findSectionMarker returns the index of the line that starts the
// reference section, if any.
func findSectionMarker(lines []string) (int, bool) {
	for i, line := range lines {
		trimmed := strings.ToLower(strings.TrimSpace(line))
		if trimmed == "## sources" || trimmed == "## references" {
			return i, true
		}
		if trimmed == "---" && i > 0 && strings.Contains(strings.ToLower(lines[i-1]), "sources") {
			return i, true
		}
	}
	return 0, false
}

// parseReferenceLine parses one candidate line into refs. Title
// precedence: quoted title, then trailing free text, then none.
func parseReferenceLine(line string, refs map[int]Reference) {
	m := refLineRegex.FindStringSubmatch(line)
	if m == nil {
		return
	}
	number, err := strconv.Atoi(m[1])
	if err != nil {
		return
	}
	ref := Reference{Number: number, URL: m[2]}
	if m[3] != "" {
		ref.Title = m[3]
	} else if trailing := strings.TrimSpace(m[4]); trailing != "" {
		ref.Title = trailing
	}
	refs[number] = ref
}

func rightTrim(s string) string {
	return strings.TrimRight(s, " \t\r\n")
}

// citationRegex finds inline bracketed integers. Matches followed by
// "(" are real markdown links and are skipped at rewrite time since
// RE2 has no lookahead.
var citationRegex = regexp.MustCompile(`\[(\d+)\]`)

// RewriteInlineCitations replaces every inline [n] citation that
// resolves in refs with an anchored superscript marker. Numbers
// without a matching reference stay as literal text; adjacent
// citations are each replaced independently.
func RewriteInlineCitations(content string, refs map[int]Reference) string {
	if content == "" || len(refs) == 0 {
		return content
	}

	var b strings.Builder
	last := 0
	for _, loc := range citationRegex.FindAllStringSubmatchIndex(content, -1) {
		start, end := loc[0], loc[1]
		if end < len(content) && content[end] == '(' {
			continue // markdown link, not a citation
		}
		number, err := strconv.Atoi(content[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		ref, ok := refs[number]
		if !ok {
			continue
		}
		b.WriteString(content[last:start])
		b.WriteString(citationMarker(ref))
		last = end
	}
	if last == 0 {
		return content
	}
	b.WriteString(content[last:])
	return b.String()
}

// citationMarker renders the inline marker for one citation. The link
// targets the in-page reference anchor so activation scrolls instead
// of navigating.
func citationMarker(ref Reference) string {
	return fmt.Sprintf(`<sup class="citation"><a href="#ref-%d" title="%s">[%d]</a></sup>`,
		ref.Number, html.EscapeString(ref.DisplayTitle()), ref.Number)
}

// DisplayTitle returns the reference title, falling back to the URL
// host name when no title was extracted.
func (r Reference) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return HostLabel(r.URL)
}

// HostLabel derives a short label from a URL: its host name, or the
// raw string verbatim when the URL does not parse.
func HostLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Hostname()
}

// SortedReferences returns the references in ascending numeric order,
// regardless of the order they appeared in the source.
func SortedReferences(refs map[int]Reference) []Reference {
	out := make([]Reference, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
