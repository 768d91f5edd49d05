package markdown

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// referencePolicy is the sanitizer for rendered reference markup.
// Reference URLs and titles come from CMS-authored content, so the
// generated HTML is run through an allow-list before it leaves this
// package. The policy admits only the elements the reference list and
// citation markers are built from.
var referencePolicy = buildReferencePolicy()

func buildReferencePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements("section", "h2", "ol", "li", "sup", "span")
	p.AllowAttrs("class").OnElements("section", "ol", "sup", "span")
	p.AllowAttrs("id").OnElements("li")
	p.AllowAttrs("href", "title", "target", "rel").OnElements("a")
	p.AllowURLSchemes("http", "https")
	p.AllowRelativeURLs(true) // in-page #ref-n anchors

	return p
}

// RenderReferenceList renders the consolidated References section in
// ascending numeric order. Each entry is an anchor target showing the
// title (or host-name fallback) with the bare host as secondary text,
// linking out in a new browsing context. Empty input renders nothing.
func RenderReferenceList(refs map[int]Reference) string {
	if len(refs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<section class="references"><h2>References</h2><ol class="reference-list">`)
	for _, ref := range SortedReferences(refs) {
		fmt.Fprintf(&b,
			`<li id="ref-%d"><a href="%s" target="_blank" rel="noopener noreferrer">%s</a> <span class="reference-host">%s</span></li>`,
			ref.Number,
			html.EscapeString(ref.URL),
			html.EscapeString(ref.DisplayTitle()),
			html.EscapeString(HostLabel(ref.URL)),
		)
	}
	b.WriteString(`</ol></section>`)

	return referencePolicy.Sanitize(b.String())
}
