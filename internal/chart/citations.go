package chart

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/vish0009/MWPL-NSE/internal/ai"
)

type citationKey struct {
	uri   string
	title string
}

// DedupeCitations drops candidates without a URI and collapses exact
// duplicates, keyed by the (uri, title) pair: the same URI under two
// different titles counts as two citations. First-seen order is preserved.
func DedupeCitations(candidates []ai.Citation) []ai.Citation {
	seen := make(map[citationKey]bool, len(candidates))
	var out []ai.Citation
	for _, c := range candidates {
		if c.URI == "" {
			continue
		}
		key := citationKey{uri: c.URI, title: c.Title}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// RenderCitations renders the deduplicated grounding sources as a link list.
// An empty set renders nothing at all, so the container stays hidden.
func RenderCitations(candidates []ai.Citation) (template.HTML, error) {
	citations := DedupeCitations(candidates)
	if len(citations) == 0 {
		return "", nil
	}

	items := make([]struct{ URI, Text string }, 0, len(citations))
	for _, c := range citations {
		text := c.Title
		if text == "" {
			text = c.URI
		}
		items = append(items, struct{ URI, Text string }{URI: c.URI, Text: text})
	}

	var sb strings.Builder
	if err := citationsTmpl.Execute(&sb, items); err != nil {
		return "", fmt.Errorf("render citations: %w", err)
	}
	return template.HTML(sb.String()), nil
}

var citationsTmpl = template.Must(template.New("citations").Parse(`<div class="citations">
<h2>Sources</h2>
<ul>{{range .}}<li><a href="{{.URI}}" target="_blank" rel="noopener noreferrer">{{.Text}}</a></li>{{end}}</ul>
</div>
`))
