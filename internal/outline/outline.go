// Package outline infers a document title and a hierarchical heading
// outline from layout signals when no machine-readable outline exists.
package outline

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dgallion1/docsift/internal/extract"
)

// Entry is one outline heading. Level is 1..3 (H1..H3); Page is the
// 0-based page index the heading appears on.
type Entry struct {
	Level int
	Text  string
	Page  int
}

// Result is an inferred document structure.
type Result struct {
	Title   string
	Entries []Entry
}

var separatorRe = regexp.MustCompile(`^[-=]{3,}$`)

// InferTitle picks the document title from the first page's largest-font
// spans: every span longer than five characters whose font size is within
// 90% of the largest observed size, joined in descending size order.
func InferTitle(page extract.Page) string {
	type sized struct {
		text string
		size float64
	}
	var spans []sized
	for _, s := range page.Spans {
		text := strings.TrimSpace(s.Text)
		if utf8.RuneCountInString(text) > 5 {
			spans = append(spans, sized{text: text, size: s.FontSize})
		}
	}
	if len(spans) == 0 {
		return ""
	}

	sort.SliceStable(spans, func(i, j int) bool { return spans[i].size > spans[j].size })

	topSize := spans[0].size
	var parts []string
	for _, s := range spans {
		if s.size >= 0.9*topSize {
			parts = append(parts, s.text)
		}
	}

	title := strings.TrimSpace(strings.Join(parts, " "))
	if separatorRe.MatchString(title) {
		return ""
	}
	return title
}

// Synthesize builds the title and outline for a document. A machine-readable
// outline carried by the document is adopted verbatim; otherwise headings
// are inferred page by page from layout and numbering patterns. Either path
// excludes the title and de-duplicates by (level, text, page).
func Synthesize(doc *extract.Document) Result {
	var title string
	if len(doc.Pages) > 0 {
		title = InferTitle(doc.Pages[0])
	}

	var candidates []Entry
	if len(doc.Outline) > 0 {
		for _, e := range doc.Outline {
			level := e.Level
			if level < 1 {
				level = 1
			}
			if level > 3 {
				level = 3
			}
			candidates = append(candidates, Entry{
				Level: level,
				Text:  strings.TrimSpace(e.Text),
				Page:  e.Page,
			})
		}
	} else {
		candidates = classifyPages(doc, title)
	}

	result := Result{Title: title}
	seen := make(map[Entry]bool)
	for _, c := range candidates {
		if c.Text == "" {
			continue
		}
		if strings.EqualFold(c.Text, title) {
			continue
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		result.Entries = append(result.Entries, c)
	}

	return result
}
