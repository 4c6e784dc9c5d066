package outline

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dgallion1/docsift/internal/extract"
)

// line is a visual row of spans on a page.
type line struct {
	text    string
	maxSize float64
	topY    float64
	page    int
}

var (
	numberedRe      = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+(.+)$`)
	trailingPageRe  = regexp.MustCompile(`\s\d+$`)
	rowTolerance    = 2.0
	maxHeadingWords = 30
)

// classifyPages runs the heading classifier over every page, in page
// order. Rules are applied in strict precedence; the first match wins and
// unmatched lines are body text.
func classifyPages(doc *extract.Document, title string) []Entry {
	isForm := strings.Contains(strings.ToLower(title), "application form") ||
		strings.Contains(strings.ToLower(title), "form")

	var entries []Entry
	for _, page := range doc.Pages {
		for _, ln := range groupLines(page) {
			if e, ok := classifyLine(ln, title, isForm); ok {
				entries = append(entries, e)
			}
		}
	}
	return entries
}

// groupLines merges spans sharing a rendering row into visual lines.
func groupLines(page extract.Page) []line {
	var lines []line
	for _, s := range page.Spans {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		if n := len(lines); n > 0 && absDelta(lines[n-1].topY, s.Y) < rowTolerance {
			cur := &lines[n-1]
			cur.text += " " + text
			if s.FontSize > cur.maxSize {
				cur.maxSize = s.FontSize
			}
			if s.Y < cur.topY {
				cur.topY = s.Y
			}
			continue
		}
		lines = append(lines, line{text: text, maxSize: s.FontSize, topY: s.Y, page: page.Index})
	}
	return lines
}

func classifyLine(ln line, title string, isForm bool) (Entry, bool) {
	text := strings.TrimSpace(ln.text)
	if text == "" {
		return Entry{}, false
	}
	if strings.EqualFold(text, title) {
		return Entry{}, false
	}
	words := strings.Fields(text)
	if len(words) > maxHeadingWords {
		return Entry{}, false
	}

	if m := numberedRe.FindStringSubmatch(text); m != nil {
		numbering := m[1]
		body := strings.TrimSpace(m[2])
		depth := strings.Count(numbering, ".")

		// Plain numbered items in forms are list entries, not headings.
		if isForm && depth == 0 {
			return Entry{}, false
		}
		// First-page short numbered lines are list items, not top-level headings.
		if ln.page == 0 && depth == 0 && len(strings.Fields(body)) < 8 {
			return Entry{}, false
		}
		// Table-of-contents rows carry a trailing page number.
		if trailingPageRe.MatchString(body) && ln.page <= 3 {
			return Entry{}, false
		}

		level := depth + 1
		if level > 3 {
			level = 3
		}
		return Entry{Level: level, Text: text, Page: ln.page}, true
	}

	if isAllUpper(text) && len(words) < 8 {
		return Entry{Level: 1, Text: text, Page: ln.page}, true
	}

	if len(words) <= 6 && startsUpper(text) && ln.maxSize >= 10 && ln.topY < 200 {
		return Entry{Level: 1, Text: text, Page: ln.page}, true
	}

	return Entry{}, false
}

// isAllUpper reports whether the text contains at least one cased letter
// and no lowercase letters.
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func absDelta(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
