// Package section partitions extracted documents into titled content
// sections using font-based or pattern-based heading detection.
package section

import (
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsift/internal/extract"
	"github.com/dgallion1/docsift/internal/normalize"
)

// Section is a titled block of body content bounded by two detected
// headings (or page start/end). Page is 1-based.
type Section struct {
	Document string
	Page     int
	Title    string
	Content  string
}

const (
	minPageChars    = 100
	minContentChars = 80
)

// filenameDenylist marks corpus files that never contribute sections.
var filenameDenylist = []string{"test", "ultimate", "checklist", "skills"}

// strategy produces sections for one page. Strategies are tried in order;
// the first non-empty result wins.
type strategy func(page extract.Page, document string) []Section

// ExtractSections partitions a document into sections, page by page.
func ExtractSections(doc *extract.Document) []Section {
	name := strings.ToLower(filepath.Base(doc.Filename))
	for _, skip := range filenameDenylist {
		if strings.Contains(name, skip) {
			return nil
		}
	}

	strategies := []strategy{fontBased, patternBased}

	var sections []Section
	for _, page := range doc.Pages {
		if len(page.Text()) < minPageChars {
			continue
		}
		for _, strat := range strategies {
			if found := strat(page, doc.Filename); len(found) > 0 {
				sections = append(sections, found...)
				break
			}
		}
	}
	return sections
}

// fontBased detects headings by font size relative to the page mean, or
// boldness, gated by the title-quality predicate.
func fontBased(page extract.Page, document string) []Section {
	type element struct {
		text string
		size float64
		bold bool
	}

	var elements []element
	var sizeSum float64
	for _, s := range page.Spans {
		text := normalize.Clean(s.Text)
		if text == "" {
			continue
		}
		elements = append(elements, element{text: text, size: s.FontSize, bold: s.Bold})
		sizeSum += s.FontSize
	}
	if len(elements) == 0 {
		return nil
	}

	threshold := sizeSum / float64(len(elements)) * 1.1

	var sections []Section
	var title string
	var content []string

	emit := func() {
		if title == "" || len(content) == 0 {
			return
		}
		joined := strings.Join(content, " ")
		if len(joined) > minContentChars {
			sections = append(sections, Section{
				Document: document,
				Page:     page.Index + 1,
				Title:    title,
				Content:  joined,
			})
		}
	}

	for _, el := range elements {
		isHeading := (el.size > threshold || el.bold) && IsQualityTitle(el.text)
		if isHeading {
			emit()
			title = el.text
			content = nil
		} else {
			content = append(content, el.text)
		}
	}
	emit()

	return sections
}

// patternBased falls back to normalized plain-text lines, detecting
// headings solely via the title-quality predicate.
func patternBased(page extract.Page, document string) []Section {
	var lines []string
	for _, raw := range strings.Split(page.Text(), "\n") {
		if line := normalize.Clean(raw); line != "" {
			lines = append(lines, line)
		}
	}

	var sections []Section
	var title string
	var content []string

	emit := func() {
		if title == "" || len(content) == 0 {
			return
		}
		joined := strings.Join(content, " ")
		if len(joined) > minContentChars {
			sections = append(sections, Section{
				Document: document,
				Page:     page.Index + 1,
				Title:    title,
				Content:  joined,
			})
		}
	}

	for _, line := range lines {
		if IsQualityTitle(line) {
			emit()
			title = line
			content = nil
		} else {
			content = append(content, line)
		}
	}
	emit()

	return sections
}
