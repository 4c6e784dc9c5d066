package extract

import (
	"io"
	"strings"
)

// TextExtractor handles plain text files. Form feeds separate pages;
// every non-empty line becomes a body span.
type TextExtractor struct{}

func (e *TextExtractor) Extract(r io.Reader, filename string) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &Document{Filename: filename}
	for i, pageText := range strings.Split(string(raw), "\f") {
		page := Page{Index: i}
		y := lineAdvance
		for _, line := range strings.Split(pageText, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			page.Spans = append(page.Spans, Span{
				Text:     line,
				FontSize: sizeBody,
				Page:     i,
				Y:        y,
			})
			y += lineAdvance
		}
		doc.Pages = append(doc.Pages, page)
	}

	return doc, nil
}
