package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFExtractor reads PDF files with ledongthuc/pdf, grouping the raw
// glyph stream into row spans with font and position metadata.
type PDFExtractor struct{}

const defaultPageHeight = 792 // US Letter in points, used when MediaBox is absent

func (e *PDFExtractor) Extract(r io.Reader, filename string) (*Document, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "docsift-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &Document{Filename: filename}

	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, Page{Index: i - 1})
			continue
		}
		spans := pageSpans(page, i-1)
		doc.Pages = append(doc.Pages, Page{Index: i - 1, Spans: spans})
	}

	doc.Outline = embeddedOutline(reader, doc.Pages)

	return doc, nil
}

// pageSpans groups the per-glyph text stream into spans, one per run of
// glyphs sharing a row and font.
func pageSpans(page pdflib.Page, pageIndex int) []Span {
	texts := page.Content().Text
	if len(texts) == 0 {
		return nil
	}

	height := pageHeight(page)

	var spans []Span
	var buf strings.Builder
	var cur pdflib.Text
	open := false

	flush := func() {
		if !open {
			return
		}
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		open = false
		if text == "" {
			return
		}
		spans = append(spans, Span{
			Text:     text,
			FontSize: cur.FontSize,
			Bold:     isBoldFont(cur.Font),
			Page:     pageIndex,
			Y:        height - cur.Y,
		})
	}

	for _, t := range texts {
		sameRow := open && abs(t.Y-cur.Y) < 2.0
		sameFont := open && t.Font == cur.Font && t.FontSize == cur.FontSize
		if !sameRow || !sameFont {
			flush()
			cur = t
			open = true
		}
		buf.WriteString(t.S)
	}
	flush()

	return spans
}

func pageHeight(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.Len() == 4 {
		h := box.Index(3).Float64() - box.Index(1).Float64()
		if h > 0 {
			return h
		}
	}
	return defaultPageHeight
}

func isBoldFont(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") ||
		strings.Contains(f, "black") ||
		strings.Contains(f, "heavy") ||
		strings.Contains(f, "semibold") ||
		strings.Contains(f, "demibold")
}

// embeddedOutline flattens the PDF's bookmark tree, if any, resolving
// each entry to a page by forward text search.
func embeddedOutline(reader *pdflib.Reader, pages []Page) []OutlineEntry {
	root := reader.Outline()
	var entries []OutlineEntry
	var walk func(nodes []pdflib.Outline, level int)
	walk = func(nodes []pdflib.Outline, level int) {
		for _, n := range nodes {
			title := strings.TrimSpace(n.Title)
			if title != "" {
				entries = append(entries, OutlineEntry{Level: level, Text: title})
			}
			walk(n.Child, level+1)
		}
	}
	walk(root.Child, 1)

	if len(entries) == 0 {
		return nil
	}

	// The bookmark tree does not carry page numbers; locate each title
	// in the extracted pages, searching forward from the last hit.
	current := 0
	for i := range entries {
		needle := strings.ToLower(entries[i].Text)
		for j := current; j < len(pages); j++ {
			if strings.Contains(strings.ToLower(pages[j].Text()), needle) {
				entries[i].Page = j
				current = j
				break
			}
		}
		if entries[i].Page == 0 && current > 0 {
			entries[i].Page = current
		}
	}

	return entries
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
