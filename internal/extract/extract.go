package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Span is the minimal unit of extracted text with layout metadata.
// Y is measured from the top of the page.
type Span struct {
	Text     string
	FontSize float64
	Bold     bool
	Page     int // 0-based page index
	Y        float64
}

// Page is an ordered sequence of spans in visual order.
type Page struct {
	Index int
	Spans []Span
}

// Text joins the page's span texts, one span per line.
func (p Page) Text() string {
	var sb strings.Builder
	for _, s := range p.Spans {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// OutlineEntry is one machine-readable outline entry carried by a document.
type OutlineEntry struct {
	Level int // 1-based heading depth
	Text  string
	Page  int // 0-based page index
}

// Document is an extracted document: ordered pages of spans plus an
// optional embedded outline.
type Document struct {
	Filename string
	Pages    []Page
	Outline  []OutlineEntry
}

// Extractor converts raw document bytes into a span Document.
type Extractor interface {
	Extract(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
	".txt":      true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Synthetic font sizes used by the non-PDF extractors so that heading
// spans pass the same layout heuristics as PDF headings.
const (
	sizeH1   = 20.0
	sizeH2   = 16.0
	sizeH3   = 13.0
	sizeBody = 10.0
)

func syntheticSize(level int) float64 {
	switch level {
	case 1:
		return sizeH1
	case 2:
		return sizeH2
	default:
		return sizeH3
	}
}
