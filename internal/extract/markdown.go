package extract

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark. Headings become
// large bold synthetic spans and double as the embedded outline.
type MarkdownExtractor struct{}

const lineAdvance = 14.0 // synthetic vertical advance per block

func (e *MarkdownExtractor) Extract(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	doc := &Document{Filename: filename}
	page := Page{Index: 0}
	y := lineAdvance

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := strings.TrimSpace(string(node.Text(src)))
			if title == "" {
				continue
			}
			page.Spans = append(page.Spans, Span{
				Text:     title,
				FontSize: syntheticSize(node.Level),
				Bold:     true,
				Page:     0,
				Y:        y,
			})
			doc.Outline = append(doc.Outline, OutlineEntry{
				Level: node.Level,
				Text:  title,
				Page:  0,
			})
			y += lineAdvance
		default:
			t := blockText(n, src)
			if t == "" {
				continue
			}
			for _, line := range strings.Split(t, "\n") {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				page.Spans = append(page.Spans, Span{
					Text:     line,
					FontSize: sizeBody,
					Page:     0,
					Y:        y,
				})
				y += lineAdvance
			}
		}
	}

	doc.Pages = []Page{page}
	return doc, nil
}

// blockText gets the text content of a goldmark AST node.
func blockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(blockText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
