package extract

import (
	"strings"
	"testing"
)

func TestHTMLExtractor_HeadingsAndBody(t *testing.T) {
	input := `<html><head><title>ignored</title><style>p{color:red}</style></head>
<body>
<nav>skip this navigation</nav>
<h1>City Overview</h1>
<p>The old town sits on a hill above the harbor.</p>
<h2>Where to Eat</h2>
<p>Most restaurants cluster around the market square.</p>
</body></html>`

	doc, err := (&HTMLExtractor{}).Extract(strings.NewReader(input), "city.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(doc.Outline) != 2 {
		t.Fatalf("expected 2 outline entries, got %v", doc.Outline)
	}
	if doc.Outline[0].Level != 1 || doc.Outline[0].Text != "City Overview" {
		t.Errorf("unexpected first entry: %+v", doc.Outline[0])
	}
	if doc.Outline[1].Level != 2 || doc.Outline[1].Text != "Where to Eat" {
		t.Errorf("unexpected second entry: %+v", doc.Outline[1])
	}

	text := doc.Pages[0].Text()
	if !strings.Contains(text, "old town") || !strings.Contains(text, "market square") {
		t.Errorf("expected paragraph text extracted, got %q", text)
	}
	if strings.Contains(text, "navigation") || strings.Contains(text, "color:red") {
		t.Errorf("expected nav and style content skipped, got %q", text)
	}
}

func TestHTMLExtractor_HeadingSpansOutrankBody(t *testing.T) {
	input := `<html><body><h1>Top</h1><p>plain body paragraph</p></body></html>`

	doc, err := (&HTMLExtractor{}).Extract(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spans := doc.Pages[0].Spans
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %v", spans)
	}
	if !spans[0].Bold || spans[0].FontSize <= spans[1].FontSize {
		t.Errorf("expected bold larger heading span, got %+v", spans[0])
	}
}
