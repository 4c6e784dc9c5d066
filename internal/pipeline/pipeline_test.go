package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dgallion1/docsift/internal/config"
	"github.com/dgallion1/docsift/internal/extract"
	"github.com/dgallion1/docsift/internal/query"
	"github.com/dgallion1/docsift/internal/similarity"
)

func testPipeline(ex ExtractFunc) *Pipeline {
	cfg := config.Config{WorkerCount: 4, TopSections: 5}
	p := New(cfg, similarity.NewTFIDFScorer(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	p.extract = ex
	return p
}

// formsDoc builds a document whose sections score well for an HR forms
// persona.
func formsDoc(filename string, headings ...string) *extract.Document {
	page := extract.Page{Index: 0}
	y := 50.0
	for _, h := range headings {
		page.Spans = append(page.Spans,
			extract.Span{Text: h, FontSize: 14, Bold: true, Y: y},
			extract.Span{Text: "How to prepare the interactive form: " +
				strings.Repeat("open the form tool and add a signature field to the document then save it ", 4), FontSize: 10, Y: y + 30},
		)
		y += 60
	}
	return &extract.Document{Filename: filename, Pages: []extract.Page{page}}
}

func formsPersona() query.PersonaConfig {
	return query.PersonaConfig{
		Persona: "HR professional",
		Job:     "Create and manage fillable forms for onboarding",
	}
}

func TestRank_NoFiles(t *testing.T) {
	p := testPipeline(func(path string) (*extract.Document, error) {
		t.Fatal("extract should not be called")
		return nil, nil
	})

	if _, err := p.Rank(context.Background(), formsPersona(), nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestRank_AllDocumentsUnreadable(t *testing.T) {
	p := testPipeline(func(path string) (*extract.Document, error) {
		return nil, fmt.Errorf("corrupt file")
	})

	_, err := p.Rank(context.Background(), formsPersona(), []string{"a.pdf", "b.pdf"})
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestRank_SkipsUnreadableDocument(t *testing.T) {
	p := testPipeline(func(path string) (*extract.Document, error) {
		if filepath.Base(path) == "bad.pdf" {
			return nil, fmt.Errorf("corrupt file")
		}
		return formsDoc(filepath.Base(path), "Create Fillable Forms"), nil
	})

	result, err := p.Rank(context.Background(), formsPersona(), []string{"bad.pdf", "good.pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.ExtractedSections) == 0 {
		t.Fatal("expected sections from the readable document")
	}
	for _, sec := range result.ExtractedSections {
		if sec.Document != "good.pdf" {
			t.Errorf("expected only readable document in digest, got %q", sec.Document)
		}
	}
	// The metadata still lists every requested input.
	if len(result.Metadata.InputDocuments) != 2 {
		t.Errorf("expected 2 input documents in metadata, got %v", result.Metadata.InputDocuments)
	}
}

func TestRank_NoRelevantSections(t *testing.T) {
	// A page under the minimum size yields no sections at all.
	p := testPipeline(func(path string) (*extract.Document, error) {
		return &extract.Document{
			Filename: filepath.Base(path),
			Pages:    []extract.Page{{Index: 0, Spans: []extract.Span{{Text: "tiny", FontSize: 10}}}},
		}, nil
	})

	_, err := p.Rank(context.Background(), formsPersona(), []string{"a.pdf"})
	if !errors.Is(err, ErrNoRelevantSections) {
		t.Errorf("expected ErrNoRelevantSections, got %v", err)
	}
}

func TestRank_DigestShape(t *testing.T) {
	p := testPipeline(func(path string) (*extract.Document, error) {
		return formsDoc(filepath.Base(path), "Create Fillable Forms", "Request Signatures", "Export Form Data"), nil
	})

	result, err := p.Rank(context.Background(), formsPersona(), []string{"guide.pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RunID == "" {
		t.Error("expected a run ID")
	}
	if result.Metadata.Persona != "HR professional" {
		t.Errorf("unexpected metadata persona: %q", result.Metadata.Persona)
	}
	if result.Metadata.ProcessingTimestamp == "" {
		t.Error("expected a processing timestamp")
	}
	if len(result.ExtractedSections) == 0 || len(result.ExtractedSections) > 5 {
		t.Fatalf("expected 1..5 sections, got %d", len(result.ExtractedSections))
	}
	if len(result.SubsectionAnalysis) != len(result.ExtractedSections) {
		t.Errorf("expected parallel digest arrays, got %d vs %d",
			len(result.ExtractedSections), len(result.SubsectionAnalysis))
	}
	for i, sec := range result.ExtractedSections {
		if sec.ImportanceRank != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, sec.ImportanceRank)
		}
		if sec.PageNumber < 1 {
			t.Errorf("position %d: expected 1-based page number, got %d", i, sec.PageNumber)
		}
		if result.SubsectionAnalysis[i].RefinedText == "" {
			t.Errorf("position %d: expected a refined excerpt", i)
		}
	}
}

func TestRank_DeterministicAcrossRuns(t *testing.T) {
	ex := func(path string) (*extract.Document, error) {
		base := filepath.Base(path)
		return formsDoc(base, "Create Fillable Forms", "Request Signatures"), nil
	}
	files := []string{"a.pdf", "b.pdf", "c.pdf"}

	first, err := testPipeline(ex).Rank(context.Background(), formsPersona(), files)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := testPipeline(ex).Rank(context.Background(), formsPersona(), files)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if !reflect.DeepEqual(first.ExtractedSections, second.ExtractedSections) {
		t.Errorf("expected identical rankings across runs:\n%v\n%v",
			first.ExtractedSections, second.ExtractedSections)
	}
}

func TestOutline_EndToEnd(t *testing.T) {
	p := testPipeline(func(path string) (*extract.Document, error) {
		return &extract.Document{
			Filename: filepath.Base(path),
			Pages: []extract.Page{{Index: 0, Spans: []extract.Span{
				{Text: "Understanding Document Structure", FontSize: 24, Y: 50},
				{Text: "INTRODUCTION", FontSize: 12, Y: 300},
			}}},
		}, nil
	})

	result, err := p.Outline("doc.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Title != "Understanding Document Structure" {
		t.Errorf("unexpected title: %q", result.Title)
	}
	if len(result.Outline) != 1 || result.Outline[0].Level != "H1" {
		t.Errorf("expected one H1 entry, got %v", result.Outline)
	}
}

func TestOutline_ExtractError(t *testing.T) {
	p := testPipeline(func(path string) (*extract.Document, error) {
		return nil, fmt.Errorf("corrupt file")
	})

	if _, err := p.Outline("doc.pdf"); err == nil {
		t.Fatal("expected error for unreadable document")
	}
}

func TestWriteOutline_NamesFileAfterSource(t *testing.T) {
	dir := t.TempDir()
	res := &OutlineResult{Title: "T", Outline: []OutlineEntryJSON{}}

	path, err := WriteOutline(res, dir, "/tmp/uploads/report.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "report_outline.json" {
		t.Errorf("unexpected output name: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"title": "T"`) {
		t.Errorf("unexpected output content: %s", data)
	}
}

func TestWriteRank_OmitsRunID(t *testing.T) {
	dir := t.TempDir()
	res := &RankResult{
		RunID:              "secret-run-id",
		Metadata:           Metadata{Persona: "P", JobToBeDone: "J"},
		ExtractedSections:  []ExtractedSection{},
		SubsectionAnalysis: []SubsectionAnalysis{},
	}

	path, err := WriteRank(res, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if strings.Contains(string(data), "secret-run-id") {
		t.Error("expected run ID kept out of the persisted result")
	}
	if !strings.Contains(string(data), `"job_to_be_done": "J"`) {
		t.Errorf("unexpected output content: %s", data)
	}
}
