// Package pipeline runs the two docsift modes end to end: single-document
// outline inference and multi-document persona ranking.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dgallion1/docsift/internal/config"
	"github.com/dgallion1/docsift/internal/extract"
	"github.com/dgallion1/docsift/internal/outline"
	"github.com/dgallion1/docsift/internal/query"
	"github.com/dgallion1/docsift/internal/rank"
	"github.com/dgallion1/docsift/internal/section"
	"github.com/dgallion1/docsift/internal/similarity"
)

var (
	// ErrNoInput means no document in the batch could be processed.
	ErrNoInput = errors.New("no processable input documents")

	// ErrNoRelevantSections means no section cleared the relevance
	// threshold; the run produced no digest.
	ErrNoRelevantSections = errors.New("no relevant sections found")
)

// ExtractFunc loads one document from disk. Swappable for tests.
type ExtractFunc func(path string) (*extract.Document, error)

// ExtractFile is the default ExtractFunc, dispatching on file extension.
func ExtractFile(path string) (*extract.Document, error) {
	ex, err := extract.ForFile(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()
	return ex.Extract(f, filepath.Base(path))
}

// Pipeline wires the extraction, segmentation, scoring, and ranking
// stages together.
type Pipeline struct {
	cfg     config.Config
	scorer  similarity.Scorer
	extract ExtractFunc
	log     *slog.Logger
}

func New(cfg config.Config, scorer similarity.Scorer, log *slog.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		scorer:  scorer,
		extract: ExtractFile,
		log:     log,
	}
}

// Outline infers the title and heading outline for a single document.
func (p *Pipeline) Outline(path string) (*OutlineResult, error) {
	doc, err := p.extract(path)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	res := outline.Synthesize(doc)

	out := &OutlineResult{
		Title:   res.Title,
		Outline: make([]OutlineEntryJSON, 0, len(res.Entries)),
	}
	for _, e := range res.Entries {
		out.Outline = append(out.Outline, OutlineEntryJSON{
			Level: fmt.Sprintf("H%d", e.Level),
			Text:  e.Text,
			Page:  e.Page,
		})
	}
	return out, nil
}

// Rank mines the corpus for the sections most relevant to the persona and
// job, producing the ranked digest with refined excerpts.
//
// Documents are segmented concurrently; section extraction has no
// cross-document dependency. Results merge into input order before
// re-ranking, which needs the full candidate pool.
func (p *Pipeline) Rank(ctx context.Context, pc query.PersonaConfig, files []string) (*RankResult, error) {
	runID := uuid.NewString()
	log := p.log.With("run_id", runID)

	if len(files) == 0 {
		return nil, ErrNoInput
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}

	q := query.Build(pc, names)
	log.Info("query built", "persona", pc.Persona, "keywords", len(q.Keywords), "documents", len(files))

	perDoc := make([][]section.Section, len(files))
	processed := make([]bool, len(files))

	sem := make(chan struct{}, p.cfg.WorkerCount)
	var wg sync.WaitGroup
	for i, path := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()

			doc, err := p.extract(path)
			if err != nil {
				log.Warn("skipping unreadable document", "document", path, "error", err)
				return
			}
			perDoc[i] = section.ExtractSections(doc)
			processed[i] = true
		}(i, path)
	}
	wg.Wait()

	var sections []section.Section
	anyProcessed := false
	for i := range files {
		if processed[i] {
			anyProcessed = true
			sections = append(sections, perDoc[i]...)
		}
	}
	if !anyProcessed {
		return nil, ErrNoInput
	}
	log.Info("corpus segmented", "sections", len(sections))

	candidates := rank.ScoreAll(sections, q)
	if len(candidates) == 0 {
		return nil, ErrNoRelevantSections
	}

	ranked := rank.Rerank(ctx, p.scorer, q.Combined, candidates, log)

	top := p.cfg.TopSections
	if top > len(ranked) {
		top = len(ranked)
	}

	result := &RankResult{
		RunID: runID,
		Metadata: Metadata{
			InputDocuments:      names,
			Persona:             pc.Persona,
			JobToBeDone:         pc.Job,
			ProcessingTimestamp: time.Now().Format(time.RFC3339),
		},
		ExtractedSections:  make([]ExtractedSection, 0, top),
		SubsectionAnalysis: make([]SubsectionAnalysis, 0, top),
	}

	for i, cand := range ranked[:top] {
		result.ExtractedSections = append(result.ExtractedSections, ExtractedSection{
			Document:       cand.Document,
			SectionTitle:   cand.Title,
			ImportanceRank: i + 1,
			PageNumber:     cand.Page,
		})
		result.SubsectionAnalysis = append(result.SubsectionAnalysis, SubsectionAnalysis{
			Document:    cand.Document,
			RefinedText: rank.Refine(cand.Content, cand.Title, q.Combined),
			PageNumber:  cand.Page,
		})
	}

	log.Info("ranking complete", "candidates", len(candidates), "selected", top)
	return result, nil
}
