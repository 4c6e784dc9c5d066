package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dgallion1/docsift/internal/pipeline"
)

var (
	// titleStyle for document and section titles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// rankStyle for importance ranks
	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	// headerBoxStyle for the run summary
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(0, 1)
)

// printOutline renders an inferred document outline to w.
func printOutline(w io.Writer, result *pipeline.OutlineResult) {
	title := result.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintln(w, headerBoxStyle.Render(titleStyle.Render(title)))

	if len(result.Outline) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no headings detected"))
		return
	}

	for _, e := range result.Outline {
		indent := strings.Repeat("  ", headingDepth(e.Level))
		fmt.Fprintf(w, "%s%s %s %s\n",
			indent,
			dimStyle.Render(e.Level),
			e.Text,
			dimStyle.Render(fmt.Sprintf("(p.%d)", e.Page)),
		)
	}
}

// printDigest renders a ranked relevance digest to w.
func printDigest(w io.Writer, result *pipeline.RankResult) {
	header := fmt.Sprintf("%s %s\n%s %s\n%s %d documents",
		dimStyle.Render("Persona:"), titleStyle.Render(result.Metadata.Persona),
		dimStyle.Render("Job:"), result.Metadata.JobToBeDone,
		dimStyle.Render("Corpus:"), len(result.Metadata.InputDocuments),
	)
	fmt.Fprintln(w, headerBoxStyle.Render(header))

	for _, sec := range result.ExtractedSections {
		fmt.Fprintf(w, "%s %s %s\n",
			rankStyle.Render(fmt.Sprintf("#%d", sec.ImportanceRank)),
			titleStyle.Render(sec.SectionTitle),
			dimStyle.Render(fmt.Sprintf("%s p.%d", sec.Document, sec.PageNumber)),
		)
	}

	for _, sub := range result.SubsectionAnalysis {
		fmt.Fprintf(w, "\n%s\n%s\n",
			dimStyle.Render(fmt.Sprintf("%s p.%d", sub.Document, sub.PageNumber)),
			sub.RefinedText,
		)
	}
}

// headingDepth maps a heading level label like "H2" to its indent depth.
func headingDepth(level string) int {
	if len(level) != 2 || level[0] != 'H' {
		return 0
	}
	d := int(level[1] - '1')
	if d < 0 {
		return 0
	}
	return d
}
