package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsift/internal/config"
	"github.com/dgallion1/docsift/internal/extract"
	"github.com/dgallion1/docsift/internal/pipeline"
	"github.com/dgallion1/docsift/internal/query"
	"github.com/dgallion1/docsift/internal/similarity"
)

var (
	rankInputDir    string
	rankPersonaFile string
	rankOutputDir   string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank the corpus sections most relevant to a persona and task",
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankInputDir, "input", "i", "input", "directory containing the document corpus")
	rankCmd.Flags().StringVarP(&rankPersonaFile, "persona", "p", "persona.json", "persona/job configuration file")
	rankCmd.Flags().StringVarP(&rankOutputDir, "output", "o", "", "output directory (defaults to OUTPUT_DIR)")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if rankOutputDir != "" {
		cfg.OutputDir = rankOutputDir
	}

	pc, err := query.LoadPersona(rankPersonaFile)
	if err != nil {
		log.Warn("falling back to default persona", "error", err)
	}

	files, err := corpusFiles(rankInputDir, pc.Documents)
	if err != nil {
		return err
	}

	scorer, err := similarity.NewScorer(similarity.Options{
		Backend:      cfg.SimilarityBackend,
		OpenAIAPIKey: cfg.OpenAIAPIKey,
		OpenAIModel:  cfg.OpenAIModel,
	})
	if err != nil {
		return err
	}

	pipe := pipeline.New(cfg, scorer, log)

	result, err := pipe.Rank(cmd.Context(), pc, files)
	if err != nil {
		return err
	}

	path, err := pipeline.WriteRank(result, cfg.OutputDir)
	if err != nil {
		return err
	}

	printDigest(os.Stdout, result)
	fmt.Fprintf(os.Stdout, "%s\n", dimStyle.Render("saved to "+path))
	return nil
}

// corpusFiles resolves the documents to process: the persona config's
// document list when present, otherwise every supported file in the
// input directory in name order.
func corpusFiles(dir string, listed []string) ([]string, error) {
	if len(listed) > 0 {
		files := make([]string, 0, len(listed))
		for _, name := range listed {
			files = append(files, filepath.Join(dir, name))
		}
		return files, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !extract.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("no supported documents in %s", dir)
	}
	return files, nil
}
