package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsift/internal/config"
	"github.com/dgallion1/docsift/internal/pipeline"
	"github.com/dgallion1/docsift/internal/similarity"
)

var outlineOutputDir string

var outlineCmd = &cobra.Command{
	Use:   "outline <document>",
	Short: "Infer the title and heading outline of a single document",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutline,
}

func init() {
	outlineCmd.Flags().StringVarP(&outlineOutputDir, "output", "o", "", "output directory (defaults to OUTPUT_DIR)")
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load()
	if outlineOutputDir != "" {
		cfg.OutputDir = outlineOutputDir
	}

	pipe := pipeline.New(cfg, similarity.NewTFIDFScorer(), log)

	result, err := pipe.Outline(args[0])
	if err != nil {
		return err
	}

	path, err := pipeline.WriteOutline(result, cfg.OutputDir, args[0])
	if err != nil {
		return err
	}

	printOutline(os.Stdout, result)
	fmt.Fprintf(os.Stdout, "%s\n", dimStyle.Render("saved to "+path))
	return nil
}
