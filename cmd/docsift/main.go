package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docsift/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Structure inference and persona-driven ranking for document corpora",
	Long: `docsift turns unstructured paginated documents into structured, ranked
knowledge. It infers a hierarchical outline for a single document, or mines a
multi-document corpus for the sections most relevant to a reader persona and
task, producing a ranked digest with refined excerpts.`,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("docsift %s\n", version.String()))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
