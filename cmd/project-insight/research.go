// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-insight/internal/research"
)

var researchCmd = &cobra.Command{
	Use:   "research [topic]",
	Short: "Look up papers and models for a topic",
	Long: `Research expands a topic label into a lookup query and prints the
matching papers and pre-trained models from the bundled static dataset.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResearch,
}

func init() {
	researchCmd.Flags().Int("max-papers", 5, "maximum number of papers to print")
	researchCmd.Flags().Int("max-models", 5, "maximum number of models to print")

	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")
	query := research.ExpandQuery(topic)
	fmt.Fprintf(os.Stderr, "query: %s\n", query)

	maxPapers, _ := cmd.Flags().GetInt("max-papers")
	maxModels, _ := cmd.Flags().GetInt("max-models")

	client := research.StaticClient{}
	papers := client.SearchPapers(query, maxPapers)
	models := client.SearchModels(query, maxModels)

	fmt.Printf("Papers (%d):\n", len(papers))
	for i, p := range papers {
		fmt.Printf("  %d. %s\n     %s (upvotes: %d)\n", i+1, p.Title, p.URL, p.Upvotes)
	}

	fmt.Printf("\nModels (%d):\n", len(models))
	for i, m := range models {
		fmt.Printf("  %d. %s (%d downloads)\n     %s\n", i+1, m.ModelID, m.Downloads, m.URL)
	}

	return nil
}
