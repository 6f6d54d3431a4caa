// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-insight/internal/analyze"
	"github.com/pdiddy/project-insight/internal/detect"
	"github.com/pdiddy/project-insight/internal/history"
	"github.com/pdiddy/project-insight/internal/report"
	"github.com/pdiddy/project-insight/internal/research"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [directory]",
	Short: "Analyze a project directory and render a report",
	Long: `Analyze extracts manifest metadata (pyproject.toml, setup.py, or
requirements.txt), parses the structured README, scans source files for
imports, and merges the four signals into a technology profile. The text
report goes to stdout; --json and --yaml switch the output format, --output
writes the same bundle to a file, and --save records the run in the local
history database.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "output the analysis bundle as JSON")
	analyzeCmd.Flags().Bool("yaml", false, "output the analysis bundle as YAML")
	analyzeCmd.Flags().String("output", "", "also write the report to a file")
	analyzeCmd.Flags().String("topic", "", "override the research lookup topic")
	analyzeCmd.Flags().Bool("save", false, "record this run in the history database")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("project directory %s: %w", abs, err)
	}

	cfg := pipelineConfig()
	rcfg := researchDefaults(cfg.Research)

	assistant := analyze.New(abs, cfg.Analysis, detect.DefaultTable())
	result := assistant.Analyze(os.Stderr)

	topic, _ := cmd.Flags().GetString("topic")
	query, err := assistant.ResearchQuery(topic, rcfg.DefaultArea)
	if err != nil {
		return err
	}

	client := research.StaticClient{}
	papers := client.SearchPapers(query, rcfg.MaxPapers)
	models := client.SearchModels(query, rcfg.MaxModels)

	suggestions, err := assistant.Suggestions()
	if err != nil {
		return err
	}

	bundle := report.Bundle{
		Project:     result.ProjectName,
		Analysis:    result,
		Papers:      papers,
		Models:      models,
		Suggestions: suggestions,
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	switch {
	case asJSON:
		if err := report.WriteJSON(os.Stdout, bundle); err != nil {
			return err
		}
	case asYAML:
		if err := report.WriteYAML(os.Stdout, bundle); err != nil {
			return err
		}
	default:
		report.WriteText(os.Stdout, bundle)
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		if err := report.SaveText(output, bundle); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "report written to %s\n", output)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err := history.NewStore(cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.Save(context.Background(), result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved as run %d\n", id)
	}

	return nil
}
