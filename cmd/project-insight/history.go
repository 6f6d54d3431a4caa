// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/project-insight/internal/history"
	"github.com/pdiddy/project-insight/internal/report"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded analysis runs",
	Long: `History lists analysis runs recorded with 'analyze --save' and shows
the full stored result for a single run.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, most recent first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print the stored result for one run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(pipelineConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Printf("%-5s  %-24s  %-20s  %-6s  %s\n",
		"ID", "Project", "Analyzed", "Files", "Technologies")
	fmt.Println(strings.Repeat("-", 90))
	for _, run := range runs {
		fmt.Printf("%-5d  %-24s  %-20s  %-6d  %d\n",
			run.ID, run.Project, run.AnalyzedAt.Format("2006-01-02 15:04:05"),
			run.Files, len(run.Technologies))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q: %w", args[0], err)
	}

	store, err := history.NewStore(pipelineConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	result, err := store.Show(context.Background(), id)
	if err != nil {
		return err
	}

	return report.WriteJSON(os.Stdout, report.Bundle{
		Project:  result.ProjectName,
		Analysis: result,
	})
}
