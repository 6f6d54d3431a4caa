// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders an analysis bundle as a human-readable text report
// or as a JSON/YAML export.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/project-insight/pkg/types"
)

// Bundle groups everything the renderers serialize for one analysis run.
type Bundle struct {
	Project     string                `json:"project" yaml:"project"`
	Analysis    *types.AnalysisResult `json:"analysis" yaml:"analysis"`
	Papers      []types.Paper         `json:"papers" yaml:"papers"`
	Models      []types.Model         `json:"models" yaml:"models"`
	Suggestions []string              `json:"suggestions" yaml:"suggestions"`
}

const divider = "==============================================================="

// WriteText renders the bundle as a multi-section text report on w.
func WriteText(w io.Writer, b Bundle) {
	a := b.Analysis

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "PROJECT INSIGHT REPORT")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "\nProject: %s\n", b.Project)
	fmt.Fprintf(w, "Source files analyzed: %d\n", a.FilesAnalyzed)

	if m := a.Manifest; m != nil {
		fmt.Fprintf(w, "\nManifest (%s):\n", a.ManifestSource)
		fmt.Fprintf(w, "  name:         %s\n", m.Name)
		fmt.Fprintf(w, "  version:      %s\n", orNA(m.Version))
		fmt.Fprintf(w, "  keywords:     %s\n", orNA(strings.Join(m.Keywords, ", ")))
		fmt.Fprintf(w, "  dependencies: %d declared\n", len(m.Dependencies))
	}

	if doc := a.Document; doc != nil {
		fmt.Fprintf(w, "\nDocument metadata:\n")
		fmt.Fprintf(w, "  research focus: %s\n", orNA(strings.Join(doc.ResearchFocus, ", ")))
		fmt.Fprintf(w, "  keywords:       %s\n", orNA(strings.Join(firstN(doc.Keywords, 5), ", ")))
		fmt.Fprintf(w, "  questions:      %d\n", len(doc.ResearchQuestions))
		fmt.Fprintf(w, "  goals:          %d\n", len(doc.Goals))
		fmt.Fprintf(w, "  methodology:    %d steps\n", len(doc.Methodology))
	}

	fmt.Fprintf(w, "\nTechnologies detected (%d):\n", len(a.Technologies))
	if len(a.Technologies) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, tech := range a.Technologies {
		fmt.Fprintf(w, "  - %-28s %s\n", tech, strings.Join(a.DetectionSources[tech], ", "))
	}

	fmt.Fprintf(w, "\nRelevant papers (%d):\n", len(b.Papers))
	for i, p := range b.Papers {
		fmt.Fprintf(w, "  %d. %s\n", i+1, p.Title)
		fmt.Fprintf(w, "     authors:  %s\n", strings.Join(firstN(p.Authors, 3), ", "))
		fmt.Fprintf(w, "     keywords: %s\n", strings.Join(firstN(p.Keywords, 5), ", "))
		fmt.Fprintf(w, "     url:      %s (upvotes: %d)\n", p.URL, p.Upvotes)
	}

	if len(b.Models) > 0 {
		fmt.Fprintf(w, "\nRelevant models (%d):\n", len(b.Models))
		for i, m := range b.Models {
			fmt.Fprintf(w, "  %d. %s (%d downloads, %d likes)\n",
				i+1, m.ModelID, m.Downloads, m.Likes)
		}
	}

	fmt.Fprintf(w, "\nSuggestions (%d):\n", len(b.Suggestions))
	for i, s := range b.Suggestions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}

	fmt.Fprintf(w, "\n%s\n", divider)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
