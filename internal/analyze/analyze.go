// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze orchestrates the project introspection pipeline: manifest
// extraction, structured document parsing, multi-source technology
// detection, import scanning, and the assembly of the final analysis result.
package analyze

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pdiddy/project-insight/internal/detect"
	"github.com/pdiddy/project-insight/internal/docmeta"
	"github.com/pdiddy/project-insight/internal/manifest"
	"github.com/pdiddy/project-insight/internal/research"
	"github.com/pdiddy/project-insight/pkg/types"
)

// ErrNotAnalyzed is returned by operations that need an analysis result
// before Analyze has run.
var ErrNotAnalyzed = errors.New("no analysis available: run Analyze first")

// Assistant runs the analysis pipeline over one project directory. Each
// Analyze call produces a fresh, self-contained result; nothing is shared
// across runs.
type Assistant struct {
	dir      string
	cfg      types.AnalysisConfig
	table    detect.Table
	analysis *types.AnalysisResult
}

// New returns an Assistant for the project at dir. Zero-value config fields
// take defaults: README.md as the document, .py source files, and
// import/from statement prefixes.
func New(dir string, cfg types.AnalysisConfig, table detect.Table) *Assistant {
	if cfg.DocumentFile == "" {
		cfg.DocumentFile = "README.md"
	}
	if len(cfg.SourceExtensions) == 0 {
		cfg.SourceExtensions = []string{".py"}
	}
	if len(cfg.ImportPrefixes) == 0 {
		cfg.ImportPrefixes = []string{"import ", "from "}
	}
	if len(table) == 0 {
		table = detect.DefaultTable()
	}
	return &Assistant{dir: dir, cfg: cfg, table: table}
}

// Analyze runs the full pipeline and returns the assembled result. It never
// fails: missing manifests and documents degrade to defaults, and per-file
// read problems are reported as warnings on w.
func (a *Assistant) Analyze(w io.Writer) *types.AnalysisResult {
	fmt.Fprintf(w, "analyzing %s\n", a.dir)

	meta, source := manifest.Extract(a.dir, w)
	fmt.Fprintf(w, "  manifest: %s\n", source)

	doc := docmeta.ParseFile(filepath.Join(a.dir, a.cfg.DocumentFile), w)
	if doc == nil {
		fmt.Fprintf(w, "  document: absent\n")
	} else {
		fmt.Fprintf(w, "  document: %s\n", a.cfg.DocumentFile)
	}

	d := detect.NewDetector(a.table)
	d.ScanKeywords(meta.Keywords)
	d.ScanDependencies(meta.Dependencies)
	d.ScanSourceFiles(a.dir, a.cfg.SourceExtensions, w)
	d.ScanDocument(doc)
	detection := d.Result()

	imports := detect.ScanImports(a.dir, a.cfg.SourceExtensions, a.cfg.ImportPrefixes, w)
	files := detect.CountSourceFiles(a.dir, a.cfg.SourceExtensions)

	fmt.Fprintf(w, "  %d source files, %d technologies, %d imports\n",
		files, len(detection.Technologies), len(imports))

	result := &types.AnalysisResult{
		ProjectName:      meta.Name,
		FilesAnalyzed:    files,
		Technologies:     detection.Technologies,
		DetectionSources: detection.Sources,
		Manifest:         &meta,
		ManifestSource:   source,
		Document:         doc,
		Imports:          imports,
		AnalyzedAt:       time.Now().UTC(),
	}
	a.analysis = result
	return result
}

// Result returns the last analysis, or ErrNotAnalyzed when none has run.
func (a *Assistant) Result() (*types.AnalysisResult, error) {
	if a.analysis == nil {
		return nil, ErrNotAnalyzed
	}
	return a.analysis, nil
}

// ResearchQuery picks the lookup query for the last analysis. Priority: an
// explicit topic, then the first document-derived query, then the first
// manifest keyword, then defaultArea. The winner runs through the topic
// expansion table.
func (a *Assistant) ResearchQuery(topic, defaultArea string) (string, error) {
	if a.analysis == nil {
		return "", ErrNotAnalyzed
	}

	area := topic
	if area == "" && a.analysis.Document != nil {
		if queries := docmeta.ResearchQueries(*a.analysis.Document); len(queries) > 0 {
			area = queries[0]
		}
	}
	if area == "" && a.analysis.Manifest != nil && len(a.analysis.Manifest.Keywords) > 0 {
		area = a.analysis.Manifest.Keywords[0]
	}
	if area == "" {
		area = defaultArea
	}
	return research.ExpandQuery(area), nil
}
