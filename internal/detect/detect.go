// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detect merges technology signals from four independent sources --
// manifest keywords, declared dependencies, raw source-file content, and
// structured document sections -- against a fixed token table, tracking
// provenance per detected technology.
package detect

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdiddy/project-insight/pkg/types"
)

// Provenance tags recorded per detection source.
const (
	SourceManifestKeywords = "manifest keywords"
	SourceDependencies     = "dependencies"
	SourceCodeImports      = "code imports"
	SourceDocTechnologies  = "document technologies"
	SourceDocKeywords      = "document keywords"
	SourceDocResearch      = "document research sections"
)

// Mapping associates a lowercase lookup token with a technology display name.
type Mapping struct {
	Token string
	Name  string
}

// Table is an ordered technology lookup table. Order is data, not an
// accident of control flow, so scan traversal is deterministic.
type Table []Mapping

// DefaultTable returns the built-in token table.
func DefaultTable() Table {
	return Table{
		{"numpy", "NumPy"},
		{"pandas", "Pandas"},
		{"matplotlib", "Matplotlib"},
		{"scipy", "SciPy"},
		{"sklearn", "Scikit-learn"},
		{"scikit-learn", "Scikit-learn"},
		{"tensorflow", "TensorFlow"},
		{"torch", "PyTorch"},
		{"pytorch", "PyTorch"},
		{"pydantic", "Pydantic"},
		{"fastapi", "FastAPI"},
		{"flask", "Flask"},
		{"django", "Django"},
		{"streamlit", "Streamlit"},
		{"mcp", "Model Context Protocol"},
		{"hatch", "Hatch"},
		{"pytest", "pytest"},
		{"transformers", "Hugging Face Transformers"},
		{"lstm", "LSTM Networks"},
		{"cnn", "Convolutional Neural Networks"},
		{"random forest", "Random Forest"},
		{"xgboost", "XGBoost"},
	}
}

// Result holds detected technologies with per-technology provenance.
type Result struct {
	// Technologies is the sorted list of detected display names.
	Technologies []string

	// Sources maps each display name to the ordered, deduplicated
	// provenance tags that contributed it.
	Sources map[string][]string
}

// Detector accumulates (technology, provenance) pairs across scans.
// Each technology appears once; each tag appears at most once per
// technology no matter how many individual matches contributed it.
type Detector struct {
	table   Table
	sources map[string][]string
}

// NewDetector returns a Detector using the given table.
func NewDetector(table Table) *Detector {
	return &Detector{
		table:   table,
		sources: make(map[string][]string),
	}
}

func (d *Detector) mark(name, tag string) {
	for _, existing := range d.sources[name] {
		if existing == tag {
			return
		}
	}
	d.sources[name] = append(d.sources[name], tag)
}

// ScanKeywords tests each manifest keyword for table-token containment.
func (d *Detector) ScanKeywords(keywords []string) {
	for _, keyword := range keywords {
		lower := strings.ToLower(keyword)
		for _, m := range d.table {
			if strings.Contains(lower, m.Token) {
				d.mark(m.Name, SourceManifestKeywords)
			}
		}
	}
}

// ScanDependencies matches declared dependencies exactly against table
// tokens after stripping version-constraint and extras suffixes.
func (d *Detector) ScanDependencies(deps []string) {
	for _, dep := range deps {
		name := dep
		for _, sep := range []string{">=", "==", "["} {
			if i := strings.Index(name, sep); i >= 0 {
				name = name[:i]
			}
		}
		name = strings.TrimSpace(strings.ToLower(name))
		for _, m := range d.table {
			if name == m.Token {
				d.mark(m.Name, SourceDependencies)
			}
		}
	}
}

// ScanSourceFiles substring-tests every table token against the lowercased
// content of each source file under dir. Unreadable files are skipped with
// a warning on w, never fatally.
func (d *Detector) ScanSourceFiles(dir string, exts []string, w io.Writer) {
	walkSources(dir, exts, func(path string) {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "warning: could not read %s: %v\n", path, err)
			return
		}
		content := strings.ToLower(string(data))
		for _, m := range d.table {
			if strings.Contains(content, m.Token) {
				d.mark(m.Name, SourceCodeImports)
			}
		}
	})
}

// ScanDocument tests structured document metadata: the technologies bucket,
// the keywords bucket, and the research focus, methodology, and questions
// buckets joined as a single blob. A nil document contributes nothing.
func (d *Detector) ScanDocument(meta *types.StructuredMetadata) {
	if meta == nil {
		return
	}

	for _, tech := range meta.Technologies {
		lower := strings.ToLower(tech)
		for _, m := range d.table {
			if strings.Contains(lower, m.Token) {
				d.mark(m.Name, SourceDocTechnologies)
			}
		}
	}

	for _, keyword := range meta.Keywords {
		lower := strings.ToLower(keyword)
		for _, m := range d.table {
			if strings.Contains(lower, m.Token) {
				d.mark(m.Name, SourceDocKeywords)
			}
		}
	}

	var blob []string
	blob = append(blob, meta.ResearchFocus...)
	blob = append(blob, meta.Methodology...)
	blob = append(blob, meta.ResearchQuestions...)
	text := strings.ToLower(strings.Join(blob, " "))
	for _, m := range d.table {
		if strings.Contains(text, m.Token) {
			d.mark(m.Name, SourceDocResearch)
		}
	}
}

// Result returns the accumulated detections with display names sorted
// ascending.
func (d *Detector) Result() Result {
	names := make([]string, 0, len(d.sources))
	for name := range d.sources {
		names = append(names, name)
	}
	sort.Strings(names)

	sources := make(map[string][]string, len(d.sources))
	for name, tags := range d.sources {
		sources[name] = append([]string(nil), tags...)
	}

	return Result{Technologies: names, Sources: sources}
}

// walkSources calls fn for every regular file under dir whose name ends in
// one of exts. Traversal errors on individual entries are skipped.
func walkSources(dir string, exts []string, fn func(path string)) {
	filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		for _, ext := range exts {
			if strings.HasSuffix(entry.Name(), ext) {
				fn(path)
				break
			}
		}
		return nil
	})
}
