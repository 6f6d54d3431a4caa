// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the project-insight
// pipeline: manifest metadata, structured document metadata, detection
// provenance, and the assembled analysis result.
package types

// StructuredMetadata holds the semantic buckets extracted from a project's
// structured document (README.md by default). Every bucket defaults to an
// empty sequence; a document without a matching section simply leaves the
// bucket empty. Item order is heading-encounter order and duplicates are
// kept.
type StructuredMetadata struct {
	// ResearchFocus lists the project's main research areas.
	ResearchFocus []string `json:"research_focus" yaml:"research_focus"`

	// ResearchQuestions lists the questions the project tries to answer.
	ResearchQuestions []string `json:"research_questions" yaml:"research_questions"`

	// Technologies lists technologies declared in the document.
	Technologies []string `json:"technologies" yaml:"technologies"`

	// Keywords lists document keywords for paper discovery.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// RelatedPapers lists referenced literature.
	RelatedPapers []string `json:"related_papers" yaml:"related_papers"`

	// Goals lists project objectives.
	Goals []string `json:"goals" yaml:"goals"`

	// Methodology lists research approach steps.
	Methodology []string `json:"methodology" yaml:"methodology"`

	// Datasets lists declared data sources.
	Datasets []string `json:"datasets" yaml:"datasets"`
}

// IsEmpty reports whether no bucket holds any item.
func (m StructuredMetadata) IsEmpty() bool {
	return len(m.ResearchFocus) == 0 &&
		len(m.ResearchQuestions) == 0 &&
		len(m.Technologies) == 0 &&
		len(m.Keywords) == 0 &&
		len(m.RelatedPapers) == 0 &&
		len(m.Goals) == 0 &&
		len(m.Methodology) == 0 &&
		len(m.Datasets) == 0
}

// ManifestSource identifies which manifest format supplied the metadata for
// a run. Extraction priority is pyproject.toml, then setup.py, then
// requirements.txt.
type ManifestSource string

const (
	ManifestNone         ManifestSource = "none"
	ManifestPyproject    ManifestSource = "pyproject.toml"
	ManifestSetupScript  ManifestSource = "setup.py"
	ManifestRequirements ManifestSource = "requirements.txt"
)

// ManifestMetadata holds metadata declared by a project manifest. Name is
// always set; when no manifest declares one it falls back to the project
// directory name. All other fields default to empty.
type ManifestMetadata struct {
	// Name is the declared project name.
	Name string `json:"name" yaml:"name"`

	// Version is the declared project version.
	Version string `json:"version" yaml:"version"`

	// Description is the declared one-line description.
	Description string `json:"description" yaml:"description"`

	// Keywords lists declared keywords in manifest order.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// Dependencies lists declared runtime dependencies in manifest order.
	Dependencies []string `json:"dependencies" yaml:"dependencies"`

	// DevDependencies lists declared development dependencies.
	DevDependencies []string `json:"dev_dependencies" yaml:"dev_dependencies"`
}
