// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AnalysisResult is the assembled output of one analysis run. It is created
// once by the orchestrator and immutable thereafter; report rendering,
// suggestion generation, and the history store only read it.
type AnalysisResult struct {
	// ProjectName is the display name: the manifest name when declared,
	// otherwise the project directory name.
	ProjectName string `json:"project_name" yaml:"project_name"`

	// FilesAnalyzed is the number of source files found under the project root.
	FilesAnalyzed int `json:"files_analyzed" yaml:"files_analyzed"`

	// Technologies is the sorted list of detected technology display names.
	Technologies []string `json:"technologies" yaml:"technologies"`

	// DetectionSources maps each detected technology to the ordered,
	// deduplicated provenance tags that contributed it.
	DetectionSources map[string][]string `json:"detection_sources" yaml:"detection_sources"`

	// Manifest holds the extracted manifest metadata.
	Manifest *ManifestMetadata `json:"manifest,omitempty" yaml:"manifest,omitempty"`

	// ManifestSource records which manifest format won for this run.
	ManifestSource ManifestSource `json:"manifest_source" yaml:"manifest_source"`

	// Document holds the structured document metadata, or nil when the
	// document is absent.
	Document *StructuredMetadata `json:"document,omitempty" yaml:"document,omitempty"`

	// Imports is the deduplicated, sorted list of raw import statement lines
	// found in source files.
	Imports []string `json:"imports" yaml:"imports"`

	// AnalyzedAt is the time the run completed.
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`
}
