package types

// AnalysisConfig holds settings for the analysis stage.
type AnalysisConfig struct {
	// DocumentFile is the structured document filename relative to the
	// project root (default "README.md").
	DocumentFile string `json:"document_file" yaml:"document_file"`

	// SourceExtensions lists the file extensions scanned as source code
	// (default [".py"]).
	SourceExtensions []string `json:"source_extensions" yaml:"source_extensions"`

	// ImportPrefixes lists the line prefixes collected as import statements
	// (default ["import ", "from "]).
	ImportPrefixes []string `json:"import_prefixes" yaml:"import_prefixes"`
}

// ResearchConfig holds settings for the research lookup stage.
type ResearchConfig struct {
	// MaxPapers is the maximum number of papers returned (default 5).
	MaxPapers int `json:"max_papers" yaml:"max_papers"`

	// MaxModels is the maximum number of models returned (default 5).
	MaxModels int `json:"max_models" yaml:"max_models"`

	// DefaultArea is the lookup topic used when neither the document nor the
	// manifest yields one (default "machine learning").
	DefaultArea string `json:"default_area" yaml:"default_area"`
}

// HistoryConfig holds settings for the run-history store.
type HistoryConfig struct {
	// Dir is the directory containing the history database
	// (default ".insight").
	Dir string `json:"dir" yaml:"dir"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Research ResearchConfig `json:"research" yaml:"research"`
	History  HistoryConfig  `json:"history" yaml:"history"`
}
