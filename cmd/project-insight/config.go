// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/viper"

	"github.com/pdiddy/project-insight/pkg/types"
)

// pipelineConfig assembles the stage configurations from viper. Zero values
// pass through; each stage applies its own defaults.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Analysis: types.AnalysisConfig{
			DocumentFile:     viper.GetString("analysis.document_file"),
			SourceExtensions: viper.GetStringSlice("analysis.source_extensions"),
			ImportPrefixes:   viper.GetStringSlice("analysis.import_prefixes"),
		},
		Research: types.ResearchConfig{
			MaxPapers:   viper.GetInt("research.max_papers"),
			MaxModels:   viper.GetInt("research.max_models"),
			DefaultArea: viper.GetString("research.default_area"),
		},
		History: types.HistoryConfig{
			Dir: viper.GetString("history.dir"),
		},
	}
}

// researchDefaults fills zero research config fields.
func researchDefaults(cfg types.ResearchConfig) types.ResearchConfig {
	if cfg.MaxPapers <= 0 {
		cfg.MaxPapers = 5
	}
	if cfg.MaxModels <= 0 {
		cfg.MaxModels = 5
	}
	if cfg.DefaultArea == "" {
		cfg.DefaultArea = "machine learning"
	}
	return cfg
}
