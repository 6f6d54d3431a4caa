// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package research provides paper and model lookup for analysis results.
// The bundled StaticClient answers from fixed literals selected by keyword
// match; a network-backed client can implement Client and be swapped in
// without touching the analysis pipeline.
package research

import (
	"strings"

	"github.com/pdiddy/project-insight/pkg/types"
)

// Client is the research lookup abstraction.
type Client interface {
	SearchPapers(query string, limit int) []types.Paper
	SearchModels(query string, limit int) []types.Model
}

// queryExpansions maps short topic labels to full lookup queries. Unknown
// topics pass through verbatim.
var queryExpansions = map[string]string{
	"partial discharge":      "partial discharge detection machine learning",
	"machine learning":       "machine learning algorithms",
	"deep learning":          "deep learning neural networks",
	"signal processing":      "signal processing analysis",
	"mcp":                    "model context protocol llm integration",
	"model context protocol": "model context protocol llm agents",
	"ai":                     "artificial intelligence machine learning",
	"anomaly detection":      "anomaly detection machine learning",
	"time series":            "time series forecasting deep learning",
	"predictive maintenance": "predictive maintenance ai",
}

// ExpandQuery resolves a topic label to a full lookup query.
func ExpandQuery(topic string) string {
	if expanded, ok := queryExpansions[strings.ToLower(strings.TrimSpace(topic))]; ok {
		return expanded
	}
	return topic
}

// StaticClient serves canned lookup results. It performs no network calls;
// result sets are selected by substring match on the query.
type StaticClient struct{}

// SearchPapers returns the canned paper set matching query, truncated to limit.
func (StaticClient) SearchPapers(query string, limit int) []types.Paper {
	lower := strings.ToLower(query)

	var papers []types.Paper
	if strings.Contains(lower, "mcp") || strings.Contains(lower, "context") {
		papers = []types.Paper{
			{
				Title:    "Model Context Protocol: Standardizing LLM-Tool Integration",
				Authors:  []string{"Anthropic Research Team"},
				Abstract: "A protocol for standardized integration between LLMs and external tools",
				Keywords: []string{"MCP", "LLM", "Tool Integration"},
				URL:      "https://modelcontextprotocol.io",
				Upvotes:  100,
			},
		}
	} else {
		papers = []types.Paper{
			{
				Title:    "Benchmarking ML and DL for Fault Detection",
				Authors:  []string{"Bhuvan Saravanan"},
				Abstract: "Comparative analysis of ML and DL",
				Keywords: []string{"Random Forest", "LSTM", "1D-CNN"},
				URL:      "https://hf.co/papers/2505.06295",
				Upvotes:  1,
			},
		}
	}

	if limit > 0 && len(papers) > limit {
		papers = papers[:limit]
	}
	return papers
}

// SearchModels returns the canned model set matching query, truncated to limit.
func (StaticClient) SearchModels(query string, limit int) []types.Model {
	lower := strings.ToLower(query)

	var models []types.Model
	if strings.Contains(lower, "time series") || strings.Contains(lower, "forecast") {
		models = []types.Model{
			{
				ModelID:   "amazon/chronos-t5-small",
				Downloads: 1250000,
				Likes:     210,
				Tags:      []string{"time-series", "forecasting"},
				URL:       "https://hf.co/amazon/chronos-t5-small",
			},
		}
	} else {
		models = []types.Model{
			{
				ModelID:   "distilbert-base-uncased",
				Downloads: 14800000,
				Likes:     680,
				Tags:      []string{"transformers", "fill-mask"},
				URL:       "https://hf.co/distilbert-base-uncased",
			},
			{
				ModelID:   "facebook/bart-large-mnli",
				Downloads: 3900000,
				Likes:     1200,
				Tags:      []string{"zero-shot-classification"},
				URL:       "https://hf.co/facebook/bart-large-mnli",
			},
		}
	}

	if limit > 0 && len(models) > limit {
		models = models[:limit]
	}
	return models
}
