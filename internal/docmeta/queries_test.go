// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/project-insight/pkg/types"
)

func TestResearchQueriesPriorityOrder(t *testing.T) {
	meta := types.StructuredMetadata{
		ResearchFocus:     []string{"Anomaly Detection", "Predictive Maintenance"},
		ResearchQuestions: []string{"Can LSTMs beat trees? "},
		Keywords:          []string{"k1", "k2", "k3", "k4"},
		Methodology:       []string{"Method A", "Method B", "Method C"},
	}

	got := ResearchQueries(meta)
	want := []string{
		"Anomaly Detection",
		"Predictive Maintenance",
		"Can LSTMs beat trees",
		"k1 k2 k3",
		"Method A Anomaly Detection",
		"Method A Predictive Maintenance",
		"Method B Anomaly Detection",
		"Method B Predictive Maintenance",
	}
	assert.Equal(t, want, got)
}

func TestResearchQueriesMethodFocusPairs(t *testing.T) {
	meta := types.StructuredMetadata{
		ResearchFocus: []string{"Anomaly Detection"},
		Methodology:   []string{"Method A"},
	}
	got := ResearchQueries(meta)
	assert.Contains(t, got, "Anomaly Detection")
	assert.Contains(t, got, "Method A Anomaly Detection")
}

func TestResearchQueriesSingleKeywordSkipsCombination(t *testing.T) {
	meta := types.StructuredMetadata{Keywords: []string{"solo"}}
	assert.Empty(t, ResearchQueries(meta))
}

func TestResearchQueriesMethodologyAloneYieldsNoPairs(t *testing.T) {
	meta := types.StructuredMetadata{Methodology: []string{"Method A"}}
	assert.Empty(t, ResearchQueries(meta))
}

func TestResearchQueriesEmptyMetadata(t *testing.T) {
	assert.Empty(t, ResearchQueries(types.StructuredMetadata{}))
}
