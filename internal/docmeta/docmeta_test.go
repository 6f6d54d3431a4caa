// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmeta

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllBuckets(t *testing.T) {
	content := `# Project

## Research Focus
- Anomaly Detection

## Research Questions
- How early can faults be detected?

## Technologies
- PyTorch
- Pandas

## Keywords
- partial discharge
- time series

## Related Papers
- "Benchmarking ML for Fault Detection" (2025)

## Goals
- Reduce false positives

## Methodology
- Feature engineering

## Datasets
- Internal sensor data
`
	meta := Parse(content)
	require.NotNil(t, meta)
	assert.Equal(t, []string{"Anomaly Detection"}, meta.ResearchFocus)
	assert.Equal(t, []string{"How early can faults be detected?"}, meta.ResearchQuestions)
	assert.Equal(t, []string{"PyTorch", "Pandas"}, meta.Technologies)
	assert.Equal(t, []string{"partial discharge", "time series"}, meta.Keywords)
	assert.Len(t, meta.RelatedPapers, 1)
	assert.Equal(t, []string{"Reduce false positives"}, meta.Goals)
	assert.Equal(t, []string{"Feature engineering"}, meta.Methodology)
	assert.Equal(t, []string{"Internal sensor data"}, meta.Datasets)
	assert.False(t, meta.IsEmpty())
}

func TestParseAppendsAcrossSameBucketSections(t *testing.T) {
	// "Tags" and "Topics" both classify as keywords; items append in
	// heading-encounter order.
	content := "## Tags\n- a\n\n## Topics\n- b\n- c\n"
	meta := Parse(content)
	assert.Equal(t, []string{"a", "b", "c"}, meta.Keywords)
}

func TestParseDuplicateHeadingLastOneWins(t *testing.T) {
	meta := Parse("## Keywords\na\n## Keywords\nb\n")
	assert.Equal(t, []string{"b"}, meta.Keywords)
}

func TestParseUnknownSectionsIgnored(t *testing.T) {
	meta := Parse("## Installation\n- pip install x\n")
	assert.True(t, meta.IsEmpty())
}

func TestParseNoSections(t *testing.T) {
	meta := Parse("just a paragraph of text")
	require.NotNil(t, meta)
	assert.True(t, meta.IsEmpty())
}

func TestParseFileMissingIsAbsence(t *testing.T) {
	var warnings bytes.Buffer
	meta := ParseFile(filepath.Join(t.TempDir(), "README.md"), &warnings)
	assert.Nil(t, meta)
	assert.Empty(t, warnings.String(), "missing file should not warn")
}

func TestParseFileReadsDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("## Goals\n- ship it\n"), 0o644))

	var warnings bytes.Buffer
	meta := ParseFile(path, &warnings)
	require.NotNil(t, meta)
	assert.Equal(t, []string{"ship it"}, meta.Goals)
}

func TestParseFileInvalidUTF8Tolerated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.md")
	content := append([]byte("## Goals\n- ok "), 0xff, 0xfe, '\n')
	require.NoError(t, os.WriteFile(path, content, 0o644))

	var warnings bytes.Buffer
	meta := ParseFile(path, &warnings)
	require.NotNil(t, meta)
	require.Len(t, meta.Goals, 1)
	assert.Contains(t, meta.Goals[0], "ok")
}
