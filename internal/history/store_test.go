// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/project-insight/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.HistoryConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult(name string) *types.AnalysisResult {
	return &types.AnalysisResult{
		ProjectName:   name,
		FilesAnalyzed: 4,
		Technologies:  []string{"NumPy", "PyTorch"},
		DetectionSources: map[string][]string{
			"NumPy":   {"code imports"},
			"PyTorch": {"dependencies"},
		},
		ManifestSource: types.ManifestRequirements,
		Imports:        []string{"import numpy"},
		AnalyzedAt:     time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndList(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id1, err := store.Save(ctx, sampleResult("alpha"))
	require.NoError(t, err)
	id2, err := store.Save(ctx, sampleResult("beta"))
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	runs, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Most recent first.
	assert.Equal(t, "beta", runs[0].Project)
	assert.Equal(t, "alpha", runs[1].Project)
	assert.Equal(t, 4, runs[0].Files)
	assert.Equal(t, []string{"NumPy", "PyTorch"}, runs[0].Technologies)
	assert.Equal(t, sampleResult("beta").AnalyzedAt, runs[0].AnalyzedAt)
}

func TestShow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Save(ctx, sampleResult("alpha"))
	require.NoError(t, err)

	got, err := store.Show(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.ProjectName)
	assert.Equal(t, []string{"code imports"}, got.DetectionSources["NumPy"])
	assert.Equal(t, []string{"import numpy"}, got.Imports)
}

func TestShowMissingRun(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Show(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListEmpty(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, runs)
}
