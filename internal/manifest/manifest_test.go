// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/project-insight/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestExtractPyproject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", `
[project]
name = "gamma-analytics"
version = "0.3.0"
description = "PD analytics toolkit"
keywords = ["mcp", "anomaly detection"]
dependencies = ["numpy>=1.26", "pandas==2.2.0"]

[project.optional-dependencies]
dev = ["pytest", "ruff"]
`)

	var w bytes.Buffer
	meta, source := Extract(dir, &w)
	assert.Equal(t, types.ManifestPyproject, source)
	assert.Equal(t, "gamma-analytics", meta.Name)
	assert.Equal(t, "0.3.0", meta.Version)
	assert.Equal(t, "PD analytics toolkit", meta.Description)
	assert.Equal(t, []string{"mcp", "anomaly detection"}, meta.Keywords)
	assert.Equal(t, []string{"numpy>=1.26", "pandas==2.2.0"}, meta.Dependencies)
	assert.Equal(t, []string{"pytest", "ruff"}, meta.DevDependencies)
	assert.Empty(t, w.String())
}

func TestExtractPyprojectMissingNameFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[project]\nversion = \"1.0\"\n")

	var w bytes.Buffer
	meta, source := Extract(dir, &w)
	assert.Equal(t, types.ManifestPyproject, source)
	assert.Equal(t, filepath.Base(dir), meta.Name)
}

func TestExtractMalformedPyprojectFallsThrough(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[project\nname = broken")
	writeFile(t, dir, "requirements.txt", "numpy\n")

	var w bytes.Buffer
	meta, source := Extract(dir, &w)
	assert.Equal(t, types.ManifestRequirements, source)
	assert.Equal(t, []string{"numpy"}, meta.Dependencies)
	assert.Contains(t, w.String(), "warning:")
}

func TestExtractSetupScript(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "setup.py", `
from setuptools import setup

setup(
    name="legacy-project",
    keywords=["numpy", 'signal processing'],
    description="An older layout",
)
`)

	var w bytes.Buffer
	meta, source := Extract(dir, &w)
	assert.Equal(t, types.ManifestSetupScript, source)
	assert.Equal(t, "legacy-project", meta.Name)
	assert.Equal(t, []string{"numpy", "signal processing"}, meta.Keywords)
	assert.Equal(t, "An older layout", meta.Description)
}

func TestExtractSetupScriptPartial(t *testing.T) {
	// A setup.py with no recognizable assignments still wins over
	// requirements.txt; the name falls back to the directory.
	dir := t.TempDir()
	writeFile(t, dir, "setup.py", "from setuptools import setup\nsetup()\n")
	writeFile(t, dir, "requirements.txt", "numpy\n")

	var w bytes.Buffer
	meta, source := Extract(dir, &w)
	assert.Equal(t, types.ManifestSetupScript, source)
	assert.Equal(t, filepath.Base(dir), meta.Name)
	assert.Empty(t, meta.Dependencies)
}

func TestExtractRequirements(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "requirements.txt", `
# core
numpy==1.26.4
pandas>=2.0
scipy<=1.12

torch
`)

	var w bytes.Buffer
	meta, source := Extract(dir, &w)
	assert.Equal(t, types.ManifestRequirements, source)
	assert.Equal(t, filepath.Base(dir), meta.Name)
	assert.Equal(t, []string{"numpy", "pandas", "scipy", "torch"}, meta.Dependencies)
}

func TestExtractNoManifest(t *testing.T) {
	dir := t.TempDir()

	var w bytes.Buffer
	meta, source := Extract(dir, &w)
	assert.Equal(t, types.ManifestNone, source)
	assert.Equal(t, filepath.Base(dir), meta.Name)
	assert.Empty(t, meta.Keywords)
	assert.Empty(t, meta.Dependencies)
}

func TestExtractPriorityPyprojectFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pyproject.toml", "[project]\nname = \"winner\"\n")
	writeFile(t, dir, "setup.py", `setup(name="loser")`)
	writeFile(t, dir, "requirements.txt", "numpy\n")

	var w bytes.Buffer
	meta, source := Extract(dir, &w)
	assert.Equal(t, types.ManifestPyproject, source)
	assert.Equal(t, "winner", meta.Name)
}
