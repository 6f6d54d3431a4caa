// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest recovers declared project metadata from manifest files.
// Three formats are supported, tried in priority order: pyproject.toml
// (full structured metadata), setup.py (best-effort pattern scrape), and
// requirements.txt (dependency list only). A project with none of them
// still yields metadata carrying the directory name.
package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/pdiddy/project-insight/pkg/types"
)

// pyprojectFile mirrors the [project] table of pyproject.toml.
type pyprojectFile struct {
	Project struct {
		Name                 string              `toml:"name"`
		Version              string              `toml:"version"`
		Description          string              `toml:"description"`
		Keywords             []string            `toml:"keywords"`
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
}

var (
	setupName        = regexp.MustCompile(`name\s*=\s*["']([^"']+)["']`)
	setupKeywords    = regexp.MustCompile(`keywords\s*=\s*\[([^\]]+)\]`)
	setupDescription = regexp.MustCompile(`description\s*=\s*["']([^"']+)["']`)
)

// Extract reads project metadata from dir, trying each manifest format in
// priority order. Malformed or unreadable manifests degrade to the next
// source with a warning on w; Extract itself never fails.
func Extract(dir string, w io.Writer) (types.ManifestMetadata, types.ManifestSource) {
	if meta, ok := fromPyproject(dir, w); ok {
		return meta, types.ManifestPyproject
	}
	if meta, ok := fromSetupScript(dir, w); ok {
		return meta, types.ManifestSetupScript
	}
	if deps := fromRequirements(dir, w); len(deps) > 0 {
		return types.ManifestMetadata{
			Name:         filepath.Base(dir),
			Dependencies: deps,
		}, types.ManifestRequirements
	}
	return types.ManifestMetadata{Name: filepath.Base(dir)}, types.ManifestNone
}

// fromPyproject parses pyproject.toml. Missing fields fall back to defaults:
// the name to the directory name, everything else to empty.
func fromPyproject(dir string, w io.Writer) (types.ManifestMetadata, bool) {
	path := filepath.Join(dir, "pyproject.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: could not read %s: %v\n", path, err)
		}
		return types.ManifestMetadata{}, false
	}

	var pf pyprojectFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		fmt.Fprintf(w, "warning: could not parse %s: %v\n", path, err)
		return types.ManifestMetadata{}, false
	}

	name := pf.Project.Name
	if name == "" {
		name = filepath.Base(dir)
	}

	return types.ManifestMetadata{
		Name:            name,
		Version:         pf.Project.Version,
		Description:     pf.Project.Description,
		Keywords:        pf.Project.Keywords,
		Dependencies:    pf.Project.Dependencies,
		DevDependencies: pf.Project.OptionalDependencies["dev"],
	}, true
}

// fromSetupScript scrapes name, keywords, and description assignments from
// setup.py text. Partial success is fine: a setup.py that yields nothing
// still wins over requirements.txt, with the name falling back to the
// directory name.
func fromSetupScript(dir string, w io.Writer) (types.ManifestMetadata, bool) {
	path := filepath.Join(dir, "setup.py")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: could not read %s: %v\n", path, err)
		}
		return types.ManifestMetadata{}, false
	}
	content := string(data)

	meta := types.ManifestMetadata{Name: filepath.Base(dir)}
	if m := setupName.FindStringSubmatch(content); m != nil {
		meta.Name = m[1]
	}
	if m := setupKeywords.FindStringSubmatch(content); m != nil {
		for _, k := range strings.Split(m[1], ",") {
			meta.Keywords = append(meta.Keywords, strings.Trim(k, ` "'`))
		}
	}
	if m := setupDescription.FindStringSubmatch(content); m != nil {
		meta.Description = m[1]
	}

	return meta, true
}

// fromRequirements reads requirements.txt: one dependency per non-blank,
// non-comment line, with version-constraint suffixes stripped to the bare
// package identifier.
func fromRequirements(dir string, w io.Writer) []string {
	path := filepath.Join(dir, "requirements.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: could not read %s: %v\n", path, err)
		}
		return nil
	}

	var deps []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, sep := range []string{"==", ">=", "<="} {
			if i := strings.Index(line, sep); i >= 0 {
				line = line[:i]
			}
		}
		line = strings.TrimSpace(line)
		if line != "" {
			deps = append(deps, line)
		}
	}
	return deps
}
