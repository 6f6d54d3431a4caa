// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

// WriteJSON writes the bundle as indented JSON to w.
func WriteJSON(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// WriteYAML writes the bundle as YAML to w.
func WriteYAML(w io.Writer, b Bundle) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshaling bundle: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// SaveText writes the text report to path.
func SaveText(path string, b Bundle) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()
	WriteText(f, b)
	return nil
}
