// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detect

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ScanImports collects every distinct line starting with an import prefix
// from source files under dir, sorted ascending. Unreadable files are
// skipped with a warning on w.
func ScanImports(dir string, exts, prefixes []string, w io.Writer) []string {
	seen := make(map[string]struct{})

	walkSources(dir, exts, func(path string) {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(w, "warning: could not read %s: %v\n", path, err)
			return
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			for _, prefix := range prefixes {
				if strings.HasPrefix(line, prefix) {
					seen[line] = struct{}{}
					break
				}
			}
		}
	})

	imports := make([]string, 0, len(seen))
	for line := range seen {
		imports = append(imports, line)
	}
	sort.Strings(imports)
	return imports
}

// CountSourceFiles counts files under dir whose name ends in one of exts.
func CountSourceFiles(dir string, exts []string) int {
	count := 0
	walkSources(dir, exts, func(string) { count++ })
	return count
}
