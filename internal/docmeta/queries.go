// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmeta

import (
	"strings"

	"github.com/pdiddy/project-insight/pkg/types"
)

// ResearchQueries derives a prioritized list of search-query strings from
// structured metadata. In order: research focus items verbatim, research
// questions with a trailing question mark stripped, one combined string of
// the first three keywords (when at least two exist), and method-focus pairs
// drawn from the first two methodology and first two focus items. Callers
// may truncate; nothing is deduplicated here.
func ResearchQueries(meta types.StructuredMetadata) []string {
	var queries []string

	queries = append(queries, meta.ResearchFocus...)

	for _, question := range meta.ResearchQuestions {
		q := strings.TrimSpace(question)
		q = strings.TrimSpace(strings.TrimSuffix(q, "?"))
		queries = append(queries, q)
	}

	if len(meta.Keywords) >= 2 {
		top := meta.Keywords
		if len(top) > 3 {
			top = top[:3]
		}
		queries = append(queries, strings.Join(top, " "))
	}

	if len(meta.Methodology) > 0 && len(meta.ResearchFocus) > 0 {
		for _, method := range head(meta.Methodology, 2) {
			for _, focus := range head(meta.ResearchFocus, 2) {
				queries = append(queries, method+" "+focus)
			}
		}
	}

	return queries
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
