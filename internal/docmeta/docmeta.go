// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docmeta extracts structured research metadata from a project's
// free-form headed document (README.md by convention). It splits the
// document into heading-delimited sections, classifies each heading against
// an ordered synonym table, and normalizes section bodies into clean text
// items grouped by semantic bucket.
package docmeta

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/project-insight/pkg/types"
)

// Parse extracts structured metadata from document text. It always produces
// a complete result: sections whose headings match no synonym are skipped,
// and absent categories leave their buckets empty. Items from multiple
// sections mapping to the same bucket append in heading-encounter order.
func Parse(content string) *types.StructuredMetadata {
	meta := &types.StructuredMetadata{}

	for _, sec := range ExtractSections(content) {
		bucket, ok := Classify(sec.Heading)
		if !ok {
			continue
		}
		appendItems(meta, bucket, NormalizeItems(sec.Body))
	}

	return meta
}

// ParseFile reads and parses the document at path. A missing document is
// absence, not an error: the return is nil. Unreadable files also return nil
// after a warning on w. Invalid UTF-8 in readable content is replaced
// character-by-character rather than failing the parse.
func ParseFile(path string, w io.Writer) *types.StructuredMetadata {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(w, "warning: could not read %s: %v\n", path, err)
		}
		return nil
	}
	return Parse(strings.ToValidUTF8(string(data), "�"))
}

func appendItems(meta *types.StructuredMetadata, bucket Bucket, items []string) {
	switch bucket {
	case BucketResearchFocus:
		meta.ResearchFocus = append(meta.ResearchFocus, items...)
	case BucketResearchQuestions:
		meta.ResearchQuestions = append(meta.ResearchQuestions, items...)
	case BucketTechnologies:
		meta.Technologies = append(meta.Technologies, items...)
	case BucketKeywords:
		meta.Keywords = append(meta.Keywords, items...)
	case BucketRelatedPapers:
		meta.RelatedPapers = append(meta.RelatedPapers, items...)
	case BucketGoals:
		meta.Goals = append(meta.Goals, items...)
	case BucketMethodology:
		meta.Methodology = append(meta.Methodology, items...)
	case BucketDatasets:
		meta.Datasets = append(meta.Datasets, items...)
	}
}
