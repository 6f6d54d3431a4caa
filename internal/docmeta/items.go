// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmeta

import (
	"regexp"
	"strings"
)

var (
	bulletMarker  = regexp.MustCompile(`^[-*+]\s+`)
	ordinalMarker = regexp.MustCompile(`^\d+\.\s+`)
	quoteMarker   = regexp.MustCompile(`^>\s+`)
	inlineLink    = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	inlineCode    = regexp.MustCompile("`([^`]+)`")
	boldSpan      = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicSpan    = regexp.MustCompile(`\*([^*]+)\*`)
)

// NormalizeItems converts a section body into clean text items, one per
// content line. List markers (bullets, ordinals, block quotes) are stripped
// once from the front; links keep their text, inline code and emphasis lose
// their delimiters. Bold resolves before italic so paired asterisks are not
// consumed greedily. Blank lines and lines that reduce to nothing or to a
// heading marker are dropped. Line order is preserved; nothing is deduplicated.
func NormalizeItems(body string) []string {
	var items []string

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		line = bulletMarker.ReplaceAllString(line, "")
		line = ordinalMarker.ReplaceAllString(line, "")
		line = quoteMarker.ReplaceAllString(line, "")

		line = inlineLink.ReplaceAllString(line, "$1")
		line = inlineCode.ReplaceAllString(line, "$1")
		line = boldSpan.ReplaceAllString(line, "$1")
		line = italicSpan.ReplaceAllString(line, "$1")

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}

	return items
}
