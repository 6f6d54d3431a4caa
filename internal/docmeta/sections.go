// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmeta

import (
	"regexp"
	"strings"
)

// headingPattern matches level-2 and level-3 markdown headings. Level-1 and
// deeper headings fall through as ordinary body text.
var headingPattern = regexp.MustCompile(`^(#{2,3})\s+(.+)$`)

// Section is one heading-delimited region of a document: the trimmed heading
// text and the trimmed, newline-joined body that follows it.
type Section struct {
	Heading string
	Body    string
}

// ExtractSections splits document text into an ordered sequence of sections.
// Lines before the first recognized heading are ignored. When two headings
// share identical text, the later body replaces the earlier one while the
// entry keeps its original position.
func ExtractSections(content string) []Section {
	var (
		sections []Section
		position = make(map[string]int)
		heading  string
		body     []string
	)

	flush := func() {
		if heading == "" {
			return
		}
		text := strings.TrimSpace(strings.Join(body, "\n"))
		if i, ok := position[heading]; ok {
			sections[i].Body = text
			return
		}
		position[heading] = len(sections)
		sections = append(sections, Section{Heading: heading, Body: text})
	}

	for _, line := range strings.Split(content, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			heading = strings.TrimSpace(m[2])
			body = nil
			continue
		}
		if heading != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections
}
