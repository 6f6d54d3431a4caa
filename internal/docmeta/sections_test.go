// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmeta

import (
	"testing"
)

func TestExtractSectionsLevels(t *testing.T) {
	content := `# Title
intro text

## Overview
level two body

### Details
level three body

#### Deep
not a new section
`
	sections := ExtractSections(content)
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
	if sections[0].Heading != "Overview" {
		t.Errorf("sections[0].Heading = %q, want %q", sections[0].Heading, "Overview")
	}
	// The level-4 heading and its body belong to the preceding section.
	if sections[1].Heading != "Details" {
		t.Errorf("sections[1].Heading = %q, want %q", sections[1].Heading, "Details")
	}
	want := "level three body\n\n#### Deep\nnot a new section"
	if sections[1].Body != want {
		t.Errorf("sections[1].Body = %q, want %q", sections[1].Body, want)
	}
}

func TestExtractSectionsIgnoresPreamble(t *testing.T) {
	sections := ExtractSections("just text\nmore text\n")
	if len(sections) != 0 {
		t.Errorf("len(sections) = %d, want 0", len(sections))
	}
}

func TestExtractSectionsLastOneWins(t *testing.T) {
	content := "## Keywords\na\n## Other\nx\n## Keywords\nb\n"
	sections := ExtractSections(content)
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}
	// The duplicate keeps its original position but takes the later body.
	if sections[0].Heading != "Keywords" || sections[0].Body != "b" {
		t.Errorf("sections[0] = %+v, want Keywords/b", sections[0])
	}
	if sections[1].Heading != "Other" || sections[1].Body != "x" {
		t.Errorf("sections[1] = %+v, want Other/x", sections[1])
	}
}

func TestExtractSectionsTrimsHeadingAndBody(t *testing.T) {
	content := "##   Goals  \n\n  item one\n\n"
	sections := ExtractSections(content)
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	if sections[0].Heading != "Goals" {
		t.Errorf("Heading = %q, want %q", sections[0].Heading, "Goals")
	}
	if sections[0].Body != "item one" {
		t.Errorf("Body = %q, want %q", sections[0].Body, "item one")
	}
}

func TestExtractSectionsHeadingWithoutSpaceIsBody(t *testing.T) {
	sections := ExtractSections("## Real\n##fake heading\nbody\n")
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	if sections[0].Body != "##fake heading\nbody" {
		t.Errorf("Body = %q", sections[0].Body)
	}
}
