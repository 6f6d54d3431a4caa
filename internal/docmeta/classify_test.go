// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmeta

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		heading string
		want    Bucket
		ok      bool
	}{
		{"Research Focus", BucketResearchFocus, true},
		{"RESEARCH QUESTIONS", BucketResearchQuestions, true},
		{"Tech Stack", BucketTechnologies, true},
		{"Tools & Frameworks", BucketTechnologies, true},
		{"Keywords", BucketKeywords, true},
		{"Topics of Interest", BucketKeywords, true},
		{"Related Papers", BucketRelatedPapers, true},
		{"Goals", BucketGoals, true},
		{"Our Objectives", BucketGoals, true},
		{"Methodology", BucketMethodology, true},
		{"Data Sources", BucketDatasets, true},
		{"Installation", "", false},
		{"License", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			got, ok := Classify(tt.heading)
			if ok != tt.ok {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.heading, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.heading, got, tt.want)
			}
		})
	}
}

// Classification is order-dependent: a heading matching several phrases
// resolves to the earliest-declared one.
func TestClassifyTableOrderTieBreak(t *testing.T) {
	// Matches both "research focus" and "focus area"; the former is
	// declared first.
	got, ok := Classify("Research Focus Area")
	if !ok || got != BucketResearchFocus {
		t.Errorf("Classify(Research Focus Area) = %q, want research_focus", got)
	}

	// "questions" (research_questions) is declared before "topics" (keywords).
	got, ok = Classify("Questions and Topics")
	if !ok || got != BucketResearchQuestions {
		t.Errorf("Classify(Questions and Topics) = %q, want research_questions", got)
	}

	// The generic "methods" phrase is declared before the generic "data",
	// so this heading lands in methodology even though it is about data.
	got, ok = Classify("Data Migration Methods")
	if !ok || got != BucketMethodology {
		t.Errorf("Classify(Data Migration Methods) = %q, want methodology", got)
	}
}
