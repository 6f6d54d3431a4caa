// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docmeta

import "strings"

// Bucket identifies one semantic category of document items.
type Bucket string

const (
	BucketResearchFocus     Bucket = "research_focus"
	BucketResearchQuestions Bucket = "research_questions"
	BucketTechnologies      Bucket = "technologies"
	BucketKeywords          Bucket = "keywords"
	BucketRelatedPapers     Bucket = "related_papers"
	BucketGoals             Bucket = "goals"
	BucketMethodology       Bucket = "methodology"
	BucketDatasets          Bucket = "datasets"
)

type synonym struct {
	phrase string
	bucket Bucket
}

// synonymTable maps heading substrings to buckets. Declaration order is the
// tie-break: a heading matching several phrases classifies as the
// earliest-declared one. Some phrases are deliberately generic ("data",
// "methods") and can claim unrelated headings; that matching behavior is
// part of the classifier's contract.
var synonymTable = []synonym{
	{"research focus", BucketResearchFocus},
	{"research area", BucketResearchFocus},
	{"research domain", BucketResearchFocus},
	{"focus area", BucketResearchFocus},
	{"research questions", BucketResearchQuestions},
	{"research problem", BucketResearchQuestions},
	{"key questions", BucketResearchQuestions},
	{"questions", BucketResearchQuestions},
	{"technologies", BucketTechnologies},
	{"tech stack", BucketTechnologies},
	{"tools", BucketTechnologies},
	{"frameworks", BucketTechnologies},
	{"keywords", BucketKeywords},
	{"tags", BucketKeywords},
	{"topics", BucketKeywords},
	{"related papers", BucketRelatedPapers},
	{"references", BucketRelatedPapers},
	{"papers", BucketRelatedPapers},
	{"literature", BucketRelatedPapers},
	{"goals", BucketGoals},
	{"objectives", BucketGoals},
	{"aims", BucketGoals},
	{"methodology", BucketMethodology},
	{"approach", BucketMethodology},
	{"methods", BucketMethodology},
	{"datasets", BucketDatasets},
	{"data sources", BucketDatasets},
	{"data", BucketDatasets},
}

// Classify maps a heading to its semantic bucket by case-insensitive
// substring match against the synonym table. The second return is false when
// no phrase matches; such headings are ignored entirely.
func Classify(heading string) (Bucket, bool) {
	lower := strings.ToLower(heading)
	for _, s := range synonymTable {
		if strings.Contains(lower, s.phrase) {
			return s.bucket, true
		}
	}
	return "", false
}
