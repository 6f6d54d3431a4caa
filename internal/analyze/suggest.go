// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import "fmt"

// Suggestions returns canned improvement suggestions keyed on the detected
// technologies and the populated document buckets of the last analysis.
// It is the one operation that fails on a missing precondition: calling it
// before Analyze returns ErrNotAnalyzed.
func (a *Assistant) Suggestions() ([]string, error) {
	if a.analysis == nil {
		return nil, ErrNotAnalyzed
	}

	var suggestions []string

	if a.detected("NumPy") {
		suggestions = append(suggestions,
			"Consider numpy.vectorize and broadcasting to replace explicit loops")
	}
	if a.detected("Pandas") {
		suggestions = append(suggestions,
			"Use DataFrame.query() and eval() for faster Pandas operations")
	}
	if a.detected("Model Context Protocol") {
		suggestions = append(suggestions,
			"MCP detected: consider integrating additional services through MCP")
	}

	if doc := a.analysis.Document; doc != nil {
		if n := len(doc.ResearchQuestions); n > 0 {
			suggestions = append(suggestions, fmt.Sprintf(
				"%d research questions identified: design an experiment for each", n))
		}
		if n := len(doc.Goals); n > 0 {
			suggestions = append(suggestions, fmt.Sprintf(
				"%d goals defined: attach a specific metric to each", n))
		}
		if len(doc.Methodology) > 0 {
			suggestions = append(suggestions,
				"Methodology is documented: record results for every step")
		}
	}

	suggestions = append(suggestions,
		"Add k-fold cross-validation to model evaluation",
		"Implement early stopping to avoid overfitting",
	)

	return suggestions, nil
}

func (a *Assistant) detected(name string) bool {
	for _, tech := range a.analysis.Technologies {
		if tech == name {
			return true
		}
	}
	return false
}
