// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper represents a scientific paper returned by a research lookup.
type Paper struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Abstract is the paper abstract or summary.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Keywords lists the paper's subject keywords.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// URL is the canonical link to the paper.
	URL string `json:"url" yaml:"url"`

	// PublishedDate is the publication date string, if known.
	PublishedDate string `json:"published_date,omitempty" yaml:"published_date,omitempty"`

	// Upvotes is the community vote count from the hosting platform.
	Upvotes int `json:"upvotes" yaml:"upvotes"`
}

// Model represents a pre-trained model returned by a research lookup.
type Model struct {
	// ModelID is the hub identifier (e.g. "distilbert-base-uncased").
	ModelID string `json:"model_id" yaml:"model_id"`

	// Downloads is the hub download count.
	Downloads int `json:"downloads" yaml:"downloads"`

	// Likes is the hub like count.
	Likes int `json:"likes" yaml:"likes"`

	// Tags lists the hub tags attached to the model.
	Tags []string `json:"tags" yaml:"tags"`

	// URL is the canonical link to the model.
	URL string `json:"url" yaml:"url"`
}
