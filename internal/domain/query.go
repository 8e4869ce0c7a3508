package domain

// Query is a free-text question about a user's saved content. It is
// entirely request-scoped and never persisted.
type Query struct {
	UserID       string
	Text         string
	SuggestEvent bool
	// Items are caller-supplied content items used as a fallback context
	// source when embedding search is unavailable.
	Items []ContentItem
}

// Source is a cited content item in an answer, with its relevance score.
// Relevance is a real cosine similarity when embedding search resolved the
// query, or a fixed default on weaker fallback tiers.
type Source struct {
	ItemID      string  `json:"itemId"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Relevance   float64 `json:"relevance"`
}

// SuggestedEvent is a calendar event extracted from a generated answer.
type SuggestedEvent struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// Answer is the resolved response to a Query.
type Answer struct {
	Text           string
	Sources        []Source
	SuggestedEvent *SuggestedEvent
}
