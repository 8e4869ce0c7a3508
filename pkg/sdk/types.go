package keepstack

// Item is a content item to save: a link, screenshot or note's metadata.
// ID is optional; the server generates one when empty.
type Item struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Classification string   `json:"classification,omitempty"`
}

// SaveResult reports the outcome of SaveItem. Indexed is false when the
// item was accepted without a vector (embedding provider degraded);
// saving again later re-indexes it.
type SaveResult struct {
	ItemID  string `json:"itemId"`
	Indexed bool   `json:"indexed"`
}

// QueryRequest is a free-text question about a user's saved content.
// Items optionally supplies content the server can fall back on when
// vector search is unavailable.
type QueryRequest struct {
	UserID       string `json:"userId"`
	Query        string `json:"query"`
	SuggestEvent bool   `json:"suggestEvent,omitempty"`
	Items        []Item `json:"items,omitempty"`
}

// Source is a content item cited in an answer.
type Source struct {
	ItemID      string  `json:"itemId"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Relevance   float64 `json:"relevance"`
}

// SuggestedEvent is a calendar event extracted from the answer when
// QueryRequest.SuggestEvent was set.
type SuggestedEvent struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
}

// QueryResponse is the answer to a query with its cited sources.
type QueryResponse struct {
	Answer         string          `json:"answer"`
	Sources        []Source        `json:"sources"`
	SuggestedEvent *SuggestedEvent `json:"suggestedEvent,omitempty"`
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"` // "ok" or "degraded"
	Checks map[string]string `json:"checks"` // component → "ok"/"error"
}
