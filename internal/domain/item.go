package domain

import "strings"

// Metadata holds the salient fields of a saved content item. It is
// denormalized into every embedding record so queries can display and
// fall back on it without a lookup against the source item.
type Metadata struct {
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Classification string   `json:"classification,omitempty"`
}

// ContentItem is a saved item (link, screenshot, note) as seen by this
// service: an opaque id plus metadata. The full item lives on the device.
type ContentItem struct {
	ID string `json:"id"`
	Metadata
}

// EmbeddingText returns the space-joined text that is vectorized when the
// item is indexed: title, description, then tags.
func (m Metadata) EmbeddingText() string {
	parts := make([]string, 0, 2+len(m.Tags))
	if m.Title != "" {
		parts = append(parts, m.Title)
	}
	if m.Description != "" {
		parts = append(parts, m.Description)
	}
	parts = append(parts, m.Tags...)
	return strings.Join(parts, " ")
}
