package domain

import "time"

// EmbeddingRecord is one stored embedding per saved item per user.
// ItemID is unique within a user's namespace; a later write with the same
// id overwrites (last-write-wins). The record carries no foreign key back
// to the source item beyond the id string, so staleness is possible and
// not reconciled here.
type EmbeddingRecord struct {
	ItemID    string
	Vector    []float32
	Metadata  Metadata
	Timestamp time.Time // informational only, no TTL or versioning
}
