package vectorstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keepstack/keepstack/internal/domain"
)

// recordDTO is the stored JSON shape of an embedding record.
type recordDTO struct {
	ItemID    string          `json:"itemId"`
	Vector    []float32       `json:"vector"`
	Metadata  domain.Metadata `json:"metadata"`
	Timestamp time.Time       `json:"timestamp"`
}

func encodeRecord(rec domain.EmbeddingRecord) ([]byte, error) {
	data, err := json.Marshal(recordDTO{
		ItemID:    rec.ItemID,
		Vector:    rec.Vector,
		Metadata:  rec.Metadata,
		Timestamp: rec.Timestamp,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal record %s: %w", rec.ItemID, err)
	}
	return data, nil
}

func decodeRecord(data []byte) (domain.EmbeddingRecord, error) {
	var dto recordDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return domain.EmbeddingRecord{}, fmt.Errorf("%w: %w", domain.ErrRecordDecode, err)
	}
	if dto.ItemID == "" {
		return domain.EmbeddingRecord{}, fmt.Errorf("%w: missing itemId", domain.ErrRecordDecode)
	}
	return domain.EmbeddingRecord{
		ItemID:    dto.ItemID,
		Vector:    dto.Vector,
		Metadata:  dto.Metadata,
		Timestamp: dto.Timestamp,
	}, nil
}
