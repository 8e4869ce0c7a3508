package answer

import (
	"encoding/json"
	"strings"

	"github.com/keepstack/keepstack/internal/domain"
)

// generatedPayload is the structured shape the prompt asks for when an
// event suggestion is requested.
type generatedPayload struct {
	Answer         string                 `json:"answer"`
	SuggestedEvent *domain.SuggestedEvent `json:"suggestedEvent"`
}

// parseGenerated leniently extracts the structured payload from a raw
// completion. It takes the first balanced {...} substring and tries to
// parse it; on any failure the whole raw text becomes the answer and no
// event is returned. Deliberately tolerant: the generator routinely
// ignores formatting instructions, and that must never fail a request.
func parseGenerated(raw string) (string, *domain.SuggestedEvent) {
	block, ok := firstJSONBlock(raw)
	if !ok {
		return raw, nil
	}

	var payload generatedPayload
	if err := json.Unmarshal([]byte(block), &payload); err != nil || payload.Answer == "" {
		return raw, nil
	}
	return payload.Answer, payload.SuggestedEvent
}

// firstJSONBlock returns the first balanced-looking {...} substring.
// Brace counting respects JSON string literals so braces inside quoted
// text do not unbalance the scan.
func firstJSONBlock(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
