package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Recommendation is one structured suggestion parsed from the model's
// JSON output. A batch is transient; it replaces any prior batch.
type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason"`
}

// parseRecommendations decodes the model's JSON array. The service is
// told not to wrap the payload, but it sometimes does anyway, so code
// fences are stripped before decoding. Entries missing a title or an
// author are dropped rather than trusted.
func parseRecommendations(raw string) ([]Recommendation, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty payload")
	}

	var decoded []Recommendation
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}

	out := make([]Recommendation, 0, len(decoded))
	for _, r := range decoded {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Author) == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// stripFences removes ```json / ``` markers the service may include
// despite being instructed not to.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
