package upstream

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// APIError is a non-2xx answer from the upstream boundary. Detail carries
// the backend's human-readable cause when its error payload had one.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("upstream api error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("upstream api error %d", e.Status)
}

// IsNotFound reports a 404; list pages render their not-found state on it.
func (e *APIError) IsNotFound() bool { return e.Status == 404 }

const maxDetailBytes = 200

// extractDetail digs the human-readable message out of whichever error
// shape the backend used. Falls back to the raw body, trimmed.
func extractDetail(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			if v, ok := payload[key].(string); ok && v != "" {
				return v
			}
		}
	}
	detail := strings.TrimSpace(string(body))
	if len(detail) > maxDetailBytes {
		// Back up to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := maxDetailBytes
		for cut > 0 && !utf8.RuneStart(detail[cut]) {
			cut--
		}
		detail = detail[:cut]
	}
	return detail
}
