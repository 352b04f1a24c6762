package jupiter

import (
	"bytes"
	"encoding/json"
	"strings"
)

// apiError is the structured error body the API returns on failure.
type apiError struct {
	Error     string `json:"error"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// decodeErrorBody returns the message carried by a non-200 body. A JSON
// object with an error or message field yields that field (plus errorCode);
// any other JSON is returned compacted; anything else is returned as text.
func decodeErrorBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "empty response body"
	}

	var e apiError
	if err := json.Unmarshal(trimmed, &e); err == nil {
		msg := e.Error
		if msg == "" {
			msg = e.Message
		}
		if msg != "" {
			if e.ErrorCode != "" {
				msg += " (" + e.ErrorCode + ")"
			}
			return msg
		}
	}

	if json.Valid(trimmed) {
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err == nil {
			return buf.String()
		}
	}
	return strings.TrimSpace(string(body))
}
