package sink

import (
	"encoding/json"
	"io"
)

// Sink receives the single JSON payload a collector produces.
type Sink interface {
	Store(payload interface{}) error
}

type errorPayload struct {
	Error string `json:"error"`
}

// WriteError writes {"error": msg} as one JSON line to w.
func WriteError(w io.Writer, msg string) error {
	return json.NewEncoder(w).Encode(errorPayload{Error: msg})
}
