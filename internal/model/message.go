package model

import (
	"encoding/json"
	"time"
)

// Reserved message keys. Both are assigned by the server; client-supplied
// values under these keys are discarded.
const (
	MessageIDKey        = "_id"
	MessageCreatedAtKey = "createdAt"
)

// Message is a free-form chat entry. Body carries whatever fields the client
// posted; the store adds an identifier and a creation timestamp.
type Message struct {
	ID        string
	CreatedAt time.Time
	Body      map[string]any
}

// NewMessage copies body into a new Message, dropping the reserved keys.
// A nil body yields an empty one.
func NewMessage(body map[string]any) *Message {
	clean := make(map[string]any, len(body))
	for k, v := range body {
		if k == MessageIDKey || k == MessageCreatedAtKey {
			continue
		}
		clean[k] = v
	}
	return &Message{Body: clean}
}

// MarshalJSON flattens the body and the server-assigned fields into a single
// object, e.g. {"_id":"...","createdAt":"...","text":"hello"}.
func (m Message) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Body)+2)
	for k, v := range m.Body {
		out[k] = v
	}
	out[MessageIDKey] = m.ID
	out[MessageCreatedAtKey] = m.CreatedAt
	return json.Marshal(out)
}
