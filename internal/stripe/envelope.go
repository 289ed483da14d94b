package stripe

import (
	"encoding/json"
	"fmt"
)

// Envelope is the vendor-defined outer shape of a webhook payload. The inner
// data.object tree is kept raw: its shape depends on the event type and is
// only interpreted during projection.
type Envelope struct {
	ID              string       `json:"id"`
	Type            string       `json:"type"`
	APIVersion      string       `json:"api_version,omitempty"`
	Created         int64        `json:"created"`
	Livemode        bool         `json:"livemode"`
	PendingWebhooks int64        `json:"pending_webhooks"`
	Data            EnvelopeData `json:"data"`
}

// EnvelopeData wraps the event object.
type EnvelopeData struct {
	Object json.RawMessage `json:"object"`
}

// ParseEnvelope decodes raw webhook bytes. It fails only on malformed JSON or
// a missing top-level event type; everything else is the projector's problem.
func ParseEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parse webhook envelope: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("parse webhook envelope: missing event type")
	}
	return &env, nil
}
