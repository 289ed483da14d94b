package filter

import (
	"encoding/json"

	"github.com/gyaneshwarpardhi/paynotify/internal/stripe"
)

// EventDocument adapts a canonical event for expression evaluation. Field
// paths address the event's JSON form ("category", "livemode",
// "data.amount_due", "data.lines", …), so expressions see exactly the keys
// the downstream sink sees.
type EventDocument struct {
	root map[string]any
}

// NewEventDocument builds a document view of e. The event is rendered through
// its canonical JSON form once; resolution after that is map walking.
func NewEventDocument(e *stripe.Event) (*EventDocument, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, err
	}
	return &EventDocument{root: root}, nil
}

// Resolve implements Context.
func (d *EventDocument) Resolve(path []string) (any, bool) {
	var cur any = d.root
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Match evaluates expr against e. Evaluation errors (unknown field, type
// mismatch) count as no-match: a bad filter must never block reduction.
func Match(expr Expr, e *stripe.Event) bool {
	doc, err := NewEventDocument(e)
	if err != nil {
		return false
	}
	ok, err := Evaluate(expr, doc)
	if err != nil {
		return false
	}
	return ok
}
