package stripe

// Payload is the category-specific body of a canonical event. Exactly one
// concrete payload type exists per category.
type Payload interface {
	Category() Category
}

// Event is the reduced, strongly-typed representation of a raw webhook event.
// The Category tag and the concrete type held in Data always agree; events
// are built once by the reduction pipeline and never mutated.
type Event struct {
	APIVersion      string   `json:"api_version,omitempty"`
	Created         int64    `json:"created"`
	ID              string   `json:"id"`
	Livemode        bool     `json:"livemode"`
	PendingWebhooks int64    `json:"pending_webhooks"`
	Category        Category `json:"category"`
	Data            Payload  `json:"data"`
}

// Consistent reports whether the category tag agrees with the payload variant.
func (e *Event) Consistent() bool {
	return e.Data != nil && e.Data.Category() == e.Category
}

// EventType returns the raw event-type string carried by the payload.
func (e *Event) EventType() string {
	switch p := e.Data.(type) {
	case *Invoice:
		return p.EventType
	case *Customer:
		return p.EventType
	case *Charge:
		return p.EventType
	case *SubscriptionSchedule:
		return p.EventType
	case *InvoiceItem:
		return p.EventType
	case *PaymentIntent:
		return p.EventType
	case *Payout:
		return p.EventType
	case *IssuingCardholder:
		return p.EventType
	case *IssuingCard:
		return p.EventType
	case *IssuingDispute:
		return p.EventType
	case *Topup:
		return p.EventType
	case *Source:
		return p.EventType
	case *IssuingAuthorization:
		return p.EventType
	case *Unhandled:
		return p.EventType
	}
	return ""
}
