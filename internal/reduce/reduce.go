// Package reduce turns raw webhook bytes into canonical events. The pipeline
// is pure and synchronous: classification picks a category off the static
// table, the matching projector shapes the payload, and unknown event types
// reduce to an Unhandled payload instead of failing. Only malformed input
// (bad JSON, missing event type) is rejected.
package reduce

import (
	"github.com/gyaneshwarpardhi/paynotify/internal/stripe"
)

// Reduce parses raw webhook bytes and reduces them to a canonical event.
func Reduce(raw []byte) (*stripe.Event, error) {
	env, err := stripe.ParseEnvelope(raw)
	if err != nil {
		return nil, err
	}
	return ReduceEnvelope(env), nil
}

// ReduceEnvelope reduces an already-parsed envelope. It always succeeds:
// every well-formed envelope maps to exactly one canonical event.
func ReduceEnvelope(env *stripe.Envelope) *stripe.Event {
	category := stripe.Classify(env.Type)
	obj := decodeObject(env.Data.Object)

	var payload stripe.Payload
	switch category {
	case stripe.CategoryInvoice:
		payload = projectInvoice(obj, env.Type)
	case stripe.CategoryCustomer:
		payload = projectCustomer(obj, env.Type)
	case stripe.CategoryCharge:
		payload = projectCharge(obj, env.Type)
	case stripe.CategorySubscriptionSchedule:
		payload = projectSubscriptionSchedule(obj, env.Type)
	case stripe.CategoryInvoiceItem:
		payload = projectInvoiceItem(obj, env.Type)
	case stripe.CategoryPaymentIntent:
		payload = projectPaymentIntent(obj, env.Type)
	case stripe.CategoryPayout:
		payload = projectPayout(obj, env.Type)
	case stripe.CategoryIssuingCardholder:
		payload = projectIssuingCardholder(obj, env.Type)
	case stripe.CategoryIssuingCard:
		payload = projectIssuingCard(obj, env.Type)
	case stripe.CategoryIssuingDispute:
		payload = projectIssuingDispute(obj, env.Type)
	case stripe.CategoryTopup:
		payload = projectTopup(obj, env.Type)
	case stripe.CategorySource:
		payload = projectSource(obj, env.Type)
	case stripe.CategoryIssuingAuthorization:
		payload = projectIssuingAuthorization(obj, env.Type)
	default:
		payload = &stripe.Unhandled{
			EventType: env.Type,
			Message:   stripe.UnhandledMessage,
		}
	}

	return &stripe.Event{
		APIVersion:      env.APIVersion,
		Created:         env.Created,
		ID:              env.ID,
		Livemode:        env.Livemode,
		PendingWebhooks: env.PendingWebhooks,
		Category:        category,
		Data:            payload,
	}
}
