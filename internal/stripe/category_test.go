package stripe

import (
	"testing"
)

func TestClassify_KnownTypes(t *testing.T) {
	cases := []struct {
		eventType string
		want      Category
	}{
		{"charge.succeeded", CategoryCharge},
		{"charge.dispute.funds_withdrawn", CategoryCharge},
		{"charge.refund.updated", CategoryCharge},
		{"customer.created", CategoryCustomer},
		{"customer.subscription.trial_will_end", CategoryCustomer},
		{"customer.bank_account.deleted", CategoryCustomer},
		{"invoice.created", CategoryInvoice},
		{"invoice.payment_action_required", CategoryInvoice},
		{"invoice.will_be_due", CategoryInvoice},
		{"invoiceitem.created", CategoryInvoiceItem},
		{"issuing_authorization.updated", CategoryIssuingAuthorization},
		{"issuing_card.created", CategoryIssuingCard},
		{"issuing_cardholder.updated", CategoryIssuingCardholder},
		{"issuing_dispute.funds_rescinded", CategoryIssuingDispute},
		{"payment_intent.amount_capturable_updated", CategoryPaymentIntent},
		{"payment_intent.succeeded", CategoryPaymentIntent},
		{"payout.reconciliation_completed", CategoryPayout},
		{"source.refund_attributes_required", CategorySource},
		{"source.transaction.created", CategorySource},
		{"subscription_schedule.aborted", CategorySubscriptionSchedule},
		{"topup.reversed", CategoryTopup},
	}
	for _, tc := range cases {
		t.Run(tc.eventType, func(t *testing.T) {
			if got := Classify(tc.eventType); got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.eventType, got, tc.want)
			}
		})
	}
}

// Classification is an exact lookup: subtypes that merely share a prefix with
// supported types must not ride along.
func TestClassify_NoPrefixMatching(t *testing.T) {
	cases := []string{
		"invoice.something_new",
		"charge.dispute",           // parent of listed subtypes
		"charge.succeeded.extra",   // child of a listed type
		"customer.subscription",    // parent of listed subtypes
		"payment_intent",           // bare prefix
		"invoice.payment_succeede", // near miss
		"Invoice.created",          // case matters
		"checkout.session.completed",
		"",
	}
	for _, eventType := range cases {
		t.Run(eventType, func(t *testing.T) {
			if got := Classify(eventType); got != CategoryUnhandled {
				t.Errorf("Classify(%q) = %q, want %q", eventType, got, CategoryUnhandled)
			}
		})
	}
}

func TestEventCategories_Coverage(t *testing.T) {
	if got := len(EventCategories); got != 92 {
		t.Errorf("EventCategories has %d entries, want 92", got)
	}
	counts := make(map[Category]int)
	for _, c := range EventCategories {
		counts[c]++
	}
	for _, c := range Categories {
		if counts[c] == 0 {
			t.Errorf("category %q has no event types mapped to it", c)
		}
	}
	if counts[CategoryUnhandled] != 0 {
		t.Errorf("no literal should map to %q", CategoryUnhandled)
	}
}

func TestKnown(t *testing.T) {
	for _, c := range Categories {
		if !Known(c) {
			t.Errorf("Known(%q) = false, want true", c)
		}
	}
	if !Known(CategoryUnhandled) {
		t.Error("Known(unhandled) = false, want true")
	}
	if Known(Category("refund")) {
		t.Error(`Known("refund") = true, want false`)
	}
}
