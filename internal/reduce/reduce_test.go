package reduce

import (
	"testing"

	"github.com/gyaneshwarpardhi/paynotify/internal/stripe"
)

func mustReduce(t *testing.T, raw string) *stripe.Event {
	t.Helper()
	ev, err := Reduce([]byte(raw))
	if err != nil {
		t.Fatalf("Reduce error: %v", err)
	}
	if !ev.Consistent() {
		t.Fatalf("category tag %q disagrees with payload %T", ev.Category, ev.Data)
	}
	return ev
}

func TestReduce_Invoice(t *testing.T) {
	raw := `{
		"id": "evt_inv",
		"type": "invoice.created",
		"api_version": "2024-06-20",
		"created": 1700000100,
		"livemode": true,
		"pending_webhooks": 1,
		"data": {"object": {
			"id": "in_1",
			"account_country": "US",
			"account_name": "Acme Inc",
			"amount_due": 125000,
			"amount_paid": 0,
			"amount_remaining": 125000,
			"attempt_count": 0,
			"attempted": false,
			"billing_reason": "subscription_create",
			"collection_method": "charge_automatically",
			"created": 1700000000,
			"currency": "usd",
			"customer": "cus_9",
			"customer_email": "ada@example.com",
			"customer_name": "Ada Lovelace",
			"hosted_invoice_url": "https://pay.example.com/in_1",
			"paid": false,
			"period_start": 1698796800,
			"period_end": 1701388800,
			"status": "draft",
			"subtotal": 125000,
			"total": 125000,
			"lines": {"data": [
				{"description": "Pro plan", "amount": 100000, "currency": "usd"},
				{"description": "Support add-on", "amount": 25000, "currency": "usd"}
			]}
		}}
	}`
	ev := mustReduce(t, raw)
	if ev.Category != stripe.CategoryInvoice {
		t.Fatalf("category = %q, want invoice", ev.Category)
	}
	if ev.ID != "evt_inv" || ev.Created != 1700000100 || !ev.Livemode || ev.PendingWebhooks != 1 {
		t.Errorf("envelope fields not carried: %+v", ev)
	}
	inv := ev.Data.(*stripe.Invoice)
	if inv.EventType != "invoice.created" {
		t.Errorf("EventType = %q, want invoice.created", inv.EventType)
	}
	if inv.Customer != "cus_9" || inv.AmountDue != 125000 || inv.Status != "draft" {
		t.Errorf("unexpected projection: %+v", inv)
	}
	if inv.AccountName != "Acme Inc" || inv.CustomerEmail != "ada@example.com" {
		t.Errorf("unexpected projection: %+v", inv)
	}
	if len(inv.Lines) != 2 {
		t.Fatalf("len(Lines) = %d, want 2", len(inv.Lines))
	}
	if inv.Lines[0].Description != "Pro plan" || inv.Lines[1].Amount != 25000 {
		t.Errorf("line order not preserved: %+v", inv.Lines)
	}
}

// Expandable references keep the bare identifier string; an expanded object
// or null coerces to "".
func TestReduce_ExpandableReference(t *testing.T) {
	cases := []struct {
		name     string
		customer string
		want     string
	}{
		{"bare id", `"customer": "cus_123",`, "cus_123"},
		{"expanded object", `"customer": {"id": "cus_123", "name": "Ada"},`, ""},
		{"null", `"customer": null,`, ""},
		{"absent", ``, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := `{
				"id": "evt_ch", "type": "charge.succeeded", "created": 1, "livemode": true,
				"data": {"object": {` + tc.customer + ` "id": "ch_1", "amount": 500, "currency": "eur"}}
			}`
			ev := mustReduce(t, raw)
			ch := ev.Data.(*stripe.Charge)
			if ch.Customer != tc.want {
				t.Errorf("Customer = %q, want %q", ch.Customer, tc.want)
			}
			if ch.Amount != 500 {
				t.Errorf("Amount = %d, want 500", ch.Amount)
			}
		})
	}
}

func TestReduce_MissingFieldsCoerceToZero(t *testing.T) {
	raw := `{
		"id": "evt_po", "type": "payout.created", "created": 1, "livemode": false,
		"data": {"object": {"id": "po_1"}}
	}`
	ev := mustReduce(t, raw)
	po := ev.Data.(*stripe.Payout)
	if po.Amount != 0 || po.Currency != "" || po.Automatic || po.FailureCode != "" {
		t.Errorf("missing fields should be zero-valued: %+v", po)
	}
	if po.ID != "po_1" || po.EventType != "payout.created" {
		t.Errorf("unexpected projection: %+v", po)
	}
}

func TestReduce_CustomerAddressPresence(t *testing.T) {
	withAddr := `{
		"id": "evt_cu", "type": "customer.updated", "created": 1, "livemode": true,
		"data": {"object": {
			"id": "cus_1", "name": "Ada", "email": "ada@example.com",
			"address": {"city": "London", "country": "GB", "line1": "1 Byron St", "postal_code": "NW1", "state": ""}
		}}
	}`
	ev := mustReduce(t, withAddr)
	cu := ev.Data.(*stripe.Customer)
	if cu.Address == nil {
		t.Fatal("Address = nil, want present")
	}
	if cu.Address.City != "London" || cu.Address.PostalCode != "NW1" {
		t.Errorf("unexpected address: %+v", cu.Address)
	}

	nullAddr := `{
		"id": "evt_cu2", "type": "customer.updated", "created": 1, "livemode": true,
		"data": {"object": {"id": "cus_2", "address": null}}
	}`
	ev = mustReduce(t, nullAddr)
	cu = ev.Data.(*stripe.Customer)
	if cu.Address != nil {
		t.Errorf("Address = %+v, want nil for null source", cu.Address)
	}
}

func TestReduce_EmptyLines(t *testing.T) {
	raw := `{
		"id": "evt_inv2", "type": "invoice.paid", "created": 1, "livemode": true,
		"data": {"object": {"id": "in_2"}}
	}`
	ev := mustReduce(t, raw)
	inv := ev.Data.(*stripe.Invoice)
	if inv.Lines == nil {
		t.Fatal("Lines = nil, want empty list")
	}
	if len(inv.Lines) != 0 {
		t.Errorf("len(Lines) = %d, want 0", len(inv.Lines))
	}
}

func TestReduce_PaymentIntent(t *testing.T) {
	raw := `{
		"id": "evt_pi", "type": "payment_intent.succeeded", "created": 1, "livemode": true,
		"data": {"object": {
			"id": "pi_1", "amount": 9900, "amount_received": 9900, "currency": "usd",
			"customer": "cus_5", "status": "succeeded",
			"payment_method_types": ["card", "sepa_debit"]
		}}
	}`
	ev := mustReduce(t, raw)
	pi := ev.Data.(*stripe.PaymentIntent)
	if pi.Status != "succeeded" || pi.AmountReceived != 9900 {
		t.Errorf("unexpected projection: %+v", pi)
	}
	if len(pi.PaymentMethodTypes) != 2 || pi.PaymentMethodTypes[1] != "sepa_debit" {
		t.Errorf("PaymentMethodTypes = %v", pi.PaymentMethodTypes)
	}
}

func TestReduce_IssuingCardholder(t *testing.T) {
	raw := `{
		"id": "evt_ich", "type": "issuing_cardholder.created", "created": 1, "livemode": true,
		"data": {"object": {
			"id": "ich_1", "name": "Grace Hopper", "email": "grace@example.com",
			"status": "active", "type": "individual",
			"billing": {"address": {"city": "Arlington", "country": "US", "line1": "1 Navy Way", "postal_code": "22202", "state": "VA"}},
			"individual": {"first_name": "Grace", "last_name": "Hopper", "dob": {"day": 9, "month": 12, "year": 1906}}
		}}
	}`
	ev := mustReduce(t, raw)
	ch := ev.Data.(*stripe.IssuingCardholder)
	if ch.Billing.City != "Arlington" || ch.Billing.PostalCode != "22202" {
		t.Errorf("unexpected billing address: %+v", ch.Billing)
	}
	if ch.Individual == nil || ch.Individual.Dob == nil {
		t.Fatalf("individual/dob should be present: %+v", ch.Individual)
	}
	if ch.Individual.Dob.Year != 1906 {
		t.Errorf("Dob.Year = %d, want 1906", ch.Individual.Dob.Year)
	}
}

func TestReduce_IssuingAuthorization(t *testing.T) {
	raw := `{
		"id": "evt_ia", "type": "issuing_authorization.created", "created": 1, "livemode": true,
		"data": {"object": {
			"id": "iauth_1", "amount": 1500, "approved": true, "currency": "usd",
			"card": "ic_1", "cardholder": "ich_1", "status": "pending",
			"amount_details": {"atm_fee": 250, "cashback_amount": 0},
			"merchant_data": {"name": "Corner Store", "country": "US", "category": "grocery_stores"}
		}}
	}`
	ev := mustReduce(t, raw)
	ia := ev.Data.(*stripe.IssuingAuthorization)
	if !ia.Approved || ia.Card != "ic_1" || ia.Cardholder != "ich_1" {
		t.Errorf("unexpected projection: %+v", ia)
	}
	if ia.AmountDetails == nil || ia.AmountDetails.AtmFee != 250 {
		t.Errorf("AmountDetails = %+v", ia.AmountDetails)
	}
	if ia.MerchantData.Name != "Corner Store" {
		t.Errorf("MerchantData = %+v", ia.MerchantData)
	}
}

func TestReduce_Unhandled(t *testing.T) {
	raw := `{
		"id": "evt_x", "type": "refund.created", "created": 1, "livemode": true,
		"data": {"object": {"id": "re_1", "amount": 100}}
	}`
	ev := mustReduce(t, raw)
	if ev.Category != stripe.CategoryUnhandled {
		t.Fatalf("category = %q, want unhandled", ev.Category)
	}
	un := ev.Data.(*stripe.Unhandled)
	if un.EventType != "refund.created" {
		t.Errorf("EventType = %q, want refund.created", un.EventType)
	}
	if un.Message != stripe.UnhandledMessage {
		t.Errorf("Message = %q, want %q", un.Message, stripe.UnhandledMessage)
	}
}

func TestReduce_MalformedInput(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"bad json", `{"type": "invoice.created"`},
		{"missing type", `{"id": "evt_1", "data": {"object": {}}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Reduce([]byte(tc.raw)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

// A known event type with a garbage data.object still reduces; every field
// falls back to its zero value.
func TestReduce_GarbageObject(t *testing.T) {
	raw := `{
		"id": "evt_g", "type": "topup.created", "created": 1, "livemode": true,
		"data": {"object": {"amount": "not-a-number", "status": 42, "id": "tu_1"}}
	}`
	ev := mustReduce(t, raw)
	tu := ev.Data.(*stripe.Topup)
	if tu.Amount != 0 || tu.Status != "" || tu.ID != "tu_1" {
		t.Errorf("mistyped fields should coerce to zero: %+v", tu)
	}
}
