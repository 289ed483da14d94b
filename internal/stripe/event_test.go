package stripe

import (
	"encoding/json"
	"testing"
)

func TestEvent_Consistent(t *testing.T) {
	cases := []struct {
		name string
		ev   Event
		want bool
	}{
		{
			name: "tag matches payload",
			ev:   Event{Category: CategoryInvoice, Data: &Invoice{}},
			want: true,
		},
		{
			name: "tag disagrees with payload",
			ev:   Event{Category: CategoryCharge, Data: &Invoice{}},
			want: false,
		},
		{
			name: "unhandled",
			ev:   Event{Category: CategoryUnhandled, Data: &Unhandled{}},
			want: true,
		},
		{
			name: "nil payload",
			ev:   Event{Category: CategoryInvoice},
			want: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ev.Consistent(); got != tc.want {
				t.Errorf("Consistent() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEvent_EventType(t *testing.T) {
	cases := []struct {
		name string
		data Payload
		want string
	}{
		{"invoice", &Invoice{EventType: "invoice.paid"}, "invoice.paid"},
		{"customer", &Customer{EventType: "customer.updated"}, "customer.updated"},
		{"payout", &Payout{EventType: "payout.paid"}, "payout.paid"},
		{"issuing card", &IssuingCard{EventType: "issuing_card.created"}, "issuing_card.created"},
		{"unhandled", &Unhandled{EventType: "refund.created"}, "refund.created"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := &Event{Data: tc.data}
			if got := e.EventType(); got != tc.want {
				t.Errorf("EventType() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseEnvelope(t *testing.T) {
	raw := []byte(`{
		"id": "evt_1",
		"type": "invoice.created",
		"api_version": "2024-06-20",
		"created": 1700000000,
		"livemode": true,
		"pending_webhooks": 2,
		"data": {"object": {"id": "in_1"}}
	}`)
	env, err := ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("ParseEnvelope error: %v", err)
	}
	if env.ID != "evt_1" || env.Type != "invoice.created" || env.Created != 1700000000 {
		t.Errorf("unexpected envelope: %+v", env)
	}
	if !env.Livemode || env.PendingWebhooks != 2 || env.APIVersion != "2024-06-20" {
		t.Errorf("unexpected envelope: %+v", env)
	}
	var obj map[string]any
	if err := json.Unmarshal(env.Data.Object, &obj); err != nil {
		t.Fatalf("data.object not preserved: %v", err)
	}
	if obj["id"] != "in_1" {
		t.Errorf("data.object.id = %v, want in_1", obj["id"])
	}
}

func TestParseEnvelope_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"type": "invoice.created"`},
		{"missing type", `{"id": "evt_1", "data": {"object": {}}}`},
		{"empty type", `{"id": "evt_1", "type": ""}`},
		{"not an object", `[1, 2, 3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseEnvelope([]byte(tc.raw)); err == nil {
				t.Errorf("expected error for %s, got nil", tc.name)
			}
		})
	}
}
