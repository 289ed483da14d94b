package slackblock

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMarshalBlock_WireTypes(t *testing.T) {
	cases := []struct {
		name     string
		block    Block
		wantType string
	}{
		{"header", Header{Text: PlainText("Title")}, "header"},
		{"section text", SectionText{Text: Mrkdwn("hi")}, "section"},
		{"section fields", SectionFields{Fields: []TextObject{Mrkdwn("a")}}, "section"},
		{"divider", Divider{}, "divider"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := MarshalBlock(tc.block)
			if err != nil {
				t.Fatalf("MarshalBlock error: %v", err)
			}
			var probe map[string]any
			if err := json.Unmarshal(raw, &probe); err != nil {
				t.Fatalf("output not valid JSON: %v", err)
			}
			if probe["type"] != tc.wantType {
				t.Errorf("type = %v, want %q", probe["type"], tc.wantType)
			}
		})
	}
}

func TestBlock_RoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		block Block
		want  Block // decoded form when it differs from the input; nil means identical
	}{
		{"header", Header{Text: PlainText("Stripe digest – 3 events")}, nil},
		{"section text", SectionText{Text: Mrkdwn("New *Stripe* invoice event")}, nil},
		{"section fields", SectionFields{Fields: []TextObject{
			Mrkdwn("*Account:* Acme"),
			Mrkdwn("*Amount:* 12.50 usd"),
		}}, nil},
		{"section empty fields", SectionFields{Fields: []TextObject{}}, nil},
		// A nil slice encodes as [] and decodes to an empty fields section.
		{"section nil fields", SectionFields{}, SectionFields{Fields: []TextObject{}}},
		{"divider", Divider{}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := MarshalBlock(tc.block)
			if err != nil {
				t.Fatalf("MarshalBlock error: %v", err)
			}
			got, err := UnmarshalBlock(raw)
			if err != nil {
				t.Fatalf("UnmarshalBlock error: %v", err)
			}
			want := tc.want
			if want == nil {
				want = tc.block
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip changed block:\n got %#v\nwant %#v", got, want)
			}
		})
	}
}

// Both section variants share the "section" discriminant; the decoder picks
// the variant from the body, fields winning over text.
func TestUnmarshalBlock_SectionDisambiguation(t *testing.T) {
	got, err := UnmarshalBlock([]byte(`{"type":"section","fields":[{"type":"mrkdwn","text":"a"}]}`))
	if err != nil {
		t.Fatalf("UnmarshalBlock error: %v", err)
	}
	if _, ok := got.(SectionFields); !ok {
		t.Errorf("got %T, want SectionFields", got)
	}

	got, err = UnmarshalBlock([]byte(`{"type":"section","text":{"type":"mrkdwn","text":"a"}}`))
	if err != nil {
		t.Fatalf("UnmarshalBlock error: %v", err)
	}
	if _, ok := got.(SectionText); !ok {
		t.Errorf("got %T, want SectionText", got)
	}

	got, err = UnmarshalBlock([]byte(`{"type":"section","text":{"type":"mrkdwn","text":"a"},"fields":[{"type":"mrkdwn","text":"b"}]}`))
	if err != nil {
		t.Fatalf("UnmarshalBlock error: %v", err)
	}
	if _, ok := got.(SectionFields); !ok {
		t.Errorf("both keys present: got %T, want SectionFields", got)
	}
}

func TestUnmarshalBlock_Errors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"section without body", `{"type":"section"}`},
		{"header without text", `{"type":"header"}`},
		{"unknown type", `{"type":"context","text":{"type":"mrkdwn","text":"a"}}`},
		{"missing type", `{"text":{"type":"mrkdwn","text":"a"}}`},
		{"bad json", `{"type":"section"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := UnmarshalBlock([]byte(tc.raw)); err == nil {
				t.Errorf("expected error for %s, got nil", tc.name)
			}
		})
	}
}

func TestMessage_RoundTrip(t *testing.T) {
	msg := Message{Blocks: []Block{
		Header{Text: PlainText("Digest")},
		SectionText{Text: Mrkdwn("line one")},
		Divider{},
		SectionFields{Fields: []TextObject{Mrkdwn("*Amount:* 1.00 usd")}},
	}}
	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var got Message
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if !reflect.DeepEqual(got, msg) {
		t.Errorf("round trip changed message:\n got %#v\nwant %#v", got, msg)
	}
}

func TestMessage_Unmarshal_BadBlock(t *testing.T) {
	raw := `{"blocks":[{"type":"section"}]}`
	var got Message
	if err := json.Unmarshal([]byte(raw), &got); err == nil {
		t.Error("expected error for bodiless section inside message, got nil")
	}
}
