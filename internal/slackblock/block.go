// Package slackblock encodes and decodes the display-block schema of a
// notification message. The two section variants share the "section" wire
// discriminant and are told apart structurally: a decoder checks for a
// fields array before a text object, so behavior stays deterministic.
package slackblock

import (
	"encoding/json"
	"fmt"
)

// Text object kinds.
const (
	TypeMrkdwn    = "mrkdwn"
	TypePlainText = "plain_text"
)

// Wire discriminants. Both section variants serialize as "section".
const (
	typeHeader  = "header"
	typeSection = "section"
	typeDivider = "divider"
)

// TextObject is the smallest display primitive.
type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Mrkdwn builds a mrkdwn text object.
func Mrkdwn(text string) TextObject {
	return TextObject{Type: TypeMrkdwn, Text: text}
}

// PlainText builds a plain_text text object.
func PlainText(text string) TextObject {
	return TextObject{Type: TypePlainText, Text: text}
}

// Block is one unit of a display message.
type Block interface {
	blockType() string
}

// Header is a prominent title block.
type Header struct {
	Text TextObject `json:"text"`
}

func (Header) blockType() string { return typeHeader }

// SectionText is a section carrying a single text object.
type SectionText struct {
	Text TextObject `json:"text"`
}

func (SectionText) blockType() string { return typeSection }

// SectionFields is a section carrying an ordered list of text objects.
type SectionFields struct {
	Fields []TextObject `json:"fields"`
}

func (SectionFields) blockType() string { return typeSection }

// Divider is a horizontal rule between blocks.
type Divider struct{}

func (Divider) blockType() string { return typeDivider }

// Message is an ordered sequence of blocks, rendered top to bottom.
type Message struct {
	Blocks []Block `json:"blocks"`
}

// MarshalBlock encodes a block with its wire discriminant.
func MarshalBlock(b Block) ([]byte, error) {
	switch v := b.(type) {
	case Header:
		return json.Marshal(struct {
			Type string     `json:"type"`
			Text TextObject `json:"text"`
		}{typeHeader, v.Text})
	case SectionText:
		return json.Marshal(struct {
			Type string     `json:"type"`
			Text TextObject `json:"text"`
		}{typeSection, v.Text})
	case SectionFields:
		fields := v.Fields
		if fields == nil {
			// A nil slice still encodes as [] so the value stays decodable.
			fields = []TextObject{}
		}
		return json.Marshal(struct {
			Type   string       `json:"type"`
			Fields []TextObject `json:"fields"`
		}{typeSection, fields})
	case Divider:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{typeDivider})
	}
	return nil, fmt.Errorf("marshal block: unknown block type %T", b)
}

// UnmarshalBlock decodes a single block. For "section" objects the fields
// variant wins when both keys are somehow present; an object with neither a
// fields array nor a text object is a decode error, never a silent default.
func UnmarshalBlock(data []byte) (Block, error) {
	var probe struct {
		Type   string            `json:"type"`
		Text   *TextObject       `json:"text"`
		Fields []json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("unmarshal block: %w", err)
	}
	switch probe.Type {
	case typeHeader:
		if probe.Text == nil {
			return nil, fmt.Errorf("unmarshal block: header without text")
		}
		return Header{Text: *probe.Text}, nil
	case typeSection:
		if probe.Fields != nil {
			fields := make([]TextObject, 0, len(probe.Fields))
			for i, raw := range probe.Fields {
				var to TextObject
				if err := json.Unmarshal(raw, &to); err != nil {
					return nil, fmt.Errorf("unmarshal block: fields[%d]: %w", i, err)
				}
				fields = append(fields, to)
			}
			return SectionFields{Fields: fields}, nil
		}
		if probe.Text != nil {
			return SectionText{Text: *probe.Text}, nil
		}
		return nil, fmt.Errorf("unmarshal block: section has neither fields nor text")
	case typeDivider:
		return Divider{}, nil
	}
	return nil, fmt.Errorf("unmarshal block: unknown type %q", probe.Type)
}

// MarshalJSON implements json.Marshaler for Message.
func (m Message) MarshalJSON() ([]byte, error) {
	blocks := make([]json.RawMessage, 0, len(m.Blocks))
	for _, b := range m.Blocks {
		raw, err := MarshalBlock(b)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, raw)
	}
	return json.Marshal(struct {
		Blocks []json.RawMessage `json:"blocks"`
	}{blocks})
}

// UnmarshalJSON implements json.Unmarshaler for Message.
func (m *Message) UnmarshalJSON(data []byte) error {
	var wire struct {
		Blocks []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("unmarshal message: %w", err)
	}
	blocks := make([]Block, 0, len(wire.Blocks))
	for i, raw := range wire.Blocks {
		b, err := UnmarshalBlock(raw)
		if err != nil {
			return fmt.Errorf("unmarshal message: blocks[%d]: %w", i, err)
		}
		blocks = append(blocks, b)
	}
	m.Blocks = blocks
	return nil
}
