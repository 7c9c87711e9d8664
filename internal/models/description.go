package models

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// DescriptionKind tags which shape a Description holds
type DescriptionKind int

const (
	PlainText DescriptionKind = iota
	RichDocument
)

// Span is an inline child of a rich-text block
type Span struct {
	Type  string   `json:"_type,omitempty" yaml:"_type,omitempty"`
	Text  string   `json:"text" yaml:"text"`
	Marks []string `json:"marks,omitempty" yaml:"marks,omitempty"`
}

// Block is one paragraph-level element of a rich-text document
type Block struct {
	Type     string `json:"_type,omitempty" yaml:"_type,omitempty"`
	Style    string `json:"style,omitempty" yaml:"style,omitempty"`
	Children []Span `json:"children" yaml:"children"`
}

// Description is either plain text or a block-based rich-text document.
//
// Decoding never fails on an unexpected shape: anything that is neither a
// string nor a list of blocks becomes an empty rich document, which display
// code resolves to a fallback sentence.
type Description struct {
	Kind   DescriptionKind
	Text   string
	Blocks []Block
}

// PlainDescription wraps text as a plain-text description
func PlainDescription(text string) Description {
	return Description{Kind: PlainText, Text: text}
}

// RichDescription wraps blocks as a rich-text description
func RichDescription(blocks ...Block) Description {
	return Description{Kind: RichDocument, Blocks: blocks}
}

// PlainText flattens the description for searching. Spans are concatenated
// within a block and blocks are separated by newlines.
func (d Description) PlainText() string {
	if d.Kind == PlainText {
		return d.Text
	}

	var b strings.Builder
	for i, block := range d.Blocks {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, span := range block.Children {
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

// UnmarshalJSON accepts a string or an array of blocks
func (d *Description) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = Description{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			*d = RichDescription()
			return nil
		}
		*d = PlainDescription(text)
	case '[':
		var blocks []Block
		if err := json.Unmarshal(trimmed, &blocks); err != nil {
			blocks = nil
		}
		*d = RichDescription(blocks...)
	default:
		*d = RichDescription()
	}
	return nil
}

// MarshalJSON writes the description back in its original shape
func (d Description) MarshalJSON() ([]byte, error) {
	if d.Kind == PlainText {
		return json.Marshal(d.Text)
	}
	blocks := d.Blocks
	if blocks == nil {
		blocks = []Block{}
	}
	return json.Marshal(blocks)
}

// UnmarshalYAML accepts a scalar or a sequence of blocks
func (d *Description) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*d = Description{}
			return nil
		}
		*d = PlainDescription(value.Value)
	case yaml.SequenceNode:
		var blocks []Block
		if err := value.Decode(&blocks); err != nil {
			blocks = nil
		}
		*d = RichDescription(blocks...)
	default:
		*d = RichDescription()
	}
	return nil
}

// MarshalYAML writes the description back in its original shape
func (d Description) MarshalYAML() (interface{}, error) {
	if d.Kind == PlainText {
		return d.Text, nil
	}
	if d.Blocks == nil {
		return []Block{}, nil
	}
	return d.Blocks, nil
}
