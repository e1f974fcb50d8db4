package layout

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ortfo/gui/pkg/errors"
)

// MarshalJSON writes a token string, or null for a spacer.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsNull() {
		return []byte("null"), nil
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON reads a token string or null.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = Null
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidToken, err, "cell must be a string or null")
	}
	parsed, err := ParseCell(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON writes a one-cell row as a bare token and any other row as an
// array of tokens.
func (r Row) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		return r[0].MarshalJSON()
	}
	cells := []Cell(r)
	if cells == nil {
		cells = []Cell{}
	}
	return json.Marshal(cells)
}

// UnmarshalJSON accepts either an array of tokens or a bare token.
func (r *Row) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var cells []Cell
		if err := json.Unmarshal(data, &cells); err != nil {
			return err
		}
		if cells == nil {
			cells = []Cell{}
		}
		*r = cells
		return nil
	}
	var c Cell
	if err := c.UnmarshalJSON(data); err != nil {
		return err
	}
	*r = Row{c}
	return nil
}

// MarshalJSON writes an empty array for a nil layout.
func (l Layout) MarshalJSON() ([]byte, error) {
	rows := []Row(l)
	if rows == nil {
		rows = []Row{}
	}
	return json.Marshal(rows)
}

// MarshalYAML mirrors [Cell.MarshalJSON].
func (c Cell) MarshalYAML() (any, error) {
	if c.IsNull() {
		return nil, nil
	}
	return c.String(), nil
}

// UnmarshalYAML reads a token scalar. YAML nulls decode to the zero Cell
// without reaching this method.
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.New(errors.ErrCodeInvalidToken, "cell must be a scalar (line %d)", node.Line)
	}
	if node.Tag == "!!null" {
		*c = Null
		return nil
	}
	parsed, err := ParseCell(node.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML mirrors [Row.MarshalJSON].
func (r Row) MarshalYAML() (any, error) {
	if len(r) == 1 {
		return r[0].MarshalYAML()
	}
	out := make([]any, len(r))
	for i, c := range r {
		v, _ := c.MarshalYAML()
		out[i] = v
	}
	return out, nil
}

// UnmarshalYAML accepts a sequence of tokens or a bare token.
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		cells := make([]Cell, 0, len(node.Content))
		if err := node.Decode(&cells); err != nil {
			return err
		}
		*r = cells
		return nil
	}
	var c Cell
	if err := c.UnmarshalYAML(node); err != nil {
		return err
	}
	*r = Row{c}
	return nil
}

// String renders l as compact JSON.
func (l Layout) String() string {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Sprintf("<invalid layout: %v>", err)
	}
	return string(data)
}

// Parse decodes a JSON layout descriptor.
func Parse(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout")
	}
	return l, nil
}

// FromValue converts a loosely typed metadata value, as produced by decoding
// a document's metadata into map[string]any, into a Layout. A nil value
// yields a nil Layout.
func FromValue(v any) (Layout, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case Layout:
		return v.Clone(), nil
	case []Row:
		return Layout(v).Clone(), nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "encode layout value")
	}
	return Parse(data)
}
