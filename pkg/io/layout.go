package io

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

// ReadLayout decodes a layout descriptor from r. JSON input is checked
// against the descriptor schema first.
func ReadLayout(r io.Reader, format Format) (layout.Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read layout")
	}
	return ParseLayout(data, format)
}

// ParseLayout decodes a layout descriptor held in memory.
func ParseLayout(data []byte, format Format) (layout.Layout, error) {
	switch format {
	case FormatJSON:
		if err := layout.Validate(data); err != nil {
			return nil, err
		}
		return layout.Parse(data)
	case FormatYAML:
		var l layout.Layout
		if len(bytes.TrimSpace(data)) == 0 {
			return layout.Layout{}, nil
		}
		if err := yaml.Unmarshal(data, &l); err != nil {
			if errors.GetCode(err) != "" {
				return nil, err
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode yaml layout")
		}
		return l, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unknown format %q", format)
}

// WriteLayout encodes l to w.
func WriteLayout(w io.Writer, l layout.Layout, format Format) error {
	if l == nil {
		l = layout.Layout{}
	}
	return encode(w, format, l)
}

// ImportLayout reads the layout file at path, in the format of its
// extension.
func ImportLayout(path string) (layout.Layout, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLayout(f, format)
}

// ExportLayout writes l to path, in the format of its extension.
func ExportLayout(l layout.Layout, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		return WriteLayout(w, l, format)
	})
}
