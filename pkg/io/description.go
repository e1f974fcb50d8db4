package io

import (
	"io"

	"github.com/ortfo/gui/pkg/core/content"
)

// ReadDescription decodes a description from r and normalizes its metadata
// keys. ReadDescription does not close r.
func ReadDescription(r io.Reader, format Format) (content.Description, error) {
	var d content.Description
	if err := decode(r, format, &d); err != nil {
		return content.Description{}, err
	}
	if d.Metadata != nil {
		d.Metadata = content.NormalizeKeys(d.Metadata).(map[string]any)
	}
	return d, nil
}

// WriteDescription encodes d to w with its metadata keys restored to their
// file spelling. d is not modified.
func WriteDescription(w io.Writer, d content.Description, format Format) error {
	out := d.Clone()
	if out.Metadata != nil {
		out.Metadata = content.WritebackMetadata(out.Metadata)
	}
	return encode(w, format, out)
}

// ImportDescription reads the description file at path, in the format of its
// extension.
func ImportDescription(path string) (content.Description, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return content.Description{}, err
	}
	f, err := open(path)
	if err != nil {
		return content.Description{}, err
	}
	defer f.Close()
	return ReadDescription(f, format)
}

// ExportDescription writes d to path, in the format of its extension.
func ExportDescription(d content.Description, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		return WriteDescription(w, d, format)
	})
}
