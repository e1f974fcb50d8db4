// Package io reads and writes the files the layout tools work with:
// descriptions, layout descriptors and block documents.
//
// # Formats
//
// Descriptions and layouts are read and written as JSON or YAML. The format
// is picked from the file extension by [FormatFromPath]: ".json" is JSON,
// ".yaml" and ".yml" are YAML. Block documents are JSON only, matching what
// the grid editor exchanges.
//
// # Metadata keys
//
// Metadata keys are normalized when a description is read ("Made With"
// becomes "madewith", see [content.NormalizeKeys]) and restored when it is
// written back (see [content.WritebackMetadata]), so that a read-write cycle
// keeps the spelling used by description files.
//
// # Layouts
//
// JSON layouts are validated against the descriptor schema (see
// [layout.Validate]) before decoding, which reports every offending cell at
// once:
//
//	l, err := io.ImportLayout("layout.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// [content.NormalizeKeys]: github.com/ortfo/gui/pkg/core/content.NormalizeKeys
// [content.WritebackMetadata]: github.com/ortfo/gui/pkg/core/content.WritebackMetadata
// [layout.Validate]: github.com/ortfo/gui/pkg/core/layout.Validate
package io
