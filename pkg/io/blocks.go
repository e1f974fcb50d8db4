package io

import (
	"io"

	"github.com/ortfo/gui/pkg/core/blocks"
	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/errors"
)

// BlocksDocument is the blocks of every language of a work along with the
// row capacity their placements are expressed in.
type BlocksDocument struct {
	Capacity int                              `json:"capacity"`
	Blocks   content.Translated[blocks.Block] `json:"blocks"`
}

// ReadBlocks decodes a block document from r.
func ReadBlocks(r io.Reader) (BlocksDocument, error) {
	var doc BlocksDocument
	if err := decode(r, FormatJSON, &doc); err != nil {
		return BlocksDocument{}, err
	}
	if err := errors.ValidateCapacity(doc.Capacity); err != nil {
		return BlocksDocument{}, err
	}
	if doc.Blocks == nil {
		doc.Blocks = content.Translated[blocks.Block]{}
	}
	return doc, nil
}

// WriteBlocks encodes doc to w.
func WriteBlocks(w io.Writer, doc BlocksDocument) error {
	if doc.Blocks == nil {
		doc.Blocks = content.Translated[blocks.Block]{}
	}
	return encode(w, FormatJSON, doc)
}

// ImportBlocks reads the block document at path.
func ImportBlocks(path string) (BlocksDocument, error) {
	f, err := open(path)
	if err != nil {
		return BlocksDocument{}, err
	}
	defer f.Close()
	return ReadBlocks(f)
}

// ExportBlocks writes doc to path.
func ExportBlocks(doc BlocksDocument, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteBlocks(w, doc)
	})
}
