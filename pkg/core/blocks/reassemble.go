package blocks

import (
	"cmp"
	"slices"

	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

// ToDescription rebuilds a description from edited blocks.
//
// For every language of blocks the paragraphs, media embeds and links are
// replaced by the payloads of the blocks, per kind in layout index order.
// Blocks are renumbered first (see [Reindex]) so that a token "pN" always
// names the N-th paragraph. The layout descriptor is rebuilt from the blocks
// of the first language in lexical order; the editor shares one arrangement
// across languages. Everything else, including titles, footnotes, other
// metadata and languages without blocks, is copied from base.
//
// A nil base is an error. When blocks holds no block at all, a copy of base
// is returned unchanged.
func ToDescription(blocks content.Translated[Block], capacity int, base *content.Description) (content.Description, error) {
	if base == nil {
		return content.Description{}, errors.New(errors.ErrCodeMissingDocument, "no base description to merge blocks into")
	}
	if blocks.Len() == 0 {
		return base.Clone(), nil
	}

	renumbered := make(content.Translated[Block], len(blocks))
	for lang, items := range blocks {
		for _, b := range items {
			if err := b.validate(); err != nil {
				return content.Description{}, err
			}
			if b.Data == nil {
				return content.Description{}, errors.New(errors.ErrCodeInvalidBlock, "block %s (%s) has no content", b.ID, lang)
			}
		}
		sorted := Reindex(items)
		slices.SortStableFunc(sorted, func(a, b Block) int { return cmp.Compare(a.ID.Index, b.ID.Index) })
		renumbered[lang] = sorted
	}

	l, err := ToLayout(renumbered[representative(renumbered)], capacity)
	if err != nil {
		return content.Description{}, err
	}

	out := base.WithLayout(l)
	out.Paragraphs = ensure(out.Paragraphs)
	out.MediaEmbedDeclarations = ensure(out.MediaEmbedDeclarations)
	out.Links = ensure(out.Links)
	for lang, items := range renumbered {
		out.Paragraphs[lang] = payloads[content.Paragraph](items, layout.KindParagraph)
		out.MediaEmbedDeclarations[lang] = payloads[content.Media](items, layout.KindMedia)
		out.Links[lang] = payloads[content.Link](items, layout.KindLink)
	}
	return out, nil
}

// representative returns the first language of t, in lexical order, with at
// least one block.
func representative(t content.Translated[Block]) string {
	for _, lang := range t.Languages() {
		if len(t[lang]) > 0 {
			return lang
		}
	}
	return ""
}

func ensure[T any](t content.Translated[T]) content.Translated[T] {
	if t == nil {
		return make(content.Translated[T])
	}
	return t
}

// payloads collects the units of kind held by blocks, in order. Blocks
// sharing a layout index contribute a single unit.
func payloads[T content.Unit](blocks []Block, kind layout.Kind) []T {
	out := make([]T, 0, len(blocks))
	last := -1
	for _, b := range blocks {
		if b.ID.Kind != kind || b.ID.Index == last {
			continue
		}
		if u, ok := b.Data.(T); ok {
			out = append(out, u)
			last = b.ID.Index
		}
	}
	return out
}
