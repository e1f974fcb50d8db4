package content

import (
	"maps"
	"slices"

	"github.com/ortfo/gui/pkg/core/layout"
)

// LayoutKey is the metadata key holding the layout descriptor.
const LayoutKey = "layout"

// Description is the parsed description of a work.
type Description struct {
	// ID identifies the work. It is empty for descriptions that were not
	// read from a database.
	ID                     string                `json:"id,omitempty" yaml:"id,omitempty"`
	Metadata               map[string]any        `json:"metadata" yaml:"metadata"`
	Title                  map[string]string     `json:"title" yaml:"title"`
	Paragraphs             Translated[Paragraph] `json:"paragraphs" yaml:"paragraphs"`
	MediaEmbedDeclarations Translated[Media]     `json:"mediaembeddeclarations" yaml:"mediaembeddeclarations"`
	Links                  Translated[Link]      `json:"links" yaml:"links"`
	Footnotes              Translated[Footnote]  `json:"footnotes" yaml:"footnotes"`
}

// Layout decodes the layout descriptor stored in the metadata.
// It returns a nil Layout when the work has none.
func (d Description) Layout() (layout.Layout, error) {
	return layout.FromValue(d.Metadata[LayoutKey])
}

// HasLayout reports whether a layout descriptor is stored in the metadata.
func (d Description) HasLayout() bool {
	v, ok := d.Metadata[LayoutKey]
	return ok && v != nil
}

// WithLayout returns a copy of d whose metadata holds l.
// d and its metadata are left untouched.
func (d Description) WithLayout(l layout.Layout) Description {
	out := d.Clone()
	if out.Metadata == nil {
		out.Metadata = make(map[string]any, 1)
	}
	out.Metadata[LayoutKey] = l.Clone()
	return out
}

// Clone returns a deep copy of d.
func (d Description) Clone() Description {
	out := d
	out.Metadata = cloneMap(d.Metadata)
	if d.Title != nil {
		out.Title = maps.Clone(d.Title)
	}
	out.Paragraphs = d.Paragraphs.Clone()
	out.MediaEmbedDeclarations = d.MediaEmbedDeclarations.Clone()
	out.Links = d.Links.Clone()
	out.Footnotes = d.Footnotes.Clone()
	return out
}

// Languages returns every language that has a title or content, sorted.
func (d Description) Languages() []string {
	set := make(map[string]bool)
	for lang := range d.Title {
		set[lang] = true
	}
	for lang := range d.Paragraphs {
		set[lang] = true
	}
	for lang := range d.MediaEmbedDeclarations {
		set[lang] = true
	}
	for lang := range d.Links {
		set[lang] = true
	}
	for lang := range d.Footnotes {
		set[lang] = true
	}
	return slices.Sorted(maps.Keys(set))
}

// Units returns the layout-addressable units of lang, grouped by kind in
// canonical kind order.
func (d Description) Units(lang string) map[layout.Kind][]Unit {
	out := make(map[layout.Kind][]Unit, len(layout.Kinds))
	out[layout.KindParagraph] = asUnits(d.Paragraphs[lang])
	out[layout.KindMedia] = asUnits(d.MediaEmbedDeclarations[lang])
	out[layout.KindLink] = asUnits(d.Links[lang])
	return out
}

func asUnits[T Unit](items []T) []Unit {
	out := make([]Unit, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case layout.Layout:
		return v.Clone()
	}
	return v
}
