package content

import (
	"maps"

	"github.com/ortfo/gui/pkg/errors"
)

// DefaultLanguage is the language key used for content that is not
// translated.
const DefaultLanguage = "default"

// OneLanguage is a work seen in a single language.
type OneLanguage struct {
	ID                     string         `json:"id"`
	Language               string         `json:"language"`
	Metadata               map[string]any `json:"metadata"`
	Title                  string         `json:"title"`
	Paragraphs             []Paragraph    `json:"paragraphs"`
	MediaEmbedDeclarations []Media        `json:"mediaembeddeclarations"`
	Links                  []Link         `json:"links"`
	Footnotes              []Footnote     `json:"footnotes"`
}

// InLanguage extracts the content of lang from d. Fields without an entry
// for lang (or an empty title) fall back to the [DefaultLanguage] entry,
// then to empty values.
func InLanguage(d Description, lang string) OneLanguage {
	return OneLanguage{
		ID:                     d.ID,
		Language:               lang,
		Metadata:               cloneMap(d.Metadata),
		Title:                  pick(d.Title, lang),
		Paragraphs:             pickList(d.Paragraphs, lang),
		MediaEmbedDeclarations: pickList(d.MediaEmbedDeclarations, lang),
		Links:                  pickList(d.Links, lang),
		Footnotes:              pickList(d.Footnotes, lang),
	}
}

// FromLanguages merges single-language views back into one description.
// All views must belong to the same work. Metadata is merged in argument
// order, later views overriding earlier ones.
func FromLanguages(views ...OneLanguage) (Description, error) {
	if len(views) == 0 {
		return Description{}, errors.New(errors.ErrCodeInvalidInput, "no single-language works to merge")
	}
	d := Description{
		ID:                     views[0].ID,
		Metadata:               make(map[string]any),
		Title:                  make(map[string]string, len(views)),
		Paragraphs:             make(Translated[Paragraph], len(views)),
		MediaEmbedDeclarations: make(Translated[Media], len(views)),
		Links:                  make(Translated[Link], len(views)),
		Footnotes:              make(Translated[Footnote], len(views)),
	}
	for _, v := range views {
		if v.ID != d.ID {
			return Description{}, errors.New(errors.ErrCodeInvalidInput,
				"cannot merge single-language works with different ids (%q and %q)", d.ID, v.ID)
		}
		maps.Copy(d.Metadata, cloneMap(v.Metadata))
		d.Title[v.Language] = v.Title
		d.Paragraphs[v.Language] = v.Paragraphs
		d.MediaEmbedDeclarations[v.Language] = v.MediaEmbedDeclarations
		d.Links[v.Language] = v.Links
		d.Footnotes[v.Language] = v.Footnotes
	}
	return d, nil
}

func pick(m map[string]string, lang string) string {
	if v := m[lang]; v != "" {
		return v
	}
	return m[DefaultLanguage]
}

func pickList[T any](t Translated[T], lang string) []T {
	if items, ok := t[lang]; ok && items != nil {
		return append([]T{}, items...)
	}
	if items := t[DefaultLanguage]; items != nil {
		return append([]T{}, items...)
	}
	return []T{}
}
