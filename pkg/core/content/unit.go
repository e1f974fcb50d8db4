package content

import (
	"encoding/json"

	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

// Unit is one paragraph, media embed or link, in one language.
// It is implemented by [Paragraph], [Media] and [Link] only.
type Unit interface {
	Kind() layout.Kind
	isUnit()
}

// Paragraph is a block of rich text.
type Paragraph struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

// Media is a media embed declaration.
type Media struct {
	Alt        string          `json:"alt" yaml:"alt"`
	Title      string          `json:"title" yaml:"title"`
	Source     string          `json:"source" yaml:"source"`
	Attributes MediaAttributes `json:"attributes" yaml:"attributes"`
}

// MediaAttributes are the playback flags of a media embed.
type MediaAttributes struct {
	Looped      bool `json:"looped" yaml:"looped"`
	Autoplay    bool `json:"autoplay" yaml:"autoplay"`
	Muted       bool `json:"muted" yaml:"muted"`
	PlaysInline bool `json:"playsinline" yaml:"playsinline"`
	Controls    bool `json:"controls" yaml:"controls"`
}

// Link is a hyperlink.
type Link struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Footnote is not layout-addressable and is carried through conversions
// untouched.
type Footnote struct {
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
}

func (Paragraph) Kind() layout.Kind { return layout.KindParagraph }
func (Media) Kind() layout.Kind     { return layout.KindMedia }
func (Link) Kind() layout.Kind      { return layout.KindLink }

func (Paragraph) isUnit() {}
func (Media) isUnit()     {}
func (Link) isUnit()      {}

// Empty returns the blank unit of kind, as created when content is added
// from the editor. Blank media show playback controls.
func Empty(kind layout.Kind) (Unit, error) {
	switch kind {
	case layout.KindParagraph:
		return Paragraph{}, nil
	case layout.KindMedia:
		return Media{Attributes: MediaAttributes{Controls: true}}, nil
	case layout.KindLink:
		return Link{}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown content unit type %q", kind)
}

// unitWire is the flat, type-tagged JSON shape shared by block payloads and
// positioned units.
type unitWire struct {
	Type       layout.Kind      `json:"type"`
	ID         string           `json:"id,omitempty"`
	Content    string           `json:"content,omitempty"`
	Alt        string           `json:"alt,omitempty"`
	Title      string           `json:"title,omitempty"`
	Source     string           `json:"source,omitempty"`
	Attributes *MediaAttributes `json:"attributes,omitempty"`
	Name       string           `json:"name,omitempty"`
	URL        string           `json:"url,omitempty"`
}

func toWire(u Unit) (unitWire, error) {
	switch u := u.(type) {
	case Paragraph:
		return unitWire{Type: layout.KindParagraph, ID: u.ID, Content: u.Content}, nil
	case Media:
		attrs := u.Attributes
		return unitWire{Type: layout.KindMedia, Alt: u.Alt, Title: u.Title, Source: u.Source, Attributes: &attrs}, nil
	case Link:
		return unitWire{Type: layout.KindLink, ID: u.ID, Name: u.Name, Title: u.Title, URL: u.URL}, nil
	case nil:
		return unitWire{}, errors.New(errors.ErrCodeInvalidInput, "missing content unit")
	}
	return unitWire{}, errors.New(errors.ErrCodeInvalidInput, "unsupported content unit %T", u)
}

func (w unitWire) unit() (Unit, error) {
	switch w.Type {
	case layout.KindParagraph:
		return Paragraph{ID: w.ID, Content: w.Content}, nil
	case layout.KindMedia:
		m := Media{Alt: w.Alt, Title: w.Title, Source: w.Source}
		if w.Attributes != nil {
			m.Attributes = *w.Attributes
		}
		return m, nil
	case layout.KindLink:
		return Link{ID: w.ID, Name: w.Name, Title: w.Title, URL: w.URL}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown content unit type %q", w.Type)
}

// EncodeUnit writes u as a JSON object tagged with its kind under "type".
func EncodeUnit(u Unit) ([]byte, error) {
	w, err := toWire(u)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

// DecodeUnit reads a type-tagged JSON object written by [EncodeUnit].
func DecodeUnit(data []byte) (Unit, error) {
	var w unitWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode content unit")
	}
	return w.unit()
}
