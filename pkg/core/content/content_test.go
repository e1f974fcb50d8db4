package content

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
)

func TestEmpty(t *testing.T) {
	tests := []struct {
		kind layout.Kind
		want Unit
	}{
		{layout.KindParagraph, Paragraph{}},
		{layout.KindMedia, Media{Attributes: MediaAttributes{Controls: true}}},
		{layout.KindLink, Link{}},
	}
	for _, tt := range tests {
		got, err := Empty(tt.kind)
		if err != nil {
			t.Fatalf("Empty(%s): %v", tt.kind, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Empty(%s) = %#v, want %#v", tt.kind, got, tt.want)
		}
		if got.Kind() != tt.kind {
			t.Errorf("Empty(%s).Kind() = %s", tt.kind, got.Kind())
		}
	}
	if _, err := Empty("footnote"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Empty(footnote) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestEncodeDecodeUnit(t *testing.T) {
	units := []Unit{
		Paragraph{ID: "intro", Content: "<p>hello</p>"},
		Media{Alt: "alt", Title: "A painting", Source: "painting.png", Attributes: MediaAttributes{Looped: true, Controls: true}},
		Link{ID: "src", Name: "source code", Title: "GitHub", URL: "https://github.com/ortfo/gui"},
	}
	for _, u := range units {
		data, err := EncodeUnit(u)
		if err != nil {
			t.Fatalf("EncodeUnit(%#v): %v", u, err)
		}
		if !strings.Contains(string(data), `"type":"`+string(u.Kind())+`"`) {
			t.Errorf("EncodeUnit(%#v) = %s, missing type tag", u, data)
		}
		back, err := DecodeUnit(data)
		if err != nil {
			t.Fatalf("DecodeUnit(%s): %v", data, err)
		}
		if !reflect.DeepEqual(back, u) {
			t.Errorf("DecodeUnit(EncodeUnit(u)) = %#v, want %#v", back, u)
		}
	}
}

func TestDecodeUnitUnknownType(t *testing.T) {
	if _, err := DecodeUnit([]byte(`{"type":"footnote"}`)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
	if _, err := DecodeUnit([]byte(`[]`)); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestPositionedJSON(t *testing.T) {
	src := `{
		"type": "link", "layoutindex": 1,
		"positions": [[2, 0], [2, 1]],
		"id": "gh", "name": "code", "title": "", "url": "https://example.com",
		"generalcontenttype": "", "metadata": {"wip": true}
	}`
	var p Positioned
	if err := json.Unmarshal([]byte(src), &p); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := Positioned{
		Unit:        Link{ID: "gh", Name: "code", URL: "https://example.com"},
		LayoutIndex: 1,
		Positions:   []Position{{Row: 2, Column: 0}, {Row: 2, Column: 1}},
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("Unmarshal = %#v, want %#v", p, want)
	}
	if got := p.Rows(); !reflect.DeepEqual(got, []int{2, 2}) {
		t.Errorf("Rows = %v", got)
	}
	if got := p.Columns(); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("Columns = %v", got)
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"positions":[[2,0],[2,1]]`) {
		t.Errorf("Marshal = %s, want positions as pairs", data)
	}
}

func TestPositionRejectsBadPairs(t *testing.T) {
	var p Position
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &p); err == nil {
		t.Error("a three-value position should fail")
	}
}

func TestDescriptionLayout(t *testing.T) {
	var d Description
	if err := json.Unmarshal([]byte(`{"metadata": {"layout": ["p1", ["m1", "l1"]], "wip": true}}`), &d); err != nil {
		t.Fatal(err)
	}
	l, err := d.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if l.String() != `["p1",["m1","l1"]]` {
		t.Errorf("Layout = %s", l)
	}
	if !d.HasLayout() {
		t.Error("HasLayout = false, want true")
	}

	updated := d.WithLayout(layout.Layout{{layout.Token(layout.KindLink, 1)}})
	if got, _ := updated.Layout(); got.String() != `["l1"]` {
		t.Errorf("WithLayout layout = %s", got)
	}
	if got, _ := d.Layout(); got.String() != `["p1",["m1","l1"]]` {
		t.Errorf("WithLayout mutated the original metadata: %s", got)
	}
	if updated.Metadata["wip"] != true {
		t.Error("WithLayout dropped other metadata")
	}

	none := Description{}
	if none.HasLayout() {
		t.Error("HasLayout on empty description = true")
	}
	if l, err := none.Layout(); err != nil || l != nil {
		t.Errorf("Layout of empty description = %v, %v", l, err)
	}
}

func TestDescriptionCloneIsDeep(t *testing.T) {
	d := Description{
		Metadata:   map[string]any{"tags": []any{"a"}, "colors": map[string]any{"primary": "red"}},
		Title:      map[string]string{"en": "Title"},
		Paragraphs: Translated[Paragraph]{"en": {{ID: "a"}}},
	}
	c := d.Clone()
	c.Metadata["tags"].([]any)[0] = "b"
	c.Metadata["colors"].(map[string]any)["primary"] = "blue"
	c.Title["en"] = "Other"
	c.Paragraphs["en"][0].ID = "b"

	if d.Metadata["tags"].([]any)[0] != "a" || d.Metadata["colors"].(map[string]any)["primary"] != "red" {
		t.Error("Clone shares metadata with the original")
	}
	if d.Title["en"] != "Title" || d.Paragraphs["en"][0].ID != "a" {
		t.Error("Clone shares translated content with the original")
	}
}

func TestDescriptionLanguages(t *testing.T) {
	d := Description{
		Title:     map[string]string{"fr": "Titre"},
		Links:     Translated[Link]{"en": nil},
		Footnotes: Translated[Footnote]{"ja": {}},
	}
	if got := d.Languages(); !reflect.DeepEqual(got, []string{"en", "fr", "ja"}) {
		t.Errorf("Languages = %v", got)
	}
}

func TestDescriptionUnits(t *testing.T) {
	d := Description{
		Paragraphs: Translated[Paragraph]{"en": {{ID: "a"}, {ID: "b"}}},
		Links:      Translated[Link]{"en": {{ID: "l"}}},
	}
	units := d.Units("en")
	if len(units[layout.KindParagraph]) != 2 || len(units[layout.KindMedia]) != 0 || len(units[layout.KindLink]) != 1 {
		t.Errorf("Units = %v", units)
	}
}
