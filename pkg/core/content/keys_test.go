package content

import (
	"reflect"
	"testing"
)

func TestNormalizeKeys(t *testing.T) {
	in := map[string]any{
		"Made With":       []any{"Go", map[string]any{"Tool Name": "vim"}},
		"Page Background": "#fff",
		"colors":          map[string]any{"Primary": "red"},
	}
	want := map[string]any{
		"madewith":       []any{"Go", map[string]any{"toolname": "vim"}},
		"pagebackground": "#fff",
		"colors":         map[string]any{"primary": "red"},
	}
	if got := NormalizeKeys(in); !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeKeys = %v, want %v", got, want)
	}
	if NormalizeKeys("Some Value") != "Some Value" {
		t.Error("NormalizeKeys should leave scalar values alone")
	}
}

func TestWritebackMetadata(t *testing.T) {
	in := map[string]any{
		"madewith":       []any{"Go"},
		"pagebackground": "#fff",
		"layoutproper":   []any{},
		"title":          "derived",
		"wip":            true,
	}
	want := map[string]any{
		"made with":       []any{"Go"},
		"page background": "#fff",
		"wip":             true,
	}
	if got := WritebackMetadata(in); !reflect.DeepEqual(got, want) {
		t.Errorf("WritebackMetadata = %v, want %v", got, want)
	}
	if _, ok := in["madewith"]; !ok {
		t.Error("WritebackMetadata modified its input")
	}
}
