package layout

import (
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ortfo/gui/pkg/errors"
)

func TestRowJSON(t *testing.T) {
	tests := []struct {
		row  Row
		want string
	}{
		{Row{Token(KindParagraph, 1)}, `"p1"`},
		{Row{Null}, `null`},
		{Row{Null, Token(KindMedia, 2)}, `[null,"m2"]`},
		{Row{}, `[]`},
		{nil, `[]`},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.row)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", tt.row, err)
		}
		if string(data) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.row, data, tt.want)
		}
	}
}

func TestParseAcceptsBareTokensAndArrays(t *testing.T) {
	l := mustParse(t, `["p1", ["m1", null], null, []]`)
	if len(l) != 4 {
		t.Fatalf("len = %d, want 4", len(l))
	}
	if len(l[0]) != 1 || l[0][0] != Token(KindParagraph, 1) {
		t.Errorf("row 0 = %v, want [p1]", l[0])
	}
	if len(l[1]) != 2 || !l[1][1].IsNull() {
		t.Errorf("row 1 = %v, want [m1 null]", l[1])
	}
	if len(l[2]) != 1 || !l[2][0].IsNull() {
		t.Errorf("row 2 = %v, want [null]", l[2])
	}
	if len(l[3]) != 0 {
		t.Errorf("row 3 = %v, want empty", l[3])
	}
	if got := l.String(); got != `["p1",["m1",null],null,[]]` {
		t.Errorf("String = %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		code errors.Code
	}{
		{`["x1"]`, errors.ErrCodeInvalidToken},
		{`[["p1", 3]]`, errors.ErrCodeInvalidToken},
		{`{"rows": []}`, errors.ErrCodeInvalidLayout},
		{`[`, errors.ErrCodeInvalidLayout},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.in))
		if !errors.Is(err, tt.code) {
			t.Errorf("Parse(%s) error = %v, want %s", tt.in, err, tt.code)
		}
	}
}

func TestLayoutYAML(t *testing.T) {
	src := "- p1\n- [m1, l1, l1]\n- [null, p2]\n"
	var l Layout
	if err := yaml.Unmarshal([]byte(src), &l); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	if got, want := l.String(), `["p1",["m1","l1","l1"],[null,"p2"]]`; got != want {
		t.Errorf("decoded = %s, want %s", got, want)
	}

	out, err := yaml.Marshal(l)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	var back Layout
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("yaml.Unmarshal(roundtrip): %v", err)
	}
	if !back.Equal(l) {
		t.Errorf("YAML roundtrip = %s, want %s", back, l)
	}
	if !strings.HasPrefix(string(out), "- p1\n") {
		t.Errorf("singleton row should serialize as a bare token, got:\n%s", out)
	}
}

func TestLayoutYAMLRejectsMappings(t *testing.T) {
	var l Layout
	err := yaml.Unmarshal([]byte("- {p: 1}\n"), &l)
	if !errors.Is(err, errors.ErrCodeInvalidToken) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidToken)
	}
}

func TestFromValue(t *testing.T) {
	var meta map[string]any
	if err := json.Unmarshal([]byte(`{"layout": ["p1", ["m1", "l1"]]}`), &meta); err != nil {
		t.Fatal(err)
	}
	l, err := FromValue(meta["layout"])
	if err != nil {
		t.Fatalf("FromValue: %v", err)
	}
	if got := l.String(); got != `["p1",["m1","l1"]]` {
		t.Errorf("FromValue = %s", got)
	}

	nilLayout, err := FromValue(nil)
	if err != nil || nilLayout != nil {
		t.Errorf("FromValue(nil) = %v, %v; want nil, nil", nilLayout, err)
	}

	if _, err := FromValue("p1"); err == nil {
		t.Error("FromValue(string) should fail")
	}
}
