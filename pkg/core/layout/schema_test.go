package layout

import (
	"encoding/json"
	"testing"

	"github.com/ortfo/gui/pkg/errors"
)

func TestValidate(t *testing.T) {
	valid := []string{
		`[]`,
		`["p1", ["m1", "m2"], [null, "l"], null, []]`,
		`["p", "m", "l"]`,
	}
	for _, in := range valid {
		if err := Validate([]byte(in)); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", in, err)
		}
	}

	invalid := []string{
		`{"layout": []}`,
		`["x1"]`,
		`[["p1", 2]]`,
		`[[["p1"]]]`,
		`"p1"`,
	}
	for _, in := range invalid {
		if err := Validate([]byte(in)); !errors.Is(err, errors.ErrCodeInvalidLayout) {
			t.Errorf("Validate(%s) = %v, want %s", in, err, errors.ErrCodeInvalidLayout)
		}
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if err := Validate([]byte(`[`)); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Validate([) = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
}

func TestSchemaIsJSON(t *testing.T) {
	var v map[string]any
	if err := json.Unmarshal(Schema(), &v); err != nil {
		t.Fatalf("Schema is not JSON: %v", err)
	}
	if v["type"] != "array" {
		t.Errorf("schema type = %v, want array", v["type"])
	}
}
