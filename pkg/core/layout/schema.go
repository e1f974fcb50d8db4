package layout

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ortfo/gui/pkg/errors"
)

//go:embed layout.schema.json
var schemaJSON []byte

// Schema returns the JSON Schema a serialized layout conforms to.
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
})

// Validate checks raw JSON against the layout schema without parsing it into
// a [Layout]. Every violation is reported in a single
// [errors.ErrCodeInvalidLayout] error.
func Validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "compile layout schema")
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "layout is not valid JSON")
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return errors.New(errors.ErrCodeInvalidLayout, "%s", strings.Join(problems, "; "))
}
