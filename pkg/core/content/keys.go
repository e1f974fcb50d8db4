package content

import (
	"strings"
	"unicode"
)

// NormalizeKeys returns a copy of v where every map key, at any depth, is
// lowercased and stripped of whitespace: "Made With" becomes "madewith".
// Values that are not maps or lists are returned as is.
func NormalizeKeys(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[normalizeKey(k)] = NormalizeKeys(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = NormalizeKeys(item)
		}
		return out
	}
	return v
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, k))
}

// ChangeKeys returns a copy of metadata with top-level keys renamed after
// renames. A key renamed to "" is removed.
func ChangeKeys(metadata map[string]any, renames map[string]string) map[string]any {
	out := make(map[string]any, len(metadata))
	for k, v := range metadata {
		to, ok := renames[k]
		switch {
		case !ok:
			out[k] = v
		case to != "":
			out[to] = v
		}
	}
	return out
}

// writebackRenames restores the spelling of metadata keys used in
// description files, and drops keys that are derived when reading them.
var writebackRenames = map[string]string{
	"madewith":       "made with",
	"pagebackground": "page background",
	"layoutproper":   "",
	"title":          "",
}

// WritebackMetadata prepares metadata read through [NormalizeKeys] to be
// written back to a description file.
func WritebackMetadata(metadata map[string]any) map[string]any {
	return ChangeKeys(metadata, writebackRenames)
}
