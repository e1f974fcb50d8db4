package content

import (
	"maps"
	"slices"
)

// Translated maps a language code to that language's list of T.
type Translated[T any] map[string][]T

// Languages returns the language keys of t in lexical order.
func (t Translated[T]) Languages() []string {
	return slices.Sorted(maps.Keys(t))
}

// Map applies f to every item of every language. The result has exactly the
// language keys of t, each with a list as long as the original.
func Map[T, U any](t Translated[T], f func(language string, item T) U) Translated[U] {
	out := make(Translated[U], len(t))
	for lang, items := range t {
		mapped := make([]U, len(items))
		for i, item := range items {
			mapped[i] = f(lang, item)
		}
		out[lang] = mapped
	}
	return out
}

// MapErr is [Map] for fallible transforms. It stops at the first error.
func MapErr[T, U any](t Translated[T], f func(language string, item T) (U, error)) (Translated[U], error) {
	out := make(Translated[U], len(t))
	for _, lang := range t.Languages() {
		items := t[lang]
		mapped := make([]U, len(items))
		for i, item := range items {
			u, err := f(lang, item)
			if err != nil {
				return nil, err
			}
			mapped[i] = u
		}
		out[lang] = mapped
	}
	return out, nil
}

// Filter keeps the items for which keep returns true. Languages left without
// items remain present with an empty list.
func (t Translated[T]) Filter(keep func(language string, item T) bool) Translated[T] {
	out := make(Translated[T], len(t))
	for lang, items := range t {
		kept := make([]T, 0, len(items))
		for _, item := range items {
			if keep(lang, item) {
				kept = append(kept, item)
			}
		}
		out[lang] = kept
	}
	return out
}

// ForEach calls f on every item, visiting languages in lexical order.
func (t Translated[T]) ForEach(f func(language string, item T)) {
	for _, lang := range t.Languages() {
		for _, item := range t[lang] {
			f(lang, item)
		}
	}
}

// Len returns the number of items across all languages.
func (t Translated[T]) Len() int {
	n := 0
	for _, items := range t {
		n += len(items)
	}
	return n
}

// Clone returns a copy of t whose lists can be modified independently.
func (t Translated[T]) Clone() Translated[T] {
	if t == nil {
		return nil
	}
	out := make(Translated[T], len(t))
	for lang, items := range t {
		out[lang] = slices.Clone(items)
	}
	return out
}
