// Package content models the multi-language content of a work.
//
// A work is described by a [Description]: free-form metadata (which holds the
// persisted layout descriptor under the "layout" key), a title per language
// and, per language, the ordered lists of paragraphs, media embed
// declarations, links and footnotes. The three layout-addressable kinds are
// unified under the sealed [Unit] interface, discriminated by [Unit.Kind].
//
// Per-language collections use [Translated], a map from language code to a
// list. [Map], [Translated.Filter] and [Translated.ForEach] never add or drop
// language keys.
//
// [Positioned] is a unit annotated with the grid cells a layout computation
// placed it on.
package content
