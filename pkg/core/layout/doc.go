// Package layout defines the persisted layout descriptor of a work and the
// normalizer that canonicalizes it.
//
// # Descriptor
//
// A [Layout] is an ordered list of rows. Each [Row] is a list of [Cell]
// tokens of the form {kind}{index}: "p3" is the third paragraph, "m1" the
// first media embed, "l2" the second link. A bare kind letter ("p") is an
// unindexed token that takes the next free index of its kind when the
// layout is normalized, and a null cell is an empty spacer.
//
// On the wire (JSON metadata, YAML front matter) a one-cell row is written
// as a bare token and every other row as an array:
//
//	["p1", ["m1", "m2", "m3"], ["m1", "l1", "l1"], [null, "p2"]]
//
// # Row capacity
//
// Every row stretches to the same width by integer repetition of its cells.
// That common width, the row capacity, is the least common multiple of all
// row lengths ([Width]). In the example above the capacity is 6: "m1" of the
// second row spans columns 0-1 and "l1" of the third row spans columns 2-5.
//
// # Normalization
//
// [Normalize] assigns indices to bare tokens, then shrinks each row by the
// largest factor shared by its runs of repeated cells. The output is
// canonical: normalizing it again returns it unchanged.
package layout
