// Package grid provides the integer geometry helpers shared by the layout
// normalizer and the block converter.
//
// Everything here is pure: no allocation beyond the returned slices and no
// package state. The helpers work in the row-capacity coordinate space, where
// every row of a layout is stretched to the least common multiple of all row
// widths (see [LCM]).
//
// [ConsecutiveRepeats] groups maximal runs of adjacent equal values rather
// than counting occurrences; the layout normalizer relies on that distinction
// to decide whether a row can be compressed.
package grid
