// Package blocks converts between layout descriptors and the positioned
// content blocks of the grid editor.
//
// A [Block] pairs one content unit with its rectangle on the grid. The
// rectangle is stored under the row capacity it is expressed in, the way
// drag-and-drop grid widgets key their items by column count.
//
// The package covers both directions:
//
//   - [ToLayout] rebuilds a normalized [layout.Layout] from the blocks of one
//     language.
//   - [Converter.ToBlocks] asks a [LayoutService] to place a description's
//     units and turns the placed units into blocks, for every language.
//
// [ToDescription] reassembles a full description from edited blocks.
//
// A Block is identified by its [ID], "{kind}:{index}" with a 0-based index
// within its kind: "paragraph:0" is the unit behind the "p1" layout token.
package blocks
