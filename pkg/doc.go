// Package pkg provides the libraries behind the ortfo layout tools.
//
// # Overview
//
// An ortfo work description carries a layout descriptor: a list of rows of
// tokens ("p1", "m2", "l", null) that arranges the work's paragraphs, media
// and links on a grid. The grid editor works with positioned blocks instead.
// The pkg directory is organized into these areas:
//
//  1. [core] - Domain logic (descriptors, descriptions, blocks)
//  2. [layoutsvc] - Layout services computing unit positions
//  3. [cache] - Caching of computed positions
//  4. [io] - Description, layout and block files
//  5. [config], [errors], [observability], [buildinfo] - Shared plumbing
//
// # Architecture
//
// The typical data flow:
//
//	description file
//	       ↓
//	  [io] package (read, normalize metadata keys)
//	       ↓
//	  [layoutsvc] package (positions of every unit, cached)
//	       ↓
//	  [core/blocks] package (positions → blocks, blocks → layout)
//	       ↓
//	  block document, or a rebuilt description
//
// # Quick Start
//
// Lay out a description and rebuild it from its blocks:
//
//	import (
//	    "context"
//	    "github.com/ortfo/gui/pkg/core/blocks"
//	    "github.com/ortfo/gui/pkg/io"
//	    "github.com/ortfo/gui/pkg/layoutsvc/local"
//	)
//
//	// 1. Read the description
//	d, _ := io.ImportDescription("work.yaml")
//
//	// 2. Compute its blocks
//	conv := blocks.NewConverter(local.New(nil), 0, nil)
//	laidOut, capacity := conv.ToBlocks(context.Background(), d)
//
//	// 3. Rebuild the description once the blocks were edited
//	rebuilt, _ := blocks.ToDescription(laidOut, capacity, &d)
//
// # Main Packages
//
// ## Core Domain Logic
//
//   - [core/grid]: Integer and sequence helpers (gcd, lcm, runs)
//   - [core/layout]: Layout descriptor cells, rows, codec, schema and
//     normalization
//   - [core/content]: Descriptions, translated collections, content units
//     and positioned units
//   - [core/blocks]: Conversion between positioned units, blocks and layout
//     descriptors, and reassembly of descriptions
//
// ## Services
//
//   - [layoutsvc/local]: In-process placement of units
//   - [layoutsvc/remote]: HTTP client for a remote layout service
//   - [layoutsvc]: Cached decorator and the HTTP wire types
//
// ## Infrastructure
//
//   - [cache]: Null, file and Redis caches with key derivation
//   - [io]: JSON and YAML documents
//   - [config]: TOML configuration with environment overrides
//   - [errors]: Coded errors and input validation
//   - [observability]: Codec, cache and HTTP hooks
//   - [buildinfo]: Version information
//
// [core]: https://pkg.go.dev/github.com/ortfo/gui/pkg/core
// [core/grid]: https://pkg.go.dev/github.com/ortfo/gui/pkg/core/grid
// [core/layout]: https://pkg.go.dev/github.com/ortfo/gui/pkg/core/layout
// [core/content]: https://pkg.go.dev/github.com/ortfo/gui/pkg/core/content
// [core/blocks]: https://pkg.go.dev/github.com/ortfo/gui/pkg/core/blocks
// [layoutsvc]: https://pkg.go.dev/github.com/ortfo/gui/pkg/layoutsvc
// [layoutsvc/local]: https://pkg.go.dev/github.com/ortfo/gui/pkg/layoutsvc/local
// [layoutsvc/remote]: https://pkg.go.dev/github.com/ortfo/gui/pkg/layoutsvc/remote
// [cache]: https://pkg.go.dev/github.com/ortfo/gui/pkg/cache
// [io]: https://pkg.go.dev/github.com/ortfo/gui/pkg/io
// [config]: https://pkg.go.dev/github.com/ortfo/gui/pkg/config
// [errors]: https://pkg.go.dev/github.com/ortfo/gui/pkg/errors
// [observability]: https://pkg.go.dev/github.com/ortfo/gui/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/ortfo/gui/pkg/buildinfo
package pkg
