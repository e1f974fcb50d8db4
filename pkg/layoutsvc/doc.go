// Package layoutsvc provides implementations of [blocks.LayoutService], the
// component that places the units of a description on the grid.
//
// Two services are available:
//
//   - [local.Service] lays descriptions out in process.
//   - [remote.Client] delegates to an HTTP layout service such as the one
//     started by "ortfo-layout serve".
//
// Either can be wrapped in [Cached], which stores computed positions in a
// [cache.Cache] keyed by a hash of the description.
//
// The wire types shared between the HTTP client and server live here too:
// requests carry a [content.Description] as JSON, successful responses a
// [content.Translated] list of [content.Positioned] units, failures an
// [ErrorResponse].
package layoutsvc
