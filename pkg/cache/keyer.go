package cache

import "strings"

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey is the key of the positions computed for a description.
	LayoutKey(descriptionHash string, opts LayoutKeyOpts) string
}

// LayoutKeyOpts holds everything besides the description that changes the
// outcome of a layout computation.
type LayoutKeyOpts struct {
	// Service names the layout service ("local", or the base URL of a
	// remote one).
	Service string `json:"service"`
}

// DefaultKeyer is the standard keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey returns "layout:" followed by a hash of its inputs.
func (DefaultKeyer) LayoutKey(descriptionHash string, opts LayoutKeyOpts) string {
	opts.Service = strings.TrimRight(opts.Service, "/")
	return hashKey("layout", descriptionHash, opts)
}

var _ Keyer = DefaultKeyer{}
