package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful when several workspaces share one Redis instance and need
// separate cache namespaces.
//
// Example usage:
//
//	// Workspace-specific keys
//	wsKeyer := NewScopedKeyer(NewDefaultKeyer(), "ws:abc123:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(axesHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(axesHash, opts)
}
