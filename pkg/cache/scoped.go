package cache

// ScopedKeyer wraps a Keyer with a prefix, giving separate cache
// namespaces when one backend is shared, for example one Redis instance
// serving several sketch3d deployments.
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

// RenderKey generates a prefixed key for a rendered export.
func (k *ScopedKeyer) RenderKey(sceneHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(sceneHash, opts)
}

// SceneKey generates a prefixed key for a stored scene document.
func (k *ScopedKeyer) SceneKey(name string) string {
	return k.prefix + k.inner.SceneKey(name)
}
