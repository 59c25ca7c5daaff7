// Package cache provides caching for rendered exports and stored scenes.
//
// Rendering a scene is deterministic: the same scene source, export
// options, and epsilon always produce the same TikZ output. That makes
// render results ideal cache entries keyed by a content hash of the
// inputs. Two backends are provided: a file cache for CLI usage and a
// Redis cache for the HTTP facade, plus a null cache for disabling
// caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with an optional TTL. A zero TTL means the
	// entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// RenderKeyOpts are the export options that affect render output and
// therefore participate in the cache key.
type RenderKeyOpts struct {
	Width      float32 `json:"width"`
	Height     float32 `json:"height"`
	Epsilon    float32 `json:"epsilon"`
	Scale      float32 `json:"scale,omitempty"`
	Standalone bool    `json:"standalone"`
}

// Keyer generates cache keys for the two cached artifact kinds.
type Keyer interface {
	// RenderKey generates a key for a rendered export, from the scene
	// source hash and the options that shape the output.
	RenderKey(sceneHash string, opts RenderKeyOpts) string

	// SceneKey generates a key for a stored scene document.
	SceneKey(name string) string
}

// DefaultKeyer hashes all key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(sceneHash string, opts RenderKeyOpts) string {
	return hashKey("render", sceneHash, opts)
}

// SceneKey implements Keyer.
func (DefaultKeyer) SceneKey(name string) string {
	return hashKey("scene", name)
}
