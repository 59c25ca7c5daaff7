// Package store provides named-scene storage for the HTTP facade.
//
// A stored scene is the raw TOML source plus timestamps, keyed by a
// validated name. Two backends are provided:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for production deployments
//
// Scene names are validated with errors.ValidateSceneName before they
// reach a backend; the backends assume safe names.
package store

import (
	"context"
	"time"
)

// Scene is one stored scene document.
type Scene struct {
	Name      string    `bson:"_id" json:"name"`
	Source    string    `bson:"source" json:"source"` // TOML scene description
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Store is the interface for scene storage backends.
type Store interface {
	// Get retrieves a scene by name. Returns a SCENE_NOT_FOUND
	// structured error when the name is unknown.
	Get(ctx context.Context, name string) (*Scene, error)

	// Put stores a scene, overwriting any previous document with the
	// same name. CreatedAt is preserved on overwrite.
	Put(ctx context.Context, sc *Scene) error

	// Delete removes a scene. Deleting an unknown name returns
	// SCENE_NOT_FOUND.
	Delete(ctx context.Context, name string) error

	// List returns the stored scene names in lexical order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}
