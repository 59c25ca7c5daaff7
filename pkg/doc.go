// Package pkg provides the core libraries for sketch3d scene rendering.
//
// # Overview
//
// sketch3d composes 3D scenes of polygons, lines, and marks into
// occlusion-correct 2D vector drawings emitted as TikZ source. The pkg
// directory is organized into these areas:
//
//  1. [geom] - Vectors, planes, segments, and rigid transforms
//  2. [scene] - Scene assembly, style interning, and view solving
//  3. [render] - Partitioning, projection, and hidden-line merging
//  4. [tikz] - TikZ source emission
//  5. [sceneio] - TOML scene descriptions
//  6. [server], [store], [cache] - The HTTP facade and its backends
//
// # Architecture
//
// The typical data flow through sketch3d:
//
//	TOML scene description
//	         ↓
//	    [scene] package (objects, styles, view)
//	         ↓
//	    [render] package (partition → project → merge)
//	         ↓
//	    [tikz] package (draw command emission)
//	         ↓
//	    TikZ source output
//
// Supporting packages [errors], [observability], and [buildinfo] carry
// the ambient concerns shared by the CLI and the server.
package pkg
