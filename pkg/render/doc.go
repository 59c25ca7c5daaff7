// Package render turns a flat set of projected primitives into a single
// occlusion-correct draw order without a per-pixel depth buffer.
//
// # Pipeline
//
// The caller (normally pkg/scene) runs one export cycle:
//
//  1. Project every primitive into camera space with a [View].
//  2. Sort the polygons with a binary space partition ([BuildTree]) over
//     their planes and materialize the back-to-front [Order].
//  3. Insert line segments ([MergeLines]) and point marks ([MergeMarks])
//     into the already-ordered sequence with pairwise depth tests,
//     splitting primitives where a single before/after answer does not
//     exist.
//
// Primitives are derived fresh for each export and discarded after
// emission; nothing in this package persists across exports. Once a
// primitive is split, its fragments replace it and are never re-merged.
//
// # Depth model
//
// After projection the camera sits at the origin, so depth is the distance
// of a primitive's reference point from the origin. Only relative depth
// ever drives ordering; the raw projected position of a point behind the
// camera is flipped and meaningless, which is acceptable here.
//
// The pairwise line-vs-line tie-break reconstructs depth from each
// segment's own parametrization at the 2D crossing point. Three segments
// meeting at one screen point can still be ordered inconsistently; that is
// a known limitation of the pairwise approach, left visible rather than
// patched.
package render
