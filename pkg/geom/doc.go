// Package geom provides the planar geometry used by the scene exporter:
// oriented planes, 3D/2D line segments, planar polygons, and rigid
// transforms, built on the float32 vector types from
// cogentcore.org/core/math32.
//
// # Conventions
//
// Planes are stored in Hessian normal form: a unit normal N and a signed
// offset D such that a point p lies on the plane when Dot(N, p) == D.
// Side returns Dot(N, p) - D, so positive values are on the normal side.
//
// Polygons cache their plane. The plane is recomputed whenever the vertex
// slice is replaced through SetPoints, so the cached plane is always
// consistent with the current vertices.
//
// # Tolerances
//
// All classification operations take an explicit epsilon. A single epsilon
// controls both "close enough to be coplanar, do not split" and "clearly
// crossing, must split"; callers that need different behavior pass a
// different value. DefaultEps is tuned for scenes with coordinates around
// unit scale.
package geom
