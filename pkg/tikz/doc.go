// Package tikz emits the final draw-command sequence as TikZ/PGF source.
//
// The emitter walks an already ordered primitive sequence exactly once and
// writes one draw command per primitive at a single global export scale:
// marks as parameterized plot-mark invocations, lines as strokes between
// two scaled points, polygons as filled contours using the front or back
// style according to the cached visibility flag.
//
// Interned style, color, and mark-template tables are emitted as a
// preamble before the picture, so later draw commands only carry the
// short identifiers.
package tikz
