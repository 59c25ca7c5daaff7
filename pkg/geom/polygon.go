package geom

import (
	"cogentcore.org/core/math32"
)

// Polygon3 is an ordered vertex loop (at least three points) lying in one
// plane. The plane is cached and recomputed whenever the vertices are
// replaced, so it is always consistent with the current points.
type Polygon3 struct {
	pts   []math32.Vector3
	plane Plane
}

// NewPolygon3 builds a polygon from an ordered vertex loop. Reports false
// for degenerate input (fewer than three points, or points that do not
// span a plane); per the best-effort visualization policy such input is
// dropped by callers, not raised as an error.
func NewPolygon3(pts []math32.Vector3) (Polygon3, bool) {
	pl, ok := PlaneFromPoints(pts)
	if !ok {
		return Polygon3{}, false
	}
	return Polygon3{pts: pts, plane: pl}, true
}

// Points returns the vertex loop. The slice must not be mutated; use
// SetPoints to replace the geometry so the cached plane stays consistent.
func (p *Polygon3) Points() []math32.Vector3 {
	return p.pts
}

// SetPoints replaces the vertex loop and recomputes the cached plane.
// Reports false and leaves the polygon unchanged for degenerate input.
func (p *Polygon3) SetPoints(pts []math32.Vector3) bool {
	pl, ok := PlaneFromPoints(pts)
	if !ok {
		return false
	}
	p.pts = pts
	p.plane = pl
	return true
}

// Plane returns the cached plane of the polygon.
func (p *Polygon3) Plane() Plane {
	return p.plane
}

// Centroid returns the vertex average.
func (p *Polygon3) Centroid() math32.Vector3 {
	var c math32.Vector3
	for _, pt := range p.pts {
		c = c.Add(pt)
	}
	return c.DivScalar(float32(len(p.pts)))
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (p *Polygon3) Bounds() math32.Box3 {
	b := math32.B3Empty()
	b.ExpandByPoints(p.pts)
	return b
}

// Area returns the planar area of the polygon. The vector area
// 0.5*Sum(p_i cross p_i+1) of a closed loop is independent of the origin,
// so no projection into the plane is needed.
func (p *Polygon3) Area() float32 {
	var sum math32.Vector3
	for i, a := range p.pts {
		b := p.pts[(i+1)%len(p.pts)]
		sum = sum.Add(a.Cross(b))
	}
	return 0.5 * sum.Length()
}

// Edges returns the boundary segments of the polygon in vertex order.
func (p *Polygon3) Edges() []Segment3 {
	out := make([]Segment3, 0, len(p.pts))
	for i, a := range p.pts {
		out = append(out, Seg3(a, p.pts[(i+1)%len(p.pts)]))
	}
	return out
}

// Sideness classifies a polygon relative to a plane.
type Sideness int

const (
	// SideCoplanar means every vertex lies within epsilon of the plane.
	SideCoplanar Sideness = iota
	// SideAbove means the polygon lies entirely on the normal side.
	SideAbove
	// SideUnder means the polygon lies entirely on the anti-normal side.
	SideUnder
	// SideSpanning means vertices lie strictly on both sides.
	SideSpanning
)

// ClassifyPlane determines which side of pl the polygon lies on. Vertices
// within eps of the plane count for neither side.
func (p *Polygon3) ClassifyPlane(pl Plane, eps float32) Sideness {
	var above, under bool
	for _, pt := range p.pts {
		s := pl.Side(pt)
		switch {
		case s > eps:
			above = true
		case s < -eps:
			under = true
		}
	}
	switch {
	case above && under:
		return SideSpanning
	case above:
		return SideAbove
	case under:
		return SideUnder
	default:
		return SideCoplanar
	}
}

// SplitByPlane cuts the polygon along pl. The boundary is walked once; a
// break point is inserted wherever an edge crosses the plane, and each
// maximal boundary run between break points becomes a fragment on its side
// of the plane. Runs with fewer than three points (numeric slivers) are
// dropped. Vertices within eps of the plane belong to both runs.
func (p *Polygon3) SplitByPlane(pl Plane, eps float32) (above, under []Polygon3) {
	var abovePts, underPts []math32.Vector3
	n := len(p.pts)
	for i := 0; i < n; i++ {
		a := p.pts[i]
		b := p.pts[(i+1)%n]
		sa := pl.Side(a)
		sb := pl.Side(b)

		switch {
		case sa > eps:
			abovePts = append(abovePts, a)
		case sa < -eps:
			underPts = append(underPts, a)
		default:
			abovePts = append(abovePts, a)
			underPts = append(underPts, a)
		}

		// Edge crosses strictly: insert the break point into both runs.
		if (sa > eps && sb < -eps) || (sa < -eps && sb > eps) {
			t := sa / (sa - sb)
			brk := a.Add(b.Sub(a).MulScalar(t))
			abovePts = append(abovePts, brk)
			underPts = append(underPts, brk)
		}
	}

	if frag, ok := NewPolygon3(abovePts); ok {
		above = append(above, frag)
	}
	if frag, ok := NewPolygon3(underPts); ok {
		under = append(under, frag)
	}
	return above, under
}

// Polygon2 is the projected footprint of a polygon: an ordered 2D vertex
// loop.
type Polygon2 struct {
	Points []math32.Vector2
}
