package render

import (
	"sort"

	"cogentcore.org/core/math32"
)

// relation is the outcome of a pairwise depth test between a primitive
// being inserted and one already placed in the order.
type relation uint8

const (
	// relDisjoint means the pair cannot occlude each other; placement is
	// unconstrained.
	relDisjoint relation = iota
	// relAbove means the new primitive occludes the placed one and must
	// be drawn after it.
	relAbove
	// relUnder means the new primitive is occluded and must be drawn
	// before the placed one.
	relUnder
	// relSplit means no single answer exists; the new primitive was cut
	// into fragments that replace it.
	relSplit
)

// markScreenRadius is the base screen-space radius of a unit-scale mark,
// in projected units. Used for the mark-vs-line proximity test.
const markScreenRadius = 0.01

// MergeLines inserts the line primitives one at a time into the already
// polygon-ordered sequence. Each insertion scans outward from the entry
// nearest in depth, running pairwise depth tests; an occluding entry stops
// the scan while an occluded one continues outward, since the line may
// still be hidden by something farther away.
func MergeLines(ord *Order, lines []*Line, view View, eps float32) {
	for _, l := range lines {
		insert(ord, l, view, eps)
	}
}

// MergeMarks inserts the mark primitives into the ordered sequence. Marks
// are first sorted by distance from the camera so that between two marks
// the nearer one is always placed later (foreground); each is then
// inserted with the same outward scan used for lines, testing against the
// polygons and lines already placed.
func MergeMarks(ord *Order, marks []*Mark, view View, eps float32) {
	sorted := make([]*Mark, len(marks))
	copy(sorted, marks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Depth() > sorted[j].Depth()
	})
	for _, m := range sorted {
		insert(ord, m, view, eps)
	}
}

// insert splices p into ord. The scan starts at the placed entry whose
// depth is nearest to p's and walks outward in both directions. Walking
// back (toward the far end), an entry p occludes stops the scan; an entry
// occluding p pushes the insertion point before it and the scan continues
// outward. Walking forward (toward the near end) the roles mirror. When a
// test splits p, the fragments are inserted independently and the
// original is discarded, never re-merged.
func insert(ord *Order, p Primitive, view View, eps float32) {
	if ord.Len() == 0 {
		ord.Append(p)
		return
	}

	pos := nearestDepth(ord, p.Depth())
	// Unconstrained placement falls back to depth order around the
	// nearest entry.
	idx := pos
	if ord.At(pos).Depth() > p.Depth() {
		idx = pos + 1
	}

	for i := idx - 1; i >= 0; i-- {
		rel, frags := depthTest(p, ord.At(i), view, eps)
		if rel == relSplit {
			for _, f := range frags {
				insert(ord, f, view, eps)
			}
			return
		}
		if rel == relUnder {
			// Occluded by a farther entry: move before it, keep looking
			// farther out.
			idx = i
			continue
		}
		if rel == relAbove {
			break
		}
	}

	after := -1
	for i := idx; i < ord.Len(); i++ {
		rel, frags := depthTest(p, ord.At(i), view, eps)
		if rel == relSplit {
			for _, f := range frags {
				insert(ord, f, view, eps)
			}
			return
		}
		if rel == relAbove {
			// Occludes a nearer entry: must come after it, keep looking.
			after = i
			continue
		}
		if rel == relUnder {
			break
		}
	}

	if after >= 0 && after+1 > idx {
		// Conflicting constraints only arise from cyclic overlap, where
		// the pairwise heuristic has no consistent answer; drawing later
		// wins.
		idx = after + 1
	}
	ord.InsertAt(idx, p)
}

// nearestDepth returns the index of the placed entry whose depth is
// closest to d.
func nearestDepth(ord *Order, d float32) int {
	best := 0
	bestDiff := math32.Abs(ord.At(0).Depth() - d)
	for i := 1; i < ord.Len(); i++ {
		diff := math32.Abs(ord.At(i).Depth() - d)
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

// depthTest dispatches the pairwise test for the closed set of primitive
// kind combinations. p is the primitive being inserted, q the placed one.
func depthTest(p, q Primitive, view View, eps float32) (relation, []Primitive) {
	switch a := p.(type) {
	case *Line:
		switch b := q.(type) {
		case *Polygon:
			return lineVsPolygon(a, b, view, eps)
		case *Line:
			return lineVsLine(a, b, eps), nil
		case *Mark:
			// Marks are inserted after lines; a line never tests against
			// a placed mark in practice, and a mark cannot hide a line.
			return relDisjoint, nil
		}
	case *Mark:
		switch b := q.(type) {
		case *Polygon:
			return markVsPolygon(a, b, eps), nil
		case *Line:
			return markVsLine(a, b, view), nil
		case *Mark:
			// Relative order between marks is fixed by the pre-sort.
			return relDisjoint, nil
		}
	}
	return relDisjoint, nil
}

// sideRelation converts a signed plane distance into an ordering relative
// to the camera at the origin: on the camera's side of the plane means
// nearer, so drawn later.
func sideRelation(side, cameraSide float32, eps float32) relation {
	if math32.Abs(side) <= eps {
		return relDisjoint
	}
	if (side > 0) == (cameraSide > 0) {
		return relAbove
	}
	return relUnder
}

// lineVsPolygon orders a line against a polygon's plane. A line
// near-parallel to the plane is classified whole by its midpoint; one that
// crosses strictly inside the segment is cut at the crossing and each
// sub-segment classified independently.
func lineVsPolygon(l *Line, p *Polygon, view View, eps float32) (relation, []Primitive) {
	pl := p.Poly.Plane()
	cameraSide := -pl.Dist // side of the origin

	denom := pl.Normal.Dot(l.Seg.Delta())
	if math32.Abs(denom) < eps {
		return sideRelation(pl.Side(l.Seg.Midpoint()), cameraSide, eps), nil
	}

	t := (pl.Dist - pl.Normal.Dot(l.Seg.Begin)) / denom
	if t <= eps || t >= 1-eps {
		return sideRelation(pl.Side(l.Seg.Midpoint()), cameraSide, eps), nil
	}

	return relSplit, []Primitive{
		l.subLine(0, t, view),
		l.subLine(t, 1, view),
	}
}

// lineVsLine orders two lines by their screen-space crossing, if any. The
// depth on each side is reconstructed from that line's own 3D
// parametrization at the crossing point. This pairwise tie-break is not
// globally consistent when three segments overlap at one screen point.
func lineVsLine(a, b *Line, eps float32) relation {
	t, u, ok := a.Proj.Intersect(b.Proj)
	if !ok {
		return relDisjoint
	}
	if t <= eps || t >= 1-eps || u <= eps || u >= 1-eps {
		return relDisjoint
	}
	da := a.Seg.At(t).Length()
	db := b.Seg.At(u).Length()
	if da < db {
		return relAbove
	}
	return relUnder
}

// markVsPolygon applies the same signed-plane-distance test used for
// lines to the mark's position.
func markVsPolygon(m *Mark, p *Polygon, eps float32) relation {
	pl := p.Poly.Plane()
	return sideRelation(pl.Side(m.Pos), -pl.Dist, eps)
}

// markVsLine hides a mark behind a line only when the mark's projection
// falls within the mark's equivalent screen radius of the line and a
// similar-triangles depth reconstruction places the line nearer.
func markVsLine(m *Mark, l *Line, view View) relation {
	t := l.Proj.ClosestParam(m.Proj)
	if t < 0 || t > 1 {
		return relDisjoint
	}
	radius := markScreenRadius * m.Scale
	if l.Proj.At(t).Sub(m.Proj).Length() > radius {
		return relDisjoint
	}
	if l.Seg.At(t).Length() < m.Depth() {
		return relUnder
	}
	return relAbove
}
