package render

import (
	"testing"

	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/geom"
)

// line builds a projected line primitive from camera-space endpoints.
func line(begin, end math32.Vector3) *Line {
	l := &Line{Seg: geom.Seg3(begin, end)}
	l.project(identityView())
	return l
}

// mark builds a projected mark primitive from a camera-space position.
func mark(pos math32.Vector3) *Mark {
	m := &Mark{Pos: pos, Scale: 1}
	m.project(identityView())
	return m
}

func TestLineSplitsAgainstCrossedPolygon(t *testing.T) {
	// Square in the x=0 plane; the line passes through its interior.
	p := poly(t,
		math32.Vec3(0, -1, 4), math32.Vec3(0, 1, 4),
		math32.Vec3(0, 1, 6), math32.Vec3(0, -1, 6),
	)
	l := line(math32.Vec3(-1, 0, 5), math32.Vec3(1, 0.2, 5.2))
	origLen := l.Seg.Length()

	ord := NewOrder(4)
	ord.Append(p)
	MergeLines(ord, []*Line{l}, identityView(), geom.DefaultEps)

	var lines []*Line
	for _, item := range ord.Items() {
		if frag, ok := item.(*Line); ok {
			lines = append(lines, frag)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("line fragments = %d, want exactly 2", len(lines))
	}
	sum := lines[0].Seg.Length() + lines[1].Seg.Length()
	if diff := math32.Abs(sum - origLen); diff > 1e-4 {
		t.Fatalf("fragment lengths sum to %v, original %v", sum, origLen)
	}
	// The original is replaced, never kept alongside its fragments.
	for _, frag := range lines {
		if frag == l {
			t.Fatal("original line still present after splitting")
		}
	}
}

func TestLineBehindPolygonDrawnFirst(t *testing.T) {
	p := poly(t, squareAt(4)...)
	l := line(math32.Vec3(-0.5, 0, 6), math32.Vec3(0.5, 0, 6))

	ord := NewOrder(2)
	ord.Append(p)
	MergeLines(ord, []*Line{l}, identityView(), geom.DefaultEps)

	if ord.Len() != 2 {
		t.Fatalf("order length = %d, want 2", ord.Len())
	}
	if ord.At(0) != l || ord.At(1) != p {
		t.Fatal("final order must place the polygon after the hidden line")
	}
}

func TestLineInFrontOfPolygonDrawnLast(t *testing.T) {
	p := poly(t, squareAt(6)...)
	l := line(math32.Vec3(-0.5, 0, 4), math32.Vec3(0.5, 0, 4))

	ord := NewOrder(2)
	ord.Append(p)
	MergeLines(ord, []*Line{l}, identityView(), geom.DefaultEps)

	if ord.At(0) != p || ord.At(1) != l {
		t.Fatal("final order must place the line after the polygon it covers")
	}
}

func TestNearerMarkDrawnLater(t *testing.T) {
	a := mark(math32.Vec3(0, 0, 1)) // distance 1
	b := mark(math32.Vec3(0, 0, 5)) // distance 5

	ord := NewOrder(2)
	MergeMarks(ord, []*Mark{a, b}, identityView(), geom.DefaultEps)

	if ord.Len() != 2 {
		t.Fatalf("order length = %d, want 2", ord.Len())
	}
	if ord.At(0) != b || ord.At(1) != a {
		t.Fatal("nearer mark must be drawn after the farther one")
	}
}

func TestMarkBehindPolygonDrawnFirst(t *testing.T) {
	p := poly(t, squareAt(4)...)
	m := mark(math32.Vec3(0.2, 0.1, 6))

	ord := NewOrder(2)
	ord.Append(p)
	MergeMarks(ord, []*Mark{m}, identityView(), geom.DefaultEps)

	if ord.At(0) != m || ord.At(1) != p {
		t.Fatal("mark behind the polygon must be drawn before it")
	}
}

func TestMarkBehindCrossingLineDrawnFirst(t *testing.T) {
	// The mark projects onto the line's screen segment within the mark's
	// screen radius; the line is nearer at that point.
	l := line(math32.Vec3(-1, 0, 4), math32.Vec3(1, 0, 4))
	m := mark(math32.Vec3(0, 0, 6))

	ord := NewOrder(2)
	MergeLines(ord, []*Line{l}, identityView(), geom.DefaultEps)
	MergeMarks(ord, []*Mark{m}, identityView(), geom.DefaultEps)

	if ord.Len() != 2 {
		t.Fatalf("order length = %d, want 2", ord.Len())
	}
	if ord.At(0) != m || ord.At(1) != l {
		t.Fatal("mark behind a nearer crossing line must be drawn before it")
	}
}

func TestMarkInFrontOfCrossingLineDrawnLast(t *testing.T) {
	l := line(math32.Vec3(-1, 0, 4), math32.Vec3(1, 0, 4))
	m := mark(math32.Vec3(0, 0, 3))

	ord := NewOrder(2)
	MergeLines(ord, []*Line{l}, identityView(), geom.DefaultEps)
	MergeMarks(ord, []*Mark{m}, identityView(), geom.DefaultEps)

	if ord.At(0) != l || ord.At(1) != m {
		t.Fatal("mark in front of the line must be drawn after it")
	}
}

func TestMarkOffTheLineKeepsDepthOrder(t *testing.T) {
	// Same depths as the occlusion case, but the mark projects well
	// outside the line's screen radius, so only depth order applies.
	l := line(math32.Vec3(-1, 0, 4), math32.Vec3(1, 0, 4))
	m := mark(math32.Vec3(0.5, 0.5, 6))

	ord := NewOrder(2)
	MergeLines(ord, []*Line{l}, identityView(), geom.DefaultEps)
	MergeMarks(ord, []*Mark{m}, identityView(), geom.DefaultEps)

	if ord.At(0) != m || ord.At(1) != l {
		t.Fatal("disjoint mark must fall back to depth order")
	}
}

func TestCrossingLinesOrderedByDepthAtCrossing(t *testing.T) {
	// Both project onto crossing screen segments; nearAt is nearer at
	// the crossing point.
	farAt := line(math32.Vec3(-1, -1, 6), math32.Vec3(1, 1, 6))
	nearAt := line(math32.Vec3(-1, 1, 4), math32.Vec3(1, -1, 4))

	ord := NewOrder(2)
	MergeLines(ord, []*Line{nearAt, farAt}, identityView(), geom.DefaultEps)

	if ord.At(0) != farAt || ord.At(1) != nearAt {
		t.Fatal("line nearer at the screen crossing must be drawn later")
	}
}

func TestInsertionNeverReordersPlacedPrimitives(t *testing.T) {
	far := poly(t, squareAt(6)...)
	near := poly(t, squareAt(4)...)

	ord := NewOrder(4)
	ord.Append(far)
	ord.Append(near)

	MergeLines(ord, []*Line{line(math32.Vec3(-2, 0, 5), math32.Vec3(-1.5, 0, 5))}, identityView(), geom.DefaultEps)

	farIdx, nearIdx := -1, -1
	for i, item := range ord.Items() {
		switch item {
		case Primitive(far):
			farIdx = i
		case Primitive(near):
			nearIdx = i
		}
	}
	if farIdx == -1 || nearIdx == -1 || farIdx > nearIdx {
		t.Fatal("inserting a line must not reorder already-placed polygons")
	}
}
