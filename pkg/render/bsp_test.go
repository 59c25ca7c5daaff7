package render

import (
	"testing"

	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/geom"
)

// identityView projects camera-space geometry directly (focal length 1).
func identityView() View {
	return View{Focal: 1, Transform: geom.Identity()}
}

// poly builds a projected polygon primitive from camera-space points.
func poly(t *testing.T, pts ...math32.Vector3) *Polygon {
	t.Helper()
	p3, ok := geom.NewPolygon3(pts)
	if !ok {
		t.Fatalf("degenerate test polygon %v", pts)
	}
	p := &Polygon{Poly: p3, FrontStyle: "S0"}
	p.project(identityView())
	return p
}

// squareAt returns a unit square in the z=depth plane, wound
// counterclockwise in xy (normal +z).
func squareAt(depth float32) []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(-1, -1, depth),
		math32.Vec3(1, -1, depth),
		math32.Vec3(1, 1, depth),
		math32.Vec3(-1, 1, depth),
	}
}

func TestSinglePolygonSingleNode(t *testing.T) {
	p := poly(t, squareAt(5)...)
	tree := BuildTree([]*Polygon{p}, identityView(), geom.DefaultEps)

	if got := tree.NodeCount(); got != 1 {
		t.Fatalf("NodeCount = %d, want 1", got)
	}
	ord := NewOrder(1)
	tree.AppendOrder(ord)
	if ord.Len() != 1 {
		t.Fatalf("order length = %d, want 1", ord.Len())
	}
	if ord.At(0) != p {
		t.Fatal("order does not contain the input polygon")
	}
}

func TestSeparatedPolygonsNeverSplit(t *testing.T) {
	near := poly(t, squareAt(4)...)
	far := poly(t, squareAt(6)...)

	tree := BuildTree([]*Polygon{near, far}, identityView(), geom.DefaultEps)
	if got := tree.SplitCount(); got != 0 {
		t.Fatalf("SplitCount = %d, want 0", got)
	}
	if got := tree.PolygonCount(); got != 2 {
		t.Fatalf("PolygonCount = %d, want 2 (no fragments)", got)
	}

	ord := NewOrder(2)
	tree.AppendOrder(ord)
	if ord.At(0) != far || ord.At(1) != near {
		t.Fatal("farther polygon must be drawn before the nearer one")
	}
}

func TestCubeBackFacesBeforeFrontFaces(t *testing.T) {
	// Axis-aligned cube seen from outside along a diagonal-ish position:
	// camera at the origin, cube spanning [2,4]x[2,4]x[4,6]. Exactly
	// three faces point toward the camera.
	lo := math32.Vec3(2, 2, 4)
	hi := math32.Vec3(4, 4, 6)
	faces := [][]math32.Vector3{
		// -z face, outward normal (0,0,-1)
		{math32.Vec3(lo.X, lo.Y, lo.Z), math32.Vec3(lo.X, hi.Y, lo.Z), math32.Vec3(hi.X, hi.Y, lo.Z), math32.Vec3(hi.X, lo.Y, lo.Z)},
		// +z face, outward normal (0,0,1)
		{math32.Vec3(lo.X, lo.Y, hi.Z), math32.Vec3(hi.X, lo.Y, hi.Z), math32.Vec3(hi.X, hi.Y, hi.Z), math32.Vec3(lo.X, hi.Y, hi.Z)},
		// -x face, outward normal (-1,0,0)
		{math32.Vec3(lo.X, lo.Y, lo.Z), math32.Vec3(lo.X, lo.Y, hi.Z), math32.Vec3(lo.X, hi.Y, hi.Z), math32.Vec3(lo.X, hi.Y, lo.Z)},
		// +x face, outward normal (1,0,0)
		{math32.Vec3(hi.X, lo.Y, lo.Z), math32.Vec3(hi.X, hi.Y, lo.Z), math32.Vec3(hi.X, hi.Y, hi.Z), math32.Vec3(hi.X, lo.Y, hi.Z)},
		// -y face, outward normal (0,-1,0)
		{math32.Vec3(lo.X, lo.Y, lo.Z), math32.Vec3(hi.X, lo.Y, lo.Z), math32.Vec3(hi.X, lo.Y, hi.Z), math32.Vec3(lo.X, lo.Y, hi.Z)},
		// +y face, outward normal (0,1,0)
		{math32.Vec3(lo.X, hi.Y, lo.Z), math32.Vec3(lo.X, hi.Y, hi.Z), math32.Vec3(hi.X, hi.Y, hi.Z), math32.Vec3(hi.X, hi.Y, lo.Z)},
	}

	polys := make([]*Polygon, 0, 6)
	for _, f := range faces {
		polys = append(polys, poly(t, f...))
	}

	front := 0
	for _, p := range polys {
		if p.Front {
			front++
		}
	}
	if front != 3 {
		t.Fatalf("front-visible faces = %d, want 3", front)
	}

	tree := BuildTree(polys, identityView(), geom.DefaultEps)
	if got := tree.SplitCount(); got != 0 {
		t.Fatalf("SplitCount = %d, want 0 for a convex solid", got)
	}

	ord := NewOrder(6)
	tree.AppendOrder(ord)
	if ord.Len() != 6 {
		t.Fatalf("order length = %d, want 6", ord.Len())
	}
	for i := 0; i < 3; i++ {
		if ord.At(i).(*Polygon).Front {
			t.Fatalf("position %d: hidden faces must be drawn first", i)
		}
	}
	for i := 3; i < 6; i++ {
		if !ord.At(i).(*Polygon).Front {
			t.Fatalf("position %d: visible faces must be drawn last", i)
		}
	}
}

func TestCoplanarPolygonsShareNode(t *testing.T) {
	// Two disjoint squares in the same z=5 plane, the second shifted
	// slightly off the plane but within tolerance.
	a := poly(t, squareAt(5)...)
	b := poly(t,
		math32.Vec3(2, -1, 5.00005), math32.Vec3(4, -1, 5.00005),
		math32.Vec3(4, 1, 5.00005), math32.Vec3(2, 1, 5.00005),
	)

	tree := BuildTree([]*Polygon{a, b}, identityView(), geom.DefaultEps)

	if got := tree.NodeCount(); got != 1 {
		t.Fatalf("NodeCount = %d, want 1", got)
	}
	if got := tree.SplitCount(); got != 0 {
		t.Fatalf("SplitCount = %d, want 0", got)
	}
	if got := tree.PolygonCount(); got != 2 {
		t.Fatalf("PolygonCount = %d, want 2", got)
	}

	ord := NewOrder(2)
	tree.AppendOrder(ord)
	if ord.Len() != 2 {
		t.Fatalf("order length = %d, want 2", ord.Len())
	}
	// Within a node, insertion order is preserved: later additions draw
	// later.
	if ord.At(0) != a || ord.At(1) != b {
		t.Fatal("coplanar polygons must keep their insertion order")
	}
}

func TestCrossingPolygonsSplit(t *testing.T) {
	// Two rectangles crossing each other: at least one must be cut, and
	// the fragment areas must reproduce the original.
	a := poly(t,
		math32.Vec3(-1, -1, 5), math32.Vec3(1, -1, 5),
		math32.Vec3(1, 1, 5), math32.Vec3(-1, 1, 5),
	)
	b := poly(t,
		math32.Vec3(-1, 0, 4), math32.Vec3(1, 0, 4),
		math32.Vec3(1, 0, 6), math32.Vec3(-1, 0, 6),
	)
	origArea := b.Poly.Area()

	tree := BuildTree([]*Polygon{a, b}, identityView(), geom.DefaultEps)
	if tree.SplitCount() != 1 {
		t.Fatalf("SplitCount = %d, want 1", tree.SplitCount())
	}

	ord := NewOrder(4)
	tree.AppendOrder(ord)
	if ord.Len() != 3 {
		t.Fatalf("order length = %d, want 3 (one polygon plus two fragments)", ord.Len())
	}

	var fragArea float32
	for _, item := range ord.Items() {
		p := item.(*Polygon)
		if p == a {
			continue
		}
		fragArea += p.Poly.Area()
	}
	if diff := math32.Abs(fragArea - origArea); diff > 1e-3 {
		t.Fatalf("fragment area %v differs from original %v", fragArea, origArea)
	}
}

func TestProjectionArithmetic(t *testing.T) {
	v := identityView()
	tests := []struct {
		x, y float32
	}{
		{1, 0}, {0, 1}, {2.5, -3}, {-4, 4},
	}
	for _, tc := range tests {
		got := v.ProjectPoint(math32.Vec3(tc.x, tc.y, 5))
		want := math32.Vec2(-tc.x/5, -tc.y/5)
		if got != want {
			t.Errorf("project(%g,%g,5) = %v, want %v", tc.x, tc.y, got, want)
		}
	}
}
