package geom

import (
	"cogentcore.org/core/math32"
)

// DefaultEps is the default tolerance for plane-side classification.
// Coordinates are assumed to be roughly unit scale; float32 precision
// leaves about six significant digits, so anything much tighter than this
// turns numeric noise into spurious polygon fragments.
const DefaultEps = 1e-4

// Plane is an oriented plane in Hessian normal form. A point p lies on the
// plane when Dot(Normal, p) == Dist. The normal is kept at unit length.
type Plane struct {
	Normal math32.Vector3
	Dist   float32
}

// PlaneFromPoints derives the plane spanned by an ordered vertex loop using
// the Newell method, which tolerates slightly non-planar and collinear
// input better than a single cross product. Reports false when the points
// do not span a plane (fewer than three points or a degenerate loop).
func PlaneFromPoints(pts []math32.Vector3) (Plane, bool) {
	if len(pts) < 3 {
		return Plane{}, false
	}
	var n math32.Vector3
	var c math32.Vector3
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
		c = c.Add(a)
	}
	if n.Length() == 0 {
		return Plane{}, false
	}
	n = n.Normal()
	c = c.DivScalar(float32(len(pts)))
	return Plane{Normal: n, Dist: n.Dot(c)}, true
}

// Side returns the signed distance of p from the plane. Positive values
// are on the normal side ("above"), negative on the opposite side
// ("under").
func (pl Plane) Side(p math32.Vector3) float32 {
	return pl.Normal.Dot(p) - pl.Dist
}

// IntersectPlane returns a point and unit direction spanning the line of
// intersection of two planes. Reports false for (near-)parallel planes,
// where the cross product of the normals degenerates.
func (pl Plane) IntersectPlane(other Plane, eps float32) (point, dir math32.Vector3, ok bool) {
	d := pl.Normal.Cross(other.Normal)
	lenSq := d.LengthSquared()
	if lenSq < eps*eps {
		return math32.Vector3{}, math32.Vector3{}, false
	}
	// Solve the two plane equations plus the constraint that the point is
	// orthogonal to the line direction.
	p := other.Normal.Cross(d).MulScalar(pl.Dist).
		Add(d.Cross(pl.Normal).MulScalar(other.Dist)).
		DivScalar(lenSq)
	return p, d.DivScalar(math32.Sqrt(lenSq)), true
}

// Flip returns the plane with reversed orientation.
func (pl Plane) Flip() Plane {
	return Plane{Normal: pl.Normal.Negate(), Dist: -pl.Dist}
}
