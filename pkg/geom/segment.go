package geom

import (
	"cogentcore.org/core/math32"
)

// Segment3 is a 3D line segment between two endpoints.
type Segment3 struct {
	Begin math32.Vector3
	End   math32.Vector3
}

// Seg3 returns a new segment between the two points.
func Seg3(begin, end math32.Vector3) Segment3 {
	return Segment3{Begin: begin, End: end}
}

// Delta returns End - Begin.
func (s Segment3) Delta() math32.Vector3 {
	return s.End.Sub(s.Begin)
}

// Dir returns the unit direction from Begin to End.
// Zero-length segments return the zero vector.
func (s Segment3) Dir() math32.Vector3 {
	d := s.Delta()
	l := d.Length()
	if l == 0 {
		return math32.Vector3{}
	}
	return d.DivScalar(l)
}

// Length returns the distance between the endpoints.
func (s Segment3) Length() float32 {
	return s.Delta().Length()
}

// At returns the point Begin + t*(End-Begin).
func (s Segment3) At(t float32) math32.Vector3 {
	return s.Begin.Add(s.Delta().MulScalar(t))
}

// Midpoint returns the segment midpoint.
func (s Segment3) Midpoint() math32.Vector3 {
	return s.At(0.5)
}

// Segment2 is a 2D line segment between two projected points.
type Segment2 struct {
	Begin math32.Vector2
	End   math32.Vector2
}

// Seg2 returns a new 2D segment between the two points.
func Seg2(begin, end math32.Vector2) Segment2 {
	return Segment2{Begin: begin, End: end}
}

// Delta returns End - Begin.
func (s Segment2) Delta() math32.Vector2 {
	return s.End.Sub(s.Begin)
}

// Length returns the distance between the endpoints.
func (s Segment2) Length() float32 {
	return s.Delta().Length()
}

// At returns the point Begin + t*(End-Begin).
func (s Segment2) At(t float32) math32.Vector2 {
	return s.Begin.Add(s.Delta().MulScalar(t))
}

// ClosestParam returns the parameter of the point on the infinite carrier
// line closest to p. The result is not clamped to [0,1].
func (s Segment2) ClosestParam(p math32.Vector2) float32 {
	d := s.Delta()
	lenSq := d.LengthSquared()
	if lenSq == 0 {
		return 0
	}
	return p.Sub(s.Begin).Dot(d) / lenSq
}

// Intersect computes the intersection of the two carrier lines and returns
// the parameters t (on s) and u (on other) of the crossing point. Reports
// false when the lines are (near-)parallel.
func (s Segment2) Intersect(other Segment2) (t, u float32, ok bool) {
	d1 := s.Delta()
	d2 := other.Delta()
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math32.Abs(denom) < 1e-12 {
		return 0, 0, false
	}
	w := other.Begin.Sub(s.Begin)
	t = (w.X*d2.Y - w.Y*d2.X) / denom
	u = (w.X*d1.Y - w.Y*d1.X) / denom
	return t, u, true
}
