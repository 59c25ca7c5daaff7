package geom

import (
	"cogentcore.org/core/math32"
)

// RigidTransform is a rotation followed by a translation. It maps scene
// coordinates into camera coordinates during projection.
type RigidTransform struct {
	Rot math32.Quat
	Pos math32.Vector3
}

// Identity returns the identity transform.
func Identity() RigidTransform {
	return RigidTransform{Rot: math32.NewQuat(0, 0, 0, 1)}
}

// Translate returns a pure translation.
func Translate(offset math32.Vector3) RigidTransform {
	return RigidTransform{Rot: math32.NewQuat(0, 0, 0, 1), Pos: offset}
}

// Rotate returns a pure rotation.
func Rotate(q math32.Quat) RigidTransform {
	return RigidTransform{Rot: q}
}

// Point applies the transform to a point.
func (t RigidTransform) Point(p math32.Vector3) math32.Vector3 {
	return t.Rot.MulVector(p).Add(t.Pos)
}

// Dir applies only the rotation, for directions and normals.
func (t RigidTransform) Dir(d math32.Vector3) math32.Vector3 {
	return t.Rot.MulVector(d)
}

// Segment applies the transform to both endpoints.
func (t RigidTransform) Segment(s Segment3) Segment3 {
	return Seg3(t.Point(s.Begin), t.Point(s.End))
}

// Polygon applies the transform to every vertex and rotates the cached
// plane, keeping it consistent without a renormalizing recompute.
func (t RigidTransform) Polygon(p Polygon3) Polygon3 {
	pts := make([]math32.Vector3, len(p.pts))
	for i, pt := range p.pts {
		pts[i] = t.Point(pt)
	}
	n := t.Dir(p.plane.Normal)
	return Polygon3{
		pts:   pts,
		plane: Plane{Normal: n, Dist: n.Dot(pts[0])},
	}
}

// Mul composes transforms: the result applies other first, then t.
func (t RigidTransform) Mul(other RigidTransform) RigidTransform {
	return RigidTransform{
		Rot: t.Rot.Mul(other.Rot),
		Pos: t.Point(other.Pos),
	}
}

// Inverse returns the inverse transform.
func (t RigidTransform) Inverse() RigidTransform {
	inv := t.Rot.Inverse()
	return RigidTransform{
		Rot: inv,
		Pos: inv.MulVector(t.Pos.Negate()),
	}
}

// Corners enumerates the eight corners of a bounding box in a fixed order.
func Corners(b math32.Box3) [8]math32.Vector3 {
	return [8]math32.Vector3{
		math32.Vec3(b.Min.X, b.Min.Y, b.Min.Z),
		math32.Vec3(b.Max.X, b.Min.Y, b.Min.Z),
		math32.Vec3(b.Min.X, b.Max.Y, b.Min.Z),
		math32.Vec3(b.Max.X, b.Max.Y, b.Min.Z),
		math32.Vec3(b.Min.X, b.Min.Y, b.Max.Z),
		math32.Vec3(b.Max.X, b.Min.Y, b.Max.Z),
		math32.Vec3(b.Min.X, b.Max.Y, b.Max.Z),
		math32.Vec3(b.Max.X, b.Max.Y, b.Max.Z),
	}
}
