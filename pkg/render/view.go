package render

import (
	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/geom"
)

// View is a solved camera: a rigid transform into camera space plus the
// focal length derived from the field of view (1/tan(fov/2)).
type View struct {
	Focal     float32
	Transform geom.RigidTransform
}

// projectPoint computes the perspective projection of a camera-space
// point: (-f*x/z, -f*y/z). A point behind the camera yields a flipped
// projection; only relative depth drives ordering, so this never feeds a
// decision.
func (v View) projectPoint(p math32.Vector3) math32.Vector2 {
	return math32.Vec2(-v.Focal*p.X/p.Z, -v.Focal*p.Y/p.Z)
}

// ProjectPoint exposes the projection for callers outside the pipeline
// (tests, axis fitting diagnostics).
func (v View) ProjectPoint(p math32.Vector3) math32.Vector2 {
	return v.projectPoint(p)
}
