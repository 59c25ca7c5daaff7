package scene

import (
	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/errors"
	"github.com/matzehuels/sketch3d/pkg/geom"
	"github.com/matzehuels/sketch3d/pkg/render"
)

// Default view parameters used when the caller never sets a view.
const defaultFOV = 30

var defaultViewDir = math32.Vec3(1, 1, 1)

type viewKind uint8

const (
	viewUnset viewKind = iota
	viewExplicit
	viewDirectional
)

// viewSpec records what the caller asked for; solving happens once per
// export, after the bounding box is final.
type viewSpec struct {
	kind      viewKind
	fov       float32 // degrees
	transform geom.RigidTransform
	dir       math32.Vector3
}

// solveView derives the camera for this export. An explicit view is taken
// verbatim. A directional (semi-automatic) view aims the requested
// direction down the +Z camera axis, centers the bounding-box centroid,
// and then pushes the camera back along the view axis by the minimal
// distance that makes every box corner's perspective projection fit the
// requested aspect ratio; the most restrictive corner wins. Reports false
// when no view can be derived (nothing set and no bounding box).
func (s *Scene) solveView(bounds math32.Box3) (render.View, bool) {
	spec := s.view
	if spec.kind == viewUnset {
		if bounds.IsEmpty() {
			return render.View{}, false
		}
		spec = viewSpec{kind: viewDirectional, fov: defaultFOV, dir: defaultViewDir}
	}

	fov := spec.fov
	if errors.ValidateFOV(fov) != nil {
		fov = defaultFOV
	}
	tanHalf := math32.Tan(math32.DegToRad(fov) / 2)
	focal := 1 / tanHalf

	if spec.kind == viewExplicit {
		return render.View{Focal: focal, Transform: spec.transform}, true
	}

	dir := spec.dir
	if dir.Length() == 0 {
		dir = defaultViewDir
	}
	dir = dir.Normal()

	var q math32.Quat
	q.SetFromUnitVectors(dir, math32.Vec3(0, 0, 1))
	rt := geom.RigidTransform{Rot: q}
	rt.Pos = rt.Point(bounds.Center()).Negate()

	// Push the camera back far enough that every corner satisfies both
	// the horizontal and the vertical half-angle constraint.
	aspect := s.width / s.height
	var back float32
	for _, c := range geom.Corners(bounds) {
		p := rt.Point(c)
		need := max(math32.Abs(p.X), math32.Abs(p.Y)*aspect) / tanHalf
		back = max(back, need-p.Z)
	}
	rt.Pos.Z += back

	return render.View{Focal: focal, Transform: rt}, true
}
