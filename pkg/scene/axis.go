package scene

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/geom"
	"github.com/matzehuels/sketch3d/pkg/render"
)

// AxisObject is an adapting object: a coordinate axis whose extent is
// refit to the scene bounding box before rendering. It renders as the
// axis segment plus one short cross tick every Tick units. NumberFormat
// and LabelPosition are carried for the 2D chart exporter, which places
// the tick labels; the 3D pipeline draws only geometry.
type AxisObject struct {
	Style         string
	NumberFormat  string
	LabelPosition string
	Tick          float32
	Begin         math32.Vector3
	End           math32.Vector3

	fitted geom.Segment3
	fit    bool
}

// Label implements Object.
func (a *AxisObject) Label() string {
	return fmt.Sprintf("axis tick=%.3g fmt=%q", a.Tick, a.NumberFormat)
}

// FitTo extends the axis along its own direction until the projection of
// every bounding-box corner onto that direction is covered. A degenerate
// axis direction or an empty box leaves the declared extent unchanged.
func (a *AxisObject) FitTo(box math32.Box3) {
	a.fitted = geom.Seg3(a.Begin, a.End)
	a.fit = true
	dir := a.fitted.Dir()
	if dir.Length() == 0 || box.IsEmpty() {
		return
	}

	tmin, tmax := float32(0), a.fitted.Length()
	for _, c := range geom.Corners(box) {
		t := c.Sub(a.Begin).Dot(dir)
		tmin = min(tmin, t)
		tmax = max(tmax, t)
	}
	a.fitted = geom.Seg3(
		a.Begin.Add(dir.MulScalar(tmin)),
		a.Begin.Add(dir.MulScalar(tmax)),
	)
}

func (a *AxisObject) extract(b *render.Batch) {
	seg := a.fitted
	if !a.fit {
		seg = geom.Seg3(a.Begin, a.End)
	}
	length := seg.Length()
	if length == 0 {
		return
	}
	b.AddLine(&render.Line{Seg: seg, Style: a.Style})

	if a.Tick <= 0 {
		return
	}
	perp := tickPerpendicular(seg.Dir())
	half := perp.MulScalar(0.025 * length)
	for t := a.Tick; t < length; t += a.Tick {
		at := seg.Begin.Add(seg.Dir().MulScalar(t))
		b.AddLine(&render.Line{
			Seg:   geom.Seg3(at.Sub(half), at.Add(half)),
			Style: a.Style,
		})
	}
}

// tickPerpendicular picks a deterministic direction orthogonal to the
// axis for drawing tick cross-lines.
func tickPerpendicular(dir math32.Vector3) math32.Vector3 {
	ref := math32.Vec3(0, 0, 1)
	if math32.Abs(dir.Z) > 0.9 {
		ref = math32.Vec3(1, 0, 0)
	}
	return dir.Cross(ref).Normal()
}

var _ Adapting = (*AxisObject)(nil)
