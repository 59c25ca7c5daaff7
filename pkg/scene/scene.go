package scene

import (
	"io"
	"time"

	"cogentcore.org/core/math32"
	"github.com/google/uuid"

	"github.com/matzehuels/sketch3d/pkg/errors"
	"github.com/matzehuels/sketch3d/pkg/geom"
	"github.com/matzehuels/sketch3d/pkg/observability"
	"github.com/matzehuels/sketch3d/pkg/render"
	"github.com/matzehuels/sketch3d/pkg/tikz"
)

// Default export size in output units (cm).
const (
	defaultWidth  = 10
	defaultHeight = 10
)

// Scene accumulates objects and settings for one or more exports. A Scene
// and everything derived from it is exclusively owned by one exporter; it
// is not safe for concurrent use.
type Scene struct {
	reg     *Registry
	objects []Object

	width  float32
	height float32
	view   viewSpec
	eps    float32

	minRegion *math32.Box3
	maxRegion *math32.Box3
}

// New returns an empty scene with default export size and an unset view.
func New() *Scene {
	return &Scene{
		reg:    NewRegistry(),
		width:  defaultWidth,
		height: defaultHeight,
		eps:    geom.DefaultEps,
	}
}

// Reset clears the scene objects. With dataOnly the interned tables, view,
// regions, and export size survive for the next export cycle; otherwise
// everything returns to the defaults of a fresh scene.
func (s *Scene) Reset(dataOnly bool) {
	s.objects = nil
	if dataOnly {
		return
	}
	s.reg = NewRegistry()
	s.width, s.height = defaultWidth, defaultHeight
	s.view = viewSpec{}
	s.minRegion, s.maxRegion = nil, nil
	s.eps = geom.DefaultEps
}

// SetExportSize sets the output width and height, which determine the
// aspect ratio for view fitting and the global export scale. Non-positive
// sizes are dropped.
func (s *Scene) SetExportSize(width, height float32) {
	if errors.ValidateExportSize(width, height) != nil {
		return
	}
	s.width, s.height = width, height
}

// SetEpsilon overrides the plane-side tolerance used by the sorter. Too
// large merges distinct surfaces, too small explodes fragments from
// numeric noise.
func (s *Scene) SetEpsilon(eps float32) {
	if eps > 0 {
		s.eps = eps
	}
}

// SetViewExplicit sets the full camera: field of view in degrees plus the
// rigid transform into camera space.
func (s *Scene) SetViewExplicit(fovDegrees float32, t geom.RigidTransform) {
	s.view = viewSpec{kind: viewExplicit, fov: fovDegrees, transform: t}
}

// SetViewDirectional sets a semi-automatic camera: field of view and view
// direction only. Position is solved at export time so the scene is
// centered and fully visible.
func (s *Scene) SetViewDirectional(fovDegrees float32, dir math32.Vector3) {
	s.view = viewSpec{kind: viewDirectional, fov: fovDegrees, dir: dir}
}

// SetMinRegion guarantees the scene bounding box covers at least this
// region.
func (s *Scene) SetMinRegion(b math32.Box3) {
	s.minRegion = &b
}

// SetMaxRegion clips the scene bounding box to at most this region.
func (s *Scene) SetMaxRegion(b math32.Box3) {
	s.maxRegion = &b
}

// AddStyle interns a style spec and returns its identifier for embedding
// in other specs or add-calls.
func (s *Scene) AddStyle(spec string) string { return s.reg.Style(spec) }

// AddColor interns a color spec and returns its identifier.
func (s *Scene) AddColor(spec string) string { return s.reg.Color(spec) }

// AddMarkTemplate interns a mark-template spec and returns its identifier.
func (s *Scene) AddMarkTemplate(spec string) string { return s.reg.MarkTemplate(spec) }

// AddMark places a point mark.
func (s *Scene) AddMark(pos math32.Vector3, style, template string, rotation, scale float32) {
	s.objects = append(s.objects, &MarkObject{
		Pos:      pos,
		Style:    s.reg.Style(style),
		Template: s.reg.MarkTemplate(template),
		Rotation: rotation,
		Scale:    scale,
	})
}

// AddMarks places one mark per position with shared style and template.
func (s *Scene) AddMarks(positions []math32.Vector3, style, template string, rotation, scale float32) {
	for _, p := range positions {
		s.AddMark(p, style, template, rotation, scale)
	}
}

// AddLine places a stroked segment.
func (s *Scene) AddLine(seg geom.Segment3, style string) {
	s.objects = append(s.objects, &EdgeObject{Seg: seg, Style: s.reg.Style(style)})
}

// AddLines places one segment per entry with a shared style.
func (s *Scene) AddLines(segs []geom.Segment3, style string) {
	for _, seg := range segs {
		s.AddLine(seg, style)
	}
}

// AddFace places a filled planar polygon. Polygons with fewer than three
// vertices, or vertices that span no plane, are silently dropped. A
// non-empty lineStyle also outlines the polygon's edges.
func (s *Scene) AddFace(pts []math32.Vector3, frontStyle, backStyle, lineStyle string) {
	poly, ok := geom.NewPolygon3(pts)
	if !ok {
		return
	}
	s.objects = append(s.objects, &FaceObject{
		Poly:       poly,
		FrontStyle: s.reg.Style(frontStyle),
		BackStyle:  s.reg.Style(backStyle),
		LineStyle:  s.reg.Style(lineStyle),
	})
}

// AddFaces places one face per vertex loop with shared styles.
func (s *Scene) AddFaces(polys [][]math32.Vector3, frontStyle, backStyle, lineStyle string) {
	for _, pts := range polys {
		s.AddFace(pts, frontStyle, backStyle, lineStyle)
	}
}

// AddAxis registers an adapting axis object, refit to the scene bounding
// box before rendering.
func (s *Scene) AddAxis(style, numberFormat, labelPosition string, tick float32, begin, end math32.Vector3) {
	s.objects = append(s.objects, &AxisObject{
		Style:         s.reg.Style(style),
		NumberFormat:  numberFormat,
		LabelPosition: labelPosition,
		Tick:          tick,
		Begin:         begin,
		End:           end,
	})
}

// Objects returns the current scene objects in insertion order.
func (s *Scene) Objects() []Object { return s.objects }

// Registry returns the interned style, color, and mark-template tables.
func (s *Scene) Registry() *Registry { return s.reg }

// Bounds computes the scene bounding box: the union of every fixed
// object's box, clipped to the max region and extended by the min region
// when those are set.
func (s *Scene) Bounds() math32.Box3 {
	b := math32.B3Empty()
	for _, o := range s.objects {
		if f, ok := o.(Fixed); ok {
			b.ExpandByBox(f.Bounds())
		}
	}
	if s.maxRegion != nil && !b.IsEmpty() {
		b = b.Intersect(*s.maxRegion)
	}
	if s.minRegion != nil {
		if b.IsEmpty() {
			b = *s.minRegion
		} else {
			b = b.Union(*s.minRegion)
		}
	}
	return b
}

// Render runs one export cycle: bounding, view solve, adapting-object
// fit, extraction, projection, BSP polygon sort, line merge, mark merge,
// and emission, sequentially with no suspension points. An empty scene
// with no derivable view is a no-op, not a failure. Extra emitter
// options are applied after the export scale. The only error this
// returns comes from writing to w.
func (s *Scene) Render(w io.Writer, opts ...tikz.Option) error {
	exportID := uuid.NewString()
	hooks := observability.Export()
	hooks.OnExportStart(exportID, len(s.objects))
	started := time.Now()

	bounds := s.Bounds()
	view, ok := s.solveView(bounds)
	if !ok {
		hooks.OnExportComplete(exportID, 0, time.Since(started), nil)
		return nil
	}

	ord := s.order(exportID, bounds, view, hooks)

	stage := time.Now()
	src := tikz.Render(tikz.Document{
		Styles: s.reg.Styles(),
		Colors: s.reg.Colors(),
		Marks:  s.reg.MarkTemplates(),
		Order:  ord,
	}, append([]tikz.Option{tikz.WithScale(s.width / 2)}, opts...)...)
	_, err := w.Write(src)
	hooks.OnStage(exportID, "emit", time.Since(stage))

	hooks.OnExportComplete(exportID, ord.Len(), time.Since(started), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing export target")
	}
	return nil
}

// order runs the geometric half of the pipeline and returns the final
// draw order.
func (s *Scene) order(exportID string, bounds math32.Box3, view render.View, hooks observability.ExportHooks) *render.Order {
	stage := time.Now()
	var batch render.Batch
	for _, o := range s.objects {
		if a, ok := o.(Adapting); ok {
			a.FitTo(bounds)
		}
	}
	for _, o := range s.objects {
		o.extract(&batch)
	}
	hooks.OnStage(exportID, "extract", time.Since(stage))

	stage = time.Now()
	batch.Project(view)
	hooks.OnStage(exportID, "project", time.Since(stage))

	stage = time.Now()
	tree := render.BuildTree(batch.Polygons, view, s.eps)
	ord := render.NewOrder(batch.Len())
	tree.AppendOrder(ord)
	hooks.OnStage(exportID, "sort", time.Since(stage))

	stage = time.Now()
	render.MergeLines(ord, batch.Lines, view, s.eps)
	hooks.OnStage(exportID, "merge-lines", time.Since(stage))

	stage = time.Now()
	render.MergeMarks(ord, batch.Marks, view, s.eps)
	hooks.OnStage(exportID, "merge-marks", time.Since(stage))

	return ord
}

// Partition builds just the BSP for the current scene, for inspection
// tooling. Reports false when the scene has no polygons or no view.
func (s *Scene) Partition() (*render.Tree, bool) {
	bounds := s.Bounds()
	view, ok := s.solveView(bounds)
	if !ok {
		return nil, false
	}
	var batch render.Batch
	for _, o := range s.objects {
		o.extract(&batch)
	}
	if len(batch.Polygons) == 0 {
		return nil, false
	}
	batch.Project(view)
	return render.BuildTree(batch.Polygons, view, s.eps), true
}
