package render

import (
	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/geom"
)

// Kind discriminates the closed set of primitive variants. Pairwise depth
// tests in the mergers switch exhaustively over it.
type Kind uint8

const (
	// KindMark is a point mark (template instance at a position).
	KindMark Kind = iota
	// KindLine is a stroked 3D line segment.
	KindLine
	// KindPolygon is a filled planar polygon.
	KindPolygon
)

// String returns the lower-case variant name.
func (k Kind) String() string {
	switch k {
	case KindMark:
		return "mark"
	case KindLine:
		return "line"
	case KindPolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Primitive is one drawable unit derived from a scene object. A primitive
// owns its 3D geometry, which the view transform overwrites in place, plus
// the derived 2D projection. Primitives live for a single export cycle.
type Primitive interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Depth returns the distance of the reference point from the camera.
	Depth() float32

	project(v View)
}

// Mark is a point mark primitive.
type Mark struct {
	Pos      math32.Vector3 // camera-space position after projection
	Proj     math32.Vector2
	Style    string
	Template string
	Rotation float32 // degrees
	Scale    float32
}

// Kind returns KindMark.
func (m *Mark) Kind() Kind { return KindMark }

// Depth returns the distance of the mark from the camera.
func (m *Mark) Depth() float32 { return m.Pos.Length() }

func (m *Mark) project(v View) {
	m.Pos = v.Transform.Point(m.Pos)
	m.Proj = v.projectPoint(m.Pos)
}

// Line is a stroked segment primitive.
type Line struct {
	Seg   geom.Segment3 // camera-space segment after projection
	Proj  geom.Segment2
	Style string
}

// Kind returns KindLine.
func (l *Line) Kind() Kind { return KindLine }

// Depth returns the distance of the segment midpoint from the camera.
func (l *Line) Depth() float32 { return l.Seg.Midpoint().Length() }

func (l *Line) project(v View) {
	l.Seg = v.Transform.Segment(l.Seg)
	l.Proj = geom.Seg2(v.projectPoint(l.Seg.Begin), v.projectPoint(l.Seg.End))
}

// subLine derives a fragment covering the parameter range [t0,t1] of the
// parent segment, reprojected under the same view.
func (l *Line) subLine(t0, t1 float32, v View) *Line {
	sub := &Line{
		Seg:   geom.Seg3(l.Seg.At(t0), l.Seg.At(t1)),
		Style: l.Style,
	}
	sub.Proj = geom.Seg2(v.projectPoint(sub.Seg.Begin), v.projectPoint(sub.Seg.End))
	return sub
}

// Polygon is a filled planar polygon primitive.
type Polygon struct {
	Poly geom.Polygon3 // camera-space polygon after projection
	Proj geom.Polygon2
	// Front caches which face points toward the viewer, decided once at
	// projection time from the sign of normal-dot-firstVertex.
	Front      bool
	FrontStyle string
	BackStyle  string
}

// Kind returns KindPolygon.
func (p *Polygon) Kind() Kind { return KindPolygon }

// Depth returns the distance of the polygon centroid from the camera.
func (p *Polygon) Depth() float32 { return p.Poly.Centroid().Length() }

func (p *Polygon) project(v View) {
	p.Poly = v.Transform.Polygon(p.Poly)
	pts := p.Poly.Points()
	proj := make([]math32.Vector2, len(pts))
	for i, pt := range pts {
		proj[i] = v.projectPoint(pt)
	}
	p.Proj = geom.Polygon2{Points: proj}
	p.Front = p.Poly.Plane().Normal.Dot(pts[0]) < 0
}

// fragment wraps a split-off piece of the polygon's geometry into a new
// primitive carrying the parent's styles and visibility, reprojected under
// the same view. The parent is considered consumed once fragments exist.
func (p *Polygon) fragment(poly geom.Polygon3, v View) *Polygon {
	frag := &Polygon{
		Poly:       poly,
		Front:      p.Front,
		FrontStyle: p.FrontStyle,
		BackStyle:  p.BackStyle,
	}
	pts := poly.Points()
	proj := make([]math32.Vector2, len(pts))
	for i, pt := range pts {
		proj[i] = v.projectPoint(pt)
	}
	frag.Proj = geom.Polygon2{Points: proj}
	return frag
}

// Batch collects the raw primitives extracted from a scene, grouped by
// kind in the order the pipeline consumes them.
type Batch struct {
	Polygons []*Polygon
	Lines    []*Line
	Marks    []*Mark
}

// AddPolygon appends a polygon primitive.
func (b *Batch) AddPolygon(p *Polygon) { b.Polygons = append(b.Polygons, p) }

// AddLine appends a line primitive.
func (b *Batch) AddLine(l *Line) { b.Lines = append(b.Lines, l) }

// AddMark appends a mark primitive.
func (b *Batch) AddMark(m *Mark) { b.Marks = append(b.Marks, m) }

// Len returns the total number of primitives in the batch.
func (b *Batch) Len() int {
	return len(b.Polygons) + len(b.Lines) + len(b.Marks)
}

// Project applies the view to every primitive in the batch, overwriting
// the 3D geometry in place and deriving the 2D projections.
func (b *Batch) Project(v View) {
	for _, p := range b.Polygons {
		p.project(v)
	}
	for _, l := range b.Lines {
		l.project(v)
	}
	for _, m := range b.Marks {
		m.project(v)
	}
}
