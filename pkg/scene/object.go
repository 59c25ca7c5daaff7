package scene

import (
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/geom"
	"github.com/matzehuels/sketch3d/pkg/render"
)

// Object is anything the scene can hold. The concrete set is closed:
// marks, edges, and faces are fixed objects, axes are adapting objects.
type Object interface {
	// Label describes the object for inspection tooling.
	Label() string

	extract(b *render.Batch)
}

// Fixed objects contribute to the scene bounding box.
type Fixed interface {
	Object
	Bounds() math32.Box3
}

// Adapting objects are refit to the final scene bounding box once per
// export, after the box is known and strictly before extraction.
type Adapting interface {
	Object
	FitTo(box math32.Box3)
}

// MarkObject is a point mark: a mark-template instance at a position with
// per-mark rotation and scale.
type MarkObject struct {
	Pos      math32.Vector3
	Style    string // interned style identifier
	Template string // interned mark-template identifier
	Rotation float32
	Scale    float32
}

// Label implements Object.
func (m *MarkObject) Label() string {
	return fmt.Sprintf("mark %s at (%.3g, %.3g, %.3g)", m.Template, m.Pos.X, m.Pos.Y, m.Pos.Z)
}

// Bounds implements Fixed.
func (m *MarkObject) Bounds() math32.Box3 {
	b := math32.B3Empty()
	b.ExpandByPoint(m.Pos)
	return b
}

func (m *MarkObject) extract(b *render.Batch) {
	b.AddMark(&render.Mark{
		Pos:      m.Pos,
		Style:    m.Style,
		Template: m.Template,
		Rotation: m.Rotation,
		Scale:    m.Scale,
	})
}

// EdgeObject is a stroked 3D line segment.
type EdgeObject struct {
	Seg   geom.Segment3
	Style string
}

// Label implements Object.
func (e *EdgeObject) Label() string {
	return fmt.Sprintf("line len=%.3g", e.Seg.Length())
}

// Bounds implements Fixed.
func (e *EdgeObject) Bounds() math32.Box3 {
	b := math32.B3Empty()
	b.ExpandByPoint(e.Seg.Begin)
	b.ExpandByPoint(e.Seg.End)
	return b
}

func (e *EdgeObject) extract(b *render.Batch) {
	b.AddLine(&render.Line{Seg: e.Seg, Style: e.Style})
}

// FaceObject is a filled planar polygon with separate front and back
// styles. A non-empty LineStyle additionally registers the polygon's
// boundary edges as line primitives at extraction time.
type FaceObject struct {
	Poly       geom.Polygon3
	FrontStyle string
	BackStyle  string
	LineStyle  string
}

// Label implements Object.
func (f *FaceObject) Label() string {
	return fmt.Sprintf("face %d vertices", len(f.Poly.Points()))
}

// Bounds implements Fixed.
func (f *FaceObject) Bounds() math32.Box3 {
	return f.Poly.Bounds()
}

func (f *FaceObject) extract(b *render.Batch) {
	b.AddPolygon(&render.Polygon{
		Poly:       f.Poly,
		FrontStyle: f.FrontStyle,
		BackStyle:  f.BackStyle,
	})
	if f.LineStyle != "" {
		for _, e := range f.Poly.Edges() {
			b.AddLine(&render.Line{Seg: e, Style: f.LineStyle})
		}
	}
}

var (
	_ Fixed = (*MarkObject)(nil)
	_ Fixed = (*EdgeObject)(nil)
	_ Fixed = (*FaceObject)(nil)
)
