package tikz

import (
	"bytes"
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/render"
)

// Def is one interned table entry: a short stable identifier and the
// original textual spec it stands for.
type Def struct {
	ID   string
	Spec string
}

// Document bundles everything one export emits: the interned tables and
// the ordered draw sequence.
type Document struct {
	Styles []Def
	Colors []Def
	Marks  []Def
	Order  *render.Order
}

// Option configures the emitter.
type Option func(*writer)

type writer struct {
	scale      float32
	standalone bool
	header     string
}

// WithScale sets the global export scale applied to every projected
// coordinate. The default of 10 maps the unit view frustum to a 10cm
// picture.
func WithScale(s float32) Option { return func(w *writer) { w.scale = s } }

// WithStandalone wraps the picture in a compilable standalone document.
func WithStandalone() Option { return func(w *writer) { w.standalone = true } }

// WithHeader sets the comment line emitted at the top of the output.
func WithHeader(h string) Option { return func(w *writer) { w.header = h } }

// Render walks the document's draw order once and returns the TikZ
// source: color table, style table, mark-template table, then one draw
// command per primitive.
func Render(doc Document, opts ...Option) []byte {
	w := &writer{scale: 10, header: "generated by sketch3d"}
	for _, opt := range opts {
		opt(w)
	}

	var buf bytes.Buffer
	if w.header != "" {
		fmt.Fprintf(&buf, "%% %s\n", w.header)
	}
	if w.standalone {
		buf.WriteString("\\documentclass[tikz]{standalone}\n")
		buf.WriteString("\\usepackage{pgfplots}\n")
		buf.WriteString("\\begin{document}\n")
	}

	for _, c := range doc.Colors {
		fmt.Fprintf(&buf, "\\definecolor{%s}{rgb}{%s}\n", c.ID, c.Spec)
	}
	for _, s := range doc.Styles {
		fmt.Fprintf(&buf, "\\tikzset{%s/.style={%s}}\n", s.ID, s.Spec)
	}
	for _, m := range doc.Marks {
		fmt.Fprintf(&buf, "\\pgfdeclareplotmark{%s}{%s}\n", m.ID, m.Spec)
	}

	buf.WriteString("\\begin{tikzpicture}\n")
	if doc.Order != nil {
		for _, p := range doc.Order.Items() {
			w.emit(&buf, p)
		}
	}
	buf.WriteString("\\end{tikzpicture}\n")

	if w.standalone {
		buf.WriteString("\\end{document}\n")
	}
	return buf.Bytes()
}

// emit writes the draw command for one primitive. The switch is
// exhaustive over the closed primitive set.
func (w *writer) emit(buf *bytes.Buffer, p render.Primitive) {
	switch prim := p.(type) {
	case *render.Polygon:
		w.emitPolygon(buf, prim)
	case *render.Line:
		w.emitLine(buf, prim)
	case *render.Mark:
		w.emitMark(buf, prim)
	}
}

func (w *writer) emitPolygon(buf *bytes.Buffer, p *render.Polygon) {
	style := p.FrontStyle
	if !p.Front && p.BackStyle != "" {
		style = p.BackStyle
	}
	buf.WriteString("\\fill")
	writeStyle(buf, style)
	for i, pt := range p.Proj.Points {
		if i > 0 {
			buf.WriteString(" --")
		}
		w.writeCoord(buf, pt)
	}
	buf.WriteString(" -- cycle;\n")
}

func (w *writer) emitLine(buf *bytes.Buffer, l *render.Line) {
	buf.WriteString("\\draw")
	writeStyle(buf, l.Style)
	w.writeCoord(buf, l.Proj.Begin)
	buf.WriteString(" --")
	w.writeCoord(buf, l.Proj.End)
	buf.WriteString(";\n")
}

func (w *writer) emitMark(buf *bytes.Buffer, m *render.Mark) {
	buf.WriteString("\\draw")
	writeStyle(buf, m.Style)
	buf.WriteString(" plot[mark=")
	if m.Template != "" {
		buf.WriteString(m.Template)
	} else {
		buf.WriteString("*")
	}
	fmt.Fprintf(buf, ", mark options={rotate=%s, scale=%s}] coordinates {", trim(m.Rotation), trim(m.Scale))
	w.writeCoord(buf, m.Proj)
	buf.WriteString("};\n")
}

func (w *writer) writeCoord(buf *bytes.Buffer, p math32.Vector2) {
	fmt.Fprintf(buf, " (%.4f,%.4f)", w.scale*p.X, w.scale*p.Y)
}

func writeStyle(buf *bytes.Buffer, style string) {
	if style != "" {
		fmt.Fprintf(buf, "[%s]", style)
	}
}

// trim formats a float without trailing zero noise.
func trim(f float32) string {
	s := fmt.Sprintf("%.3f", f)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
