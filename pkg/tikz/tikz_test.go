package tikz

import (
	"strings"
	"testing"

	"cogentcore.org/core/math32"

	"github.com/matzehuels/sketch3d/pkg/geom"
	"github.com/matzehuels/sketch3d/pkg/render"
)

func TestRenderEmitsDefinitionTables(t *testing.T) {
	out := string(Render(Document{
		Colors: []Def{{ID: "C0", Spec: "0.5,0.5,0.5"}},
		Styles: []Def{{ID: "S0", Spec: "fill=C0"}},
		Marks:  []Def{{ID: "M0", Spec: "\\pgfuseplotmark{o}"}},
	}))

	for _, want := range []string{
		"\\definecolor{C0}{rgb}{0.5,0.5,0.5}\n",
		"\\tikzset{S0/.style={fill=C0}}\n",
		"\\pgfdeclareplotmark{M0}{\\pgfuseplotmark{o}}\n",
		"\\begin{tikzpicture}\n\\end{tikzpicture}\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPolygonFrontBackStyle(t *testing.T) {
	front := &render.Polygon{
		Front:      true,
		FrontStyle: "S0",
		BackStyle:  "S1",
		Proj: geom.Polygon2{Points: []math32.Vector2{
			math32.Vec2(0, 0), math32.Vec2(0.1, 0), math32.Vec2(0, 0.1),
		}},
	}
	back := &render.Polygon{
		Front:      false,
		FrontStyle: "S0",
		BackStyle:  "S1",
		Proj:       front.Proj,
	}

	ord := render.NewOrder(2)
	ord.Append(front)
	ord.Append(back)
	out := string(Render(Document{Order: ord}, WithScale(10)))

	if !strings.Contains(out, "\\fill[S0] (0.0000,0.0000) -- (1.0000,0.0000) -- (0.0000,1.0000) -- cycle;\n") {
		t.Fatalf("front fill wrong:\n%s", out)
	}
	if !strings.Contains(out, "\\fill[S1]") {
		t.Fatalf("back face must use the back style:\n%s", out)
	}
}

func TestRenderBackStyleFallsBackToFront(t *testing.T) {
	p := &render.Polygon{
		Front:      false,
		FrontStyle: "S0",
		Proj: geom.Polygon2{Points: []math32.Vector2{
			math32.Vec2(0, 0), math32.Vec2(1, 0), math32.Vec2(0, 1),
		}},
	}
	ord := render.NewOrder(1)
	ord.Append(p)

	if !strings.Contains(string(Render(Document{Order: ord})), "\\fill[S0]") {
		t.Fatal("missing back style must fall back to the front style")
	}
}

func TestRenderLineAndMark(t *testing.T) {
	l := &render.Line{
		Style: "S0",
		Proj:  geom.Seg2(math32.Vec2(-0.5, 0), math32.Vec2(0.5, 0)),
	}
	m := &render.Mark{
		Style:    "S1",
		Template: "M0",
		Rotation: 45,
		Scale:    2,
		Proj:     math32.Vec2(0.25, 0.25),
	}

	ord := render.NewOrder(2)
	ord.Append(l)
	ord.Append(m)
	out := string(Render(Document{Order: ord}, WithScale(10)))

	if !strings.Contains(out, "\\draw[S0] (-5.0000,0.0000) -- (5.0000,0.0000);\n") {
		t.Fatalf("line command wrong:\n%s", out)
	}
	if !strings.Contains(out, "\\draw[S1] plot[mark=M0, mark options={rotate=45, scale=2}] coordinates { (2.5000,2.5000)};\n") {
		t.Fatalf("mark command wrong:\n%s", out)
	}
}

func TestRenderMarkWithoutTemplateUsesDefault(t *testing.T) {
	ord := render.NewOrder(1)
	ord.Append(&render.Mark{Scale: 1})
	if !strings.Contains(string(Render(Document{Order: ord})), "plot[mark=*") {
		t.Fatal("template-less mark must fall back to the default mark")
	}
}

func TestRenderStandaloneWrapsDocument(t *testing.T) {
	out := string(Render(Document{}, WithStandalone(), WithHeader("test header")))
	if !strings.HasPrefix(out, "% test header\n\\documentclass[tikz]{standalone}\n") {
		t.Fatalf("standalone preamble wrong:\n%s", out)
	}
	if !strings.HasSuffix(out, "\\end{document}\n") {
		t.Fatalf("standalone must close the document:\n%s", out)
	}
}
