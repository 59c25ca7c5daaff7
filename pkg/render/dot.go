package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sketch3d/pkg/geom"
)

// ToDOT converts a partition tree to Graphviz DOT format for inspection.
// Each node shows its polygon count and partition plane; edges are
// labelled with the half-space they lead to. The resulting DOT string
// can be rendered with [RenderDOTSVG] or [RenderDOTPNG].
func ToDOT(t *Tree) string {
	var buf bytes.Buffer
	buf.WriteString("digraph bsp {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	t.Walk(func(idx, under, above, polys int, plane geom.Plane) {
		label := fmt.Sprintf("#%d\\npolys: %d\\nn=(%.2f, %.2f, %.2f)\\nd=%.2f",
			idx, polys, plane.Normal.X, plane.Normal.Y, plane.Normal.Z, plane.Dist)
		fmt.Fprintf(&buf, "  n%d [label=\"%s\"];\n", idx, label)
		if under >= 0 {
			fmt.Fprintf(&buf, "  n%d -> n%d [label=\"under\"];\n", idx, under)
		}
		if above >= 0 {
			fmt.Fprintf(&buf, "  n%d -> n%d [label=\"above\"];\n", idx, above)
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderDOTPNG renders a DOT graph to PNG using Graphviz.
func RenderDOTPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
