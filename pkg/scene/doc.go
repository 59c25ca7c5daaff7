// Package scene implements the scene object model and the export entry
// point of sketch3d.
//
// A [Scene] accumulates geometric objects (point marks, line segments,
// planar faces, axes) together with interned style, color, and
// mark-template specs, then exports them as occlusion-correct TikZ source
// in one synchronous Render call:
//
//	s := scene.New()
//	red := s.AddColor("0.8,0.1,0.1")
//	fill := s.AddStyle("fill=" + red)
//	s.AddFace(pts, fill, "", "")
//	s.SetViewDirectional(30, math32.Vec3(1, 1, 1))
//	var buf bytes.Buffer
//	if err := s.Render(&buf); err != nil { ... }
//
// # Object model
//
// Fixed objects (marks, edges, faces) expose a bounding box; adapting
// objects (axes) are refit to the final scene bounding box once per
// export, strictly before primitive extraction. Objects live until an
// explicit Reset; all primitives derived from them are private to one
// export cycle.
//
// # Input policy
//
// Malformed input (degenerate polygons, mismatched array lengths) is
// silently dropped: this is a best-effort visualization tool, not a
// validator. Nothing in the geometric pipeline returns an error; an
// export either completes or reports an I/O failure from the target
// writer.
package scene
