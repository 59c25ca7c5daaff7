package render

import (
	"github.com/matzehuels/sketch3d/pkg/geom"
)

// noChild marks an absent subtree in the node arena.
const noChild = -1

// node is one entry in the tree arena. It holds the polygons lying in the
// node's splitting plane (the first polygon defines it) plus the indices
// of the under/above subtrees. Nodes own their children; the arena is a
// strict tree with no sharing.
type node struct {
	polys []*Polygon
	under int
	above int
}

// Tree is a binary space partition over polygon planes. Nodes live in an
// arena addressed by index, so construction needs no self-referential
// structures and traversal is a pair of plain recursions.
type Tree struct {
	nodes []node
	root  int
	eps   float32
	view  View

	splits int // number of polygons that were cut during construction
}

// BuildTree partitions the projected polygons into a BSP. The view is
// retained to reproject fragments created by splitting. The epsilon
// controls both "coplanar, do not split" and "crosses, must split"; too
// large merges distinct surfaces, too small explodes fragments from
// numeric noise.
//
// Memory and time grow with the polygon count times the worst-case
// fragment growth, which is unbounded for densely intersecting input.
func BuildTree(polys []*Polygon, view View, eps float32) *Tree {
	t := &Tree{root: noChild, eps: eps, view: view}
	if len(polys) == 0 {
		return t
	}
	t.root = t.build(polys)
	return t
}

// build files the polygon set into a new arena node and recurses into the
// sides. The first polygon supplies the local splitting plane.
func (t *Tree) build(polys []*Polygon) int {
	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{
		polys: polys[:1],
		under: noChild,
		above: noChild,
	})
	pl := polys[0].Poly.Plane()

	var under, above []*Polygon
	for _, p := range polys[1:] {
		switch p.Poly.ClassifyPlane(pl, t.eps) {
		case geom.SideAbove:
			above = append(above, p)
		case geom.SideUnder:
			under = append(under, p)
		case geom.SideSpanning:
			// The boundary is walked along the line where the two planes
			// meet; each run between break points files independently.
			aboveFrags, underFrags := p.Poly.SplitByPlane(pl, t.eps)
			t.splits++
			for _, frag := range aboveFrags {
				above = append(above, p.fragment(frag, t.view))
			}
			for _, frag := range underFrags {
				under = append(under, p.fragment(frag, t.view))
			}
		default: // coplanar within epsilon
			// No vertex is farther than epsilon from the plane: the
			// centroid side decides, and a centroid on the plane files
			// the polygon into this node's own set.
			s := pl.Side(p.Poly.Centroid())
			switch {
			case s > t.eps:
				above = append(above, p)
			case s < -t.eps:
				under = append(under, p)
			default:
				t.nodes[idx].polys = append(t.nodes[idx].polys, p)
			}
		}
	}

	if len(under) > 0 {
		u := t.build(under)
		t.nodes[idx].under = u
	}
	if len(above) > 0 {
		a := t.build(above)
		t.nodes[idx].above = a
	}
	return idx
}

// AppendOrder materializes the back-to-front sequence into ord. At each
// node, the subtree on the far side of the splitting plane is emitted
// before the node's own polygons, and the near side after: when the
// node's reference polygon faces the viewer the camera is on the above
// side, so under comes first; otherwise the roles swap.
func (t *Tree) AppendOrder(ord *Order) {
	if t.root == noChild {
		return
	}
	t.appendNode(t.root, ord)
}

func (t *Tree) appendNode(i int, ord *Order) {
	n := t.nodes[i]
	first, second := n.under, n.above
	if !n.polys[0].Front {
		first, second = n.above, n.under
	}
	if first != noChild {
		t.appendNode(first, ord)
	}
	for _, p := range n.polys {
		ord.Append(p)
	}
	if second != noChild {
		t.appendNode(second, ord)
	}
}

// NodeCount returns the number of arena nodes.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// SplitCount returns how many polygons were cut during construction.
func (t *Tree) SplitCount() int { return t.splits }

// PolygonCount returns the number of polygons filed across all nodes,
// fragments included.
func (t *Tree) PolygonCount() int {
	total := 0
	for _, n := range t.nodes {
		total += len(n.polys)
	}
	return total
}

// Walk visits every arena node. The callback receives the node index, the
// indices of the under/above children (-1 when absent), the number of
// coplanar polygons filed in the node, and the node's splitting plane.
// Used by the tree inspector; the export pipeline itself only traverses
// through AppendOrder.
func (t *Tree) Walk(fn func(idx, under, above, polys int, plane geom.Plane)) {
	for i, n := range t.nodes {
		fn(i, n.under, n.above, len(n.polys), n.polys[0].Poly.Plane())
	}
}

// Depths returns the depth of the deepest arena node below the root.
func (t *Tree) Depths() int {
	if t.root == noChild {
		return 0
	}
	var depth func(i int) int
	depth = func(i int) int {
		n := t.nodes[i]
		d := 0
		if n.under != noChild {
			d = max(d, depth(n.under))
		}
		if n.above != noChild {
			d = max(d, depth(n.above))
		}
		return d + 1
	}
	return depth(t.root)
}
