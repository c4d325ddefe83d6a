// Package bsp implements the recursive Binary Space Partitioning tree: a
// splitting plane, the polygons lying on it, and front/back subtrees.
// Boolean operations (package solid) are expressed as short
// choreographies of Build, Invert, and ClipTo over two such trees.
//
// Grounded on the teacher's bsp.BSPBuilder: its per-polygon classify/
// partition/recurse shape (buildEdgeTest, classifyPolygon, splitPolygon)
// is generalized here from a flat protobuf-indexed arena describing 2D
// point-in-solid tests to a recursive pointer tree over 3D polygons
// implementing full Boolean set algebra (see DESIGN.md for why the
// representation changed).
package bsp

import (
	"fmt"

	"github.com/bloodmagesoftware/csg/polygon"
)

// MaxDepth bounds recursion depth in Build when nonzero. 0 (the default)
// means unlimited. config.Options.Apply sets this from
// config.Options.MaxBuildDepth, a safety valve against pathologically
// large inputs.
var MaxDepth int

// Node is one node of a BSP tree. A Node with a nil Plane is empty (no
// splitting plane has been adopted yet, and Polys/Front/Back are all
// empty), build's base case. Front and Back, when present, are owned
// exclusively by this node: the tree is a strict tree, never a DAG.
type Node struct {
	Plane *polygon.Plane
	Polys []*polygon.Polygon
	Front *Node
	Back  *Node
}

// New returns an empty BSP node.
func New() *Node {
	return &Node{}
}

// Build inserts polys into the tree rooted at n, recursively. Build may
// be called more than once on an existing node to insert additional
// polygons at the bottom of the tree; the first polygon ever inserted
// into a plane-less node determines that node's splitting plane. No
// split-quality heuristic is used, so tree shape is a deterministic
// function of input order only.
func (n *Node) Build(polys []*polygon.Polygon) {
	n.buildAt(polys, 0)
}

func (n *Node) buildAt(polys []*polygon.Polygon, depth int) {
	if len(polys) == 0 {
		return
	}
	if MaxDepth > 0 && depth > MaxDepth {
		panic(fmt.Errorf("bsp: tree depth exceeded MaxDepth (%d)", MaxDepth))
	}
	if n.Plane == nil {
		pl := polys[0].Plane
		n.Plane = &pl
	}

	var front, back []*polygon.Polygon
	for _, p := range polys {
		n.Plane.Split(p, &n.Polys, &n.Polys, &front, &back)
	}

	if len(front) > 0 {
		if n.Front == nil {
			n.Front = New()
		}
		n.Front.buildAt(front, depth+1)
	}
	if len(back) > 0 {
		if n.Back == nil {
			n.Back = New()
		}
		n.Back.buildAt(back, depth+1)
	}
}

// Invert flips every polygon stored at every node, flips every node's
// plane, and swaps each node's Front and Back pointers, recursively.
// Net effect: the tree now classifies the formerly-inside region as
// outside and vice versa.
func (n *Node) Invert() {
	for i, p := range n.Polys {
		n.Polys[i] = p.Flip()
	}
	if n.Plane != nil {
		flipped := n.Plane.Flip()
		n.Plane = &flipped
	}
	if n.Front != nil {
		n.Front.Invert()
	}
	if n.Back != nil {
		n.Back.Invert()
	}
	n.Front, n.Back = n.Back, n.Front
}

// ClipPolygons removes, from polys, every fragment that lies inside the
// solid n represents, and returns the survivors. n is not mutated. If n
// is empty (no plane), there is nothing to clip against: a shallow copy
// of polys is returned unchanged.
func (n *Node) ClipPolygons(polys []*polygon.Polygon) []*polygon.Polygon {
	if n.Plane == nil {
		out := make([]*polygon.Polygon, len(polys))
		copy(out, polys)
		return out
	}

	var front, back []*polygon.Polygon
	for _, p := range polys {
		// Coplanar fragments merge into the bin matching their geometric
		// side; the clipper has no separate coplanar bins the way Build
		// does.
		n.Plane.Split(p, &front, &back, &front, &back)
	}

	if n.Front != nil {
		front = n.Front.ClipPolygons(front)
	}
	if n.Back != nil {
		back = n.Back.ClipPolygons(back)
	} else {
		// No back subtree: back-of-plane with nothing further splitting
		// it is interpreted as "inside the solid" and discarded.
		back = nil
	}

	return append(front, back...)
}

// ClipTo replaces n's own polygon list with other.ClipPolygons(n's
// polygons), then recurses into both children. After the call, no
// fragment of n's tree lies inside other.
func (n *Node) ClipTo(other *Node) {
	n.Polys = other.ClipPolygons(n.Polys)
	if n.Front != nil {
		n.Front.ClipTo(other)
	}
	if n.Back != nil {
		n.Back.ClipTo(other)
	}
}

// AllPolygons returns every polygon stored across n and its subtrees, in
// depth-first order (self, front, back). Ordering stability is not a
// contract, but this implementation is deterministic for a fixed tree.
func (n *Node) AllPolygons() []*polygon.Polygon {
	out := make([]*polygon.Polygon, 0, len(n.Polys))
	out = append(out, n.Polys...)
	if n.Front != nil {
		out = append(out, n.Front.AllPolygons()...)
	}
	if n.Back != nil {
		out = append(out, n.Back.AllPolygons()...)
	}
	return out
}

// Clone returns a deep copy of n: its own plane, every polygon, and both
// subtrees, recursively.
func (n *Node) Clone() *Node {
	clone := &Node{}
	if n.Plane != nil {
		pl := *n.Plane
		clone.Plane = &pl
	}
	if len(n.Polys) > 0 {
		clone.Polys = make([]*polygon.Polygon, len(n.Polys))
		for i, p := range n.Polys {
			clone.Polys[i] = p.Clone()
		}
	}
	if n.Front != nil {
		clone.Front = n.Front.Clone()
	}
	if n.Back != nil {
		clone.Back = n.Back.Clone()
	}
	return clone
}
