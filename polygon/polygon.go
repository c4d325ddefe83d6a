// Package polygon implements the convex, coplanar polygon that is the
// unit of exchange between the CSG core and its producers/consumers,
// along with the Plane it is derived from and the plane-splitting
// predicate that fragments polygons during BSP construction and
// clipping.
package polygon

import "github.com/bloodmagesoftware/csg/vertex"

// Polygon is an ordered, convex, coplanar loop of at least 3 vertices,
// wound counter-clockwise as seen from the side its plane's normal points
// toward. Shared is an opaque tag forwarded by reference to every clone
// and split fragment. The engine never inspects it; it exists purely so
// callers can track provenance (e.g. "which material/face this came
// from") across Boolean operations.
type Polygon struct {
	Vertices []vertex.Vertex
	Plane    Plane
	Shared   any
}

// New builds a Polygon from vertices and an opaque shared tag. The plane
// is derived from the first three vertices; New panics if there are
// fewer than 3, a caller error, not a recoverable condition.
func New(vertices []vertex.Vertex, shared any) *Polygon {
	if len(vertices) < 3 {
		panic("polygon: at least 3 vertices required")
	}
	return &Polygon{
		Vertices: vertices,
		Plane:    NewPlane(vertices[0].Pos, vertices[1].Pos, vertices[2].Pos),
		Shared:   shared,
	}
}

// newFragment is New without the panic guard, used internally by Split
// where the >= 3 check has already been performed by the caller.
func newFragment(vertices []vertex.Vertex, shared any) *Polygon {
	return &Polygon{
		Vertices: vertices,
		Plane:    NewPlane(vertices[0].Pos, vertices[1].Pos, vertices[2].Pos),
		Shared:   shared,
	}
}

// Clone returns a shallow copy of p: a new Vertices slice with the same
// vertex values, the same Plane, and the same Shared reference. The
// opaque tag is always shared by identity, never deep-copied.
func (p *Polygon) Clone() *Polygon {
	vertices := make([]vertex.Vertex, len(p.Vertices))
	copy(vertices, p.Vertices)
	return &Polygon{
		Vertices: vertices,
		Plane:    p.Plane,
		Shared:   p.Shared,
	}
}

// Flip returns a new polygon with the vertex loop reversed, every vertex
// flipped, and the plane flipped: the opposite orientation of the same
// boundary.
func (p *Polygon) Flip() *Polygon {
	n := len(p.Vertices)
	vertices := make([]vertex.Vertex, n)
	for i, v := range p.Vertices {
		vertices[n-1-i] = v.Flip()
	}
	return &Polygon{
		Vertices: vertices,
		Plane:    p.Plane.Flip(),
		Shared:   p.Shared,
	}
}
