// Package vertex implements the position+normal value carried at the
// corners of a polygon.
package vertex

import "github.com/bloodmagesoftware/csg/vector"

// Vertex is a point on a polygon's boundary plus the orientation-carrying
// normal at that point. Value semantics throughout: a Vertex is cheap to
// copy and every operation returns a new Vertex.
type Vertex struct {
	Pos    vector.Vector
	Normal vector.Vector
}

// New returns a Vertex at pos with the given normal.
func New(pos, normal vector.Vector) Vertex {
	return Vertex{Pos: pos, Normal: normal}
}

// Flip returns a copy of v with its normal negated. Position is unchanged.
func (v Vertex) Flip() Vertex {
	return Vertex{Pos: v.Pos, Normal: v.Normal.Negated()}
}

// Interpolate returns a new vertex whose position and normal are each
// linearly blended between v and other by t. Implementers adding
// additional per-vertex attributes (UVs, colors, ...) must interpolate
// them here too, in the same operation, to preserve fragment continuity
// across polygon splits.
func (v Vertex) Interpolate(other Vertex, t float64) Vertex {
	return Vertex{
		Pos:    v.Pos.Lerp(other.Pos, t),
		Normal: v.Normal.Lerp(other.Normal, t),
	}
}
