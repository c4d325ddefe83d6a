package polygon

import (
	"github.com/bloodmagesoftware/csg/vector"
	"github.com/bloodmagesoftware/csg/vertex"
)

// Epsilon is the tolerance distance used by Classify to decide whether a
// point lies on a plane. Configurable (package config does this, via
// Options.Apply), but it must be held to a single value for the duration
// of any one Boolean operation.
var Epsilon = 1e-5

// Classification is a two-bit classification lattice: Coplanar|X == X,
// and Front|Back == Spanning. The edge-crossing test in Split relies on
// this bit layout, not just the names.
type Classification int

const (
	Coplanar Classification = 0
	Front    Classification = 1
	Back     Classification = 2
	Spanning Classification = 3
)

// Plane is an oriented plane { p : Normal·p = W }, where Normal is a unit
// vector. Flip reverses the orientation while preserving the plane set.
type Plane struct {
	Normal vector.Vector
	W      float64
}

// NewPlane constructs the plane through three non-collinear points, with
// normal = unit((b-a) x (c-a)) and w = normal·a. Undefined for collinear
// points: the cross product is zero and Unit divides by zero, producing a
// plane with a non-finite normal. That's a caller error, not a recoverable
// condition here.
func NewPlane(a, b, c vector.Vector) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Unit()
	return Plane{Normal: n, W: n.Dot(a)}
}

// Flip reverses the plane's orientation: the plane set { p : Normal·p = W }
// is unchanged, but FRONT and BACK swap.
func (pl Plane) Flip() Plane {
	return Plane{Normal: pl.Normal.Negated(), W: -pl.W}
}

// Classify returns the classification of a single point against pl:
// Front when strictly on the positive side by more than Epsilon, Back
// when strictly on the negative side by more than Epsilon, Coplanar
// otherwise.
func (pl Plane) Classify(p vector.Vector) Classification {
	d := pl.Normal.Dot(p) - pl.W
	switch {
	case d > Epsilon:
		return Front
	case d < -Epsilon:
		return Back
	default:
		return Coplanar
	}
}

// Split classifies poly against pl and routes it (or its fragments) into
// the four bins. The bins are owned by the caller and only ever appended
// to (Split allocates no output containers of its own), so callers (the
// BSP builder, the BSP clipper) can reuse or merge bins across many
// calls.
//
//   - COPLANAR polygons go to coplanarFront or coplanarBack depending on
//     the sign of pl.Normal·poly.Plane.Normal; exactly zero goes to back.
//   - FRONT/BACK polygons are appended unchanged.
//   - SPANNING polygons are cut into two convex fragments, each emitted
//     only if it retains at least 3 vertices.
func (pl Plane) Split(poly *Polygon, coplanarFront, coplanarBack, front, back *[]*Polygon) {
	n := len(poly.Vertices)
	vertexTypes := make([]Classification, n)
	polyType := Coplanar

	for i, v := range poly.Vertices {
		t := pl.Classify(v.Pos)
		vertexTypes[i] = t
		polyType |= t
	}

	switch polyType {
	case Coplanar:
		if pl.Normal.Dot(poly.Plane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
	case Front:
		*front = append(*front, poly)
	case Back:
		*back = append(*back, poly)
	case Spanning:
		var f, b []vertex.Vertex
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ti, tj := vertexTypes[i], vertexTypes[j]
			vi, vj := poly.Vertices[i], poly.Vertices[j]

			// Vertex is a plain value type, so appending it to both f and
			// b below already gives each bin an independent copy. No
			// explicit clone step is needed the way a reference-typed
			// vertex would require.
			if ti != Back {
				f = append(f, vi)
			}
			if ti != Front {
				b = append(b, vi)
			}
			if (ti | tj) == Spanning {
				t := (pl.W - pl.Normal.Dot(vi.Pos)) / pl.Normal.Dot(vj.Pos.Sub(vi.Pos))
				v := vi.Interpolate(vj, t)
				f = append(f, v)
				b = append(b, v)
			}
		}
		if len(f) >= 3 {
			*front = append(*front, newFragment(f, poly.Shared))
		}
		if len(b) >= 3 {
			*back = append(*back, newFragment(b, poly.Shared))
		}
	}
}
