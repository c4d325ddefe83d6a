// Package solid implements the Boolean set operations (Union, Subtract,
// Intersect, Inverse) over polygon-list solids, each expressed as a short
// choreography of bsp.Node.Build/Invert/ClipTo, the primitive operations
// of Naylor/Thibault/Amanatides' BSP approach.
package solid

import (
	"github.com/bloodmagesoftware/csg/bsp"
	"github.com/bloodmagesoftware/csg/polygon"
)

// Solid wraps an immutable polygon list. The public API never mutates an
// input Solid: Union, Subtract and Intersect build fresh BSP trees from
// deep clones of the operand polygon lists, and Inverse returns flipped
// copies.
type Solid struct {
	polygons []*polygon.Polygon
}

// New wraps polys as a Solid. polys is not copied; callers must not
// mutate it afterward. Once handed to the engine, a polygon list is
// treated as immutable.
func New(polys []*polygon.Polygon) *Solid {
	return &Solid{polygons: polys}
}

// Polygons returns the solid's polygon list. Callers must not mutate it.
func (s *Solid) Polygons() []*polygon.Polygon {
	return s.polygons
}

func clonePolygons(polys []*polygon.Polygon) []*polygon.Polygon {
	out := make([]*polygon.Polygon, len(polys))
	for i, p := range polys {
		out[i] = p.Clone()
	}
	return out
}

func buildTree(polys []*polygon.Polygon) *bsp.Node {
	n := bsp.New()
	n.Build(polys)
	return n
}

// Union returns a new Solid containing every point inside s or other (or
// both).
//
//	a.clipTo(b); b.clipTo(a); b.invert(); b.clipTo(a); b.invert()
//	a.build(b.allPolygons())
//	return Solid(a.allPolygons())
//
// The extra invert/clip/invert on b removes the duplicated coplanar
// overlap that survives the first two clips, keeping those coplanars in
// a's tree only. This ordering is not commutative and must be preserved
// exactly.
func (s *Solid) Union(other *Solid) *Solid {
	a := buildTree(clonePolygons(s.polygons))
	b := buildTree(clonePolygons(other.polygons))

	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	a.Build(b.AllPolygons())

	return New(a.AllPolygons())
}

// Subtract returns a new Solid containing every point inside s but not
// inside other: A − B = ¬(¬A ∪ B).
//
//	a.invert(); a.clipTo(b); b.clipTo(a); b.invert(); b.clipTo(a); b.invert()
//	a.build(b.allPolygons()); a.invert()
//	return Solid(a.allPolygons())
func (s *Solid) Subtract(other *Solid) *Solid {
	a := buildTree(clonePolygons(s.polygons))
	b := buildTree(clonePolygons(other.polygons))

	a.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	b.Invert()
	b.ClipTo(a)
	b.Invert()
	a.Build(b.AllPolygons())
	a.Invert()

	return New(a.AllPolygons())
}

// Intersect returns a new Solid containing every point inside both s and
// other: A ∩ B = ¬(¬A ∪ ¬B).
//
//	a.invert(); b.clipTo(a); b.invert(); a.clipTo(b); b.clipTo(a)
//	a.build(b.allPolygons()); a.invert()
//	return Solid(a.allPolygons())
func (s *Solid) Intersect(other *Solid) *Solid {
	a := buildTree(clonePolygons(s.polygons))
	b := buildTree(clonePolygons(other.polygons))

	a.Invert()
	b.ClipTo(a)
	b.Invert()
	a.ClipTo(b)
	b.ClipTo(a)
	a.Build(b.AllPolygons())
	a.Invert()

	return New(a.AllPolygons())
}

// Inverse returns a new Solid occupying the complement of s's space:
// every polygon flipped, no BSP tree involved (only the polygon set is
// exported, so the complement is purely an orientation flip).
func (s *Solid) Inverse() *Solid {
	out := make([]*polygon.Polygon, len(s.polygons))
	for i, p := range s.polygons {
		// Flip already allocates an independent vertex slice and plane,
		// so it doubles as the deep copy Inverse needs.
		out[i] = p.Flip()
	}
	return New(out)
}
