package polygon

import (
	"testing"

	"github.com/bloodmagesoftware/csg/vector"
	"github.com/bloodmagesoftware/csg/vertex"
)

func square() *Polygon {
	return New([]vertex.Vertex{
		v(-1, -1, 0), v(1, -1, 0), v(1, 1, 0), v(-1, 1, 0),
	}, "square")
}

// TestFlipReversesOrientation checks that after Flip, the plane normal is
// negated and the vertex winding is reversed.
func TestFlipReversesOrientation(t *testing.T) {
	p := square()
	flipped := p.Flip()

	if flipped.Plane.Normal != p.Plane.Normal.Negated() {
		t.Errorf("flipped normal = %v, want %v", flipped.Plane.Normal, p.Plane.Normal.Negated())
	}

	n := len(p.Vertices)
	for i := 0; i < n; i++ {
		if flipped.Vertices[i].Pos != p.Vertices[n-1-i].Pos {
			t.Errorf("flipped vertex %d = %v, want reversed position %v", i, flipped.Vertices[i].Pos, p.Vertices[n-1-i].Pos)
		}
		if flipped.Vertices[i].Normal != p.Vertices[n-1-i].Normal.Negated() {
			t.Errorf("flipped vertex %d normal = %v, want %v", i, flipped.Vertices[i].Normal, p.Vertices[n-1-i].Normal.Negated())
		}
	}
	if flipped.Shared != p.Shared {
		t.Errorf("Flip changed shared tag: got %v, want %v", flipped.Shared, p.Shared)
	}
}

func TestFlipTwiceIsOriginal(t *testing.T) {
	p := square()
	twice := p.Flip().Flip()

	if twice.Plane.Normal != p.Plane.Normal {
		t.Errorf("double flip normal = %v, want %v", twice.Plane.Normal, p.Plane.Normal)
	}
	for i := range p.Vertices {
		if twice.Vertices[i].Pos != p.Vertices[i].Pos {
			t.Errorf("double flip vertex %d = %v, want %v", i, twice.Vertices[i].Pos, p.Vertices[i].Pos)
		}
	}
}

func TestCloneIsIndependentButSharesTag(t *testing.T) {
	p := square()
	clone := p.Clone()

	clone.Vertices[0] = vertex.New(vector.New(99, 99, 99), vector.New(0, 0, 1))
	if p.Vertices[0].Pos == clone.Vertices[0].Pos {
		t.Errorf("mutating clone's vertex slice affected original")
	}
	if clone.Shared != p.Shared {
		t.Errorf("Clone did not preserve shared tag by reference: got %v, want %v", clone.Shared, p.Shared)
	}
}

// TestFragmentConservation checks that for a SPANNING split, the sum of
// fragment vertex counts equals the original count plus twice the number
// of edge crossings.
func TestFragmentConservation(t *testing.T) {
	// A pentagon spanning the splitting plane with exactly 2 edge
	// crossings (the plane enters and exits the loop once each); no
	// vertex sits exactly on the plane, so the bitwise Front|Back==
	// Spanning edge test fires exactly twice.
	pentagon := New([]vertex.Vertex{
		v(-2, 0, 0),
		v(-1, -2, 0),
		v(1, -2, 0),
		v(2, 0, 0),
		v(0.5, 2, 0),
	}, nil)
	splitter := Plane{Normal: vector.New(1, 0, 0), W: 0}

	var coplanarFront, coplanarBack, front, back []*Polygon
	splitter.Split(pentagon, &coplanarFront, &coplanarBack, &front, &back)

	if len(front) != 1 || len(back) != 1 {
		t.Fatalf("expected exactly one front and one back fragment, got front=%d back=%d", len(front), len(back))
	}

	total := len(front[0].Vertices) + len(back[0].Vertices)
	want := len(pentagon.Vertices) + 2*2 // original count + 2x(2 crossings)
	if total != want {
		t.Errorf("fragment vertex count = %d, want %d", total, want)
	}
}
