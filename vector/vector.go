// Package vector implements the pure 3D point/direction value used
// throughout the CSG core.
package vector

import "math"

// Vector is a 3D point or direction. It is a pure value: every operation
// returns a new Vector and never mutates its receiver or arguments.
type Vector struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector) Sub(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

// DividedBy returns v / s. Undefined (division by zero) when s is zero;
// callers are expected to only divide by a known-nonzero scalar.
func (v Vector) DividedBy(s float64) Vector {
	return Vector{v.X / s, v.Y / s, v.Z / s}
}

// Negated returns -v.
func (v Vector) Negated() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of v and w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w, a vector perpendicular to
// both.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit returns v scaled to unit length. Undefined at zero length: the
// division produces a non-finite vector, matching classical CSG engine
// behavior rather than surfacing a domain error (see DESIGN.md).
func (v Vector) Unit() Vector {
	return v.DividedBy(v.Length())
}

// Lerp returns the point that is the fraction t of the way from v to w,
// i.e. v + (w - v) * t. t is expected in [0, 1] but not clamped.
func (v Vector) Lerp(w Vector, t float64) Vector {
	return v.Add(w.Sub(v).Scale(t))
}
