// Package geometry provides the 2-D value types shared by all layout
// strategies: points for node positions and vectors for accumulated
// forces and velocities. Both are plain value types with no behavior
// beyond basic arithmetic.
package geometry

import "math"

// Point is a 2-D position in layout space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector is a 2-D displacement, used for forces and velocities.
type Vector struct {
	DX float64
	DY float64
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{DX: v.DX + w.DX, DY: v.DY + w.DY}
}

// Scale returns v with both components multiplied by s.
func (v Vector) Scale(s float64) Vector {
	return Vector{DX: v.DX * s, DY: v.DY * s}
}

// Length returns the Euclidean magnitude of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Sub returns the vector from q to p (p minus q).
func (p Point) Sub(q Point) Vector {
	return Vector{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Translate returns p shifted by v.
func (p Point) Translate(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return p.Sub(q).Length()
}
