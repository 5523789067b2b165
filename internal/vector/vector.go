package vector

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector2 represents a 2D vector
type Vector2 r2.Vec

// Magnitude returns the Euclidean length of the vector
func (v Vector2) Magnitude() float64 {
	return r2.Norm(r2.Vec(v))
}

// Vector3 represents a 3D vector
// X runs along the line, Y is transverse, Z is vertical
type Vector3 r3.Vec

// NewVector3 creates a new 3D vector with the given components
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3(r3.Sub(r3.Vec(v), r3.Vec(o))) }

// Scale multiplies every component by k
func (v Vector3) Scale(k float64) Vector3 { return Vector3(r3.Scale(k, r3.Vec(v))) }

// Dot returns the dot product of two vectors
func (v Vector3) Dot(o Vector3) float64 { return r3.Dot(r3.Vec(v), r3.Vec(o)) }

// Magnitude returns the Euclidean length of the vector
func (v Vector3) Magnitude() float64 {
	return r3.Norm(r3.Vec(v))
}

// Unit returns a unit vector in the same direction. The unit of the zero
// vector has NaN components.
func (v Vector3) Unit() Vector3 {
	return Vector3(r3.Unit(r3.Vec(v)))
}

// IsFinite reports whether no component is NaN or infinite
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
