// Package physics holds the 2D math used by the simulation: vectors,
// angle and wrap helpers for the toroidal field, and circle collision.
package physics

import "math"

// Vector2D is a point or direction in field coordinates.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies both components by factor.
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{X: v.X * factor, Y: v.Y * factor}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared avoids the square root for comparisons.
func (v Vector2D) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction, or the zero vector.
func (v Vector2D) Normalize() Vector2D {
	length := v.Length()
	if length == 0 {
		return Vector2D{}
	}
	return Vector2D{X: v.X / length, Y: v.Y / length}
}

// Distance returns the euclidean distance between two points.
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// Rotate rotates the vector counter-clockwise by degrees.
func (v Vector2D) Rotate(degrees float64) Vector2D {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vector2D{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromDegrees creates a vector of the given magnitude pointing at angle
// degrees, measured counter-clockwise from the +X axis.
func FromDegrees(degrees, magnitude float64) Vector2D {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vector2D{X: magnitude * cos, Y: magnitude * sin}
}
