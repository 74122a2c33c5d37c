// Package geometry provides the 2D value algebra the simulation is built on:
// Vector2D for displacements and velocities, Point2D for world-space positions.
// All operations use value receivers and return new values; nothing mutates.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance used by Eq for float64 comparisons.
const Epsilon = 1e-9

var (
	// ErrZeroMagnitude is returned when asking for the direction of a
	// zero-length vector.
	ErrZeroMagnitude = errors.New("geometry: cannot normalize a zero-magnitude vector")

	// ErrInvalidComponents is returned by the slice constructors when the
	// input does not hold exactly two components.
	ErrInvalidComponents = errors.New("geometry: component slice must have length 2")
)

// Vector2D represents a displacement in cartesian space.
// Public fields are fundamental data, not internal state, which allows
// clean literal initialization: v := Vector2D{X: 1, Y: 2}
type Vector2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewVector creates a new Vector2D.
func NewVector(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

// NewVectorPolar creates a new Vector2D from polar coordinates.
// theta is in radians.
func NewVectorPolar(radius, theta float64) Vector2D {
	x := radius * math.Cos(theta)
	y := radius * math.Sin(theta)

	// Snap values within Epsilon of zero so axis-aligned vectors come out exact.
	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}

	return Vector2D{X: x, Y: y}
}

// VectorFromComponents builds a Vector2D from a two-element slice.
// Any other length is a caller bug and fails with ErrInvalidComponents.
func VectorFromComponents(components []float64) (Vector2D, error) {
	if len(components) != 2 {
		return Vector2D{}, fmt.Errorf("%w, got length %d", ErrInvalidComponents, len(components))
	}
	return Vector2D{X: components[0], Y: components[1]}, nil
}

// String implements fmt.Stringer.
func (v Vector2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Add adds two vectors and returns the result.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other vector from the current vector.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{v.X - other.X, v.Y - other.Y}
}

// Mul scales the vector by a scalar value. Scalar multiplication commutes,
// so the method form loses nothing against an infix s*v.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{v.X * scalar, v.Y * scalar}
}

// Div scales the vector by 1/scalar.
// A zero scalar returns an Inf vector along with an error.
func (v Vector2D) Div(scalar float64) (Vector2D, error) {
	if scalar == 0 {
		return Vector2D{math.Inf(1), math.Inf(1)}, errors.New("vector cannot be divided by zero")
	}
	return Vector2D{v.X / scalar, v.Y / scalar}, nil
}

// Dot calculates the dot product of two vectors.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross calculates the 2D scalar cross product (z-component of the 3D cross
// product). Useful for winding order or signed area.
func (v Vector2D) Cross(other Vector2D) float64 {
	return v.X*other.Y - v.Y*other.X
}

// LenSqr calculates the squared magnitude of the vector.
// Faster than Len as it avoids the square root; use for comparisons.
func (v Vector2D) LenSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len calculates the magnitude (length) of the vector.
func (v Vector2D) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the same direction.
// It fails with ErrZeroMagnitude when the length is exactly zero; callers
// that might hold a zero vector must guard before calling.
func (v Vector2D) Normalize() (Vector2D, error) {
	l := v.Len()
	if l == 0 {
		return Vector2D{}, ErrZeroMagnitude
	}
	return v.Mul(1 / l), nil
}

// Angle returns the angle (in radians) of the vector relative to the X-axis.
// Range: [-Pi, Pi]
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Eq checks if two vectors are approximately equal using the Epsilon constant.
func (v Vector2D) Eq(other Vector2D) bool {
	return math.Abs(v.X-other.X) <= Epsilon && math.Abs(v.Y-other.Y) <= Epsilon
}
