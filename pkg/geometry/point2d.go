package geometry

import (
	"fmt"
	"math"
)

// Point2D represents a position in 2D world space.
// Points and vectors are kept as distinct types on purpose: subtracting two
// points yields a displacement (a Vector2D), never another point, and a point
// is moved by adding a vector to it. The type system enforces the asymmetry.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint creates a new Point2D.
func NewPoint(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// PointFromCoordinates builds a Point2D from a two-element slice.
// Any other length is a caller bug and fails with ErrInvalidComponents.
func PointFromCoordinates(coordinates []float64) (Point2D, error) {
	if len(coordinates) != 2 {
		return Point2D{}, fmt.Errorf("%w, got length %d", ErrInvalidComponents, len(coordinates))
	}
	return Point2D{X: coordinates[0], Y: coordinates[1]}, nil
}

// String implements fmt.Stringer.
func (p Point2D) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Add translates the point by a displacement and returns the new point.
func (p Point2D) Add(displacement Vector2D) Point2D {
	return Point2D{p.X + displacement.X, p.Y + displacement.Y}
}

// Sub returns the displacement from other to p.
func (p Point2D) Sub(other Point2D) Vector2D {
	return Vector2D{p.X - other.X, p.Y - other.Y}
}

// Mul scales the point's coordinates by a scalar value.
func (p Point2D) Mul(scalar float64) Point2D {
	return Point2D{p.X * scalar, p.Y * scalar}
}

// DistanceTo calculates the Euclidean distance to another point.
func (p Point2D) DistanceTo(other Point2D) float64 {
	return p.Sub(other).Len()
}

// DistanceSquaredTo calculates the squared Euclidean distance to another point.
func (p Point2D) DistanceSquaredTo(other Point2D) float64 {
	return p.Sub(other).LenSqr()
}

// Eq checks if two points are approximately equal using the Epsilon constant.
func (p Point2D) Eq(other Point2D) bool {
	return math.Abs(p.X-other.X) <= Epsilon && math.Abs(p.Y-other.Y) <= Epsilon
}
