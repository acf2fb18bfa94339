// Package geometry provides 2D point arithmetic.
package geometry

import "math"

// Point is a location in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Origin is the point (0, 0).
var Origin = Point{}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceTo returns the Euclidean distance from p to other.
func (p Point) DistanceTo(other Point) float64 {
	return Distance(p, other)
}

// DistanceFromOrigin returns the Euclidean distance from p to (0, 0).
func (p Point) DistanceFromOrigin() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}
