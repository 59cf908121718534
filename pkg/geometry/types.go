// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"image"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	return r2.Norm(r2.Sub(p.vec(), other.vec()))
}

// ToImagePoint truncates the coordinates toward zero, matching how pixel
// positions are derived from moments elsewhere in OpenCV code.
func (p Point2D) ToImagePoint() image.Point {
	return image.Point{X: int(p.X), Y: int(p.Y)}
}

func (p Point2D) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}
