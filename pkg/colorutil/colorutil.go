// Package colorutil provides shared color utilities for the grid inspector.
package colorutil

import (
	"image/color"

	"gonum.org/v1/gonum/floats"
)

// Common overlay colors used throughout the application.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// Sample is one 3-channel pixel value in OpenCV channel order (B, G, R).
type Sample struct {
	B, G, R uint8
}

func (s Sample) vec() []float64 {
	return []float64{float64(s.B), float64(s.G), float64(s.R)}
}

// Distance returns the unweighted Euclidean distance between two samples.
func Distance(a, b Sample) float64 {
	return floats.Distance(a.vec(), b.vec(), 2)
}

// Similar reports whether two samples lie strictly closer than threshold.
func Similar(a, b Sample, threshold float64) bool {
	return Distance(a, b) < threshold
}
