package geometry

import "image"

// Moments holds the zeroth and first order spatial moments of a closed polygon.
// M00 is the signed enclosed area; its sign depends on winding direction.
type Moments struct {
	M00, M10, M01 float64
}

// PolygonMoments computes the moments of the region enclosed by a closed
// polygon using Green's theorem, as cv::moments does for a contour. gocv only
// exposes Moments for rasters, so contour centroids are derived here.
func PolygonMoments(points []image.Point) Moments {
	n := len(points)
	if n < 3 {
		return Moments{}
	}

	var a, cx, cy float64
	for i := 0; i < n; i++ {
		p := points[i]
		q := points[(i+1)%n]
		xi, yi := float64(p.X), float64(p.Y)
		xj, yj := float64(q.X), float64(q.Y)
		cross := xi*yj - xj*yi
		a += cross
		cx += (xi + xj) * cross
		cy += (yi + yj) * cross
	}

	return Moments{
		M00: a / 2,
		M10: cx / 6,
		M01: cy / 6,
	}
}

// Centroid returns the area-weighted mean position. The second return value
// is false when the polygon encloses no area and the centroid is undefined.
func (m Moments) Centroid() (Point2D, bool) {
	if m.M00 == 0 {
		return Point2D{}, false
	}
	return Point2D{X: m.M10 / m.M00, Y: m.M01 / m.M00}, true
}
