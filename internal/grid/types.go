// Package grid detects the nine slots of a 3x3 grid in a single frame and
// reports which palette colors appear inside each slot.
package grid

import (
	"errors"
	"image"

	"grid-inspector/pkg/geometry"

	"gocv.io/x/gocv"
)

var (
	// ErrEmptyImage is returned when the pipeline is handed an empty Mat.
	ErrEmptyImage = errors.New("empty image")
	// ErrUnsupportedChannels is returned for Mats that are not 1, 3 or 4 channel.
	ErrUnsupportedChannels = errors.New("unsupported channel count")
)

// Contour is a closed boundary curve as traced from the edge map.
type Contour struct {
	Points []image.Point
	Parent int // index of the enclosing contour, -1 at the top level
}

// Area returns the enclosed area of the contour.
func (c Contour) Area() float64 {
	if len(c.Points) == 0 {
		return 0
	}
	pv := gocv.NewPointVectorFromPoints(c.Points)
	defer pv.Close()
	return gocv.ContourArea(pv)
}

// Centroid returns the area-weighted centre of the contour. It reports false
// for contours enclosing no area.
func (c Contour) Centroid() (geometry.Point2D, bool) {
	return geometry.PolygonMoments(c.Points).Centroid()
}

// Bounds returns the axis-aligned rectangle containing every contour point.
func (c Contour) Bounds() image.Rectangle {
	if len(c.Points) == 0 {
		return image.Rectangle{}
	}
	pv := gocv.NewPointVectorFromPoints(c.Points)
	defer pv.Close()
	return gocv.BoundingRect(pv)
}

// Slot is one grid cell after clustering and ordering.
type Slot struct {
	Label    int // 1-based, in numbering order
	Contour  int // index into the contour list of the representative curve
	Centroid geometry.Point2D
	Bounds   image.Rectangle
}

// ClusterStats counts what happened to contours during clustering.
type ClusterStats struct {
	Contours   int // contours handed to clustering
	Oversize   int // area at or above MaxSlotArea
	Degenerate int // zero area, centroid undefined
	Merged     int // absorbed into an earlier representative
}

// Detection is the rendering-free outcome of slot detection.
type Detection struct {
	Detected  bool
	SlotCount int    // slots that survived clustering
	Slots     []Slot // populated only when Detected
	Outline   int    // index of the largest frame-sized contour, -1 if none
	Stats     ClusterStats
}

// SlotReport is the color result for one labelled slot.
type SlotReport struct {
	Label    int
	Centroid geometry.Point2D
	Bounds   image.Rectangle
	Colors   []string // palette names present, in palette order
}

// Has reports whether the named palette color was found in the slot.
func (s SlotReport) Has(name string) bool {
	for _, c := range s.Colors {
		if c == name {
			return true
		}
	}
	return false
}

// Result holds the outcome of ClassifyGrid for one frame.
type Result struct {
	Detected  bool
	SlotCount int
	Slots     []SlotReport
	Stats     ClusterStats
	Image     *gocv.Mat // the annotated input, same Mat the caller passed in
}
