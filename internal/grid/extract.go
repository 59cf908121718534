package grid

import (
	"fmt"

	"gocv.io/x/gocv"
)

// ExtractContours converts the frame to grayscale, runs Canny edge detection
// and traces the edge map into the full contour tree. Contours are returned
// in the order the tracer reports them.
func ExtractContours(src gocv.Mat, p Params) ([]Contour, error) {
	if src.Empty() {
		return nil, ErrEmptyImage
	}

	gray := gocv.NewMat()
	defer gray.Close()
	if err := toGray(src, &gray); err != nil {
		return nil, err
	}

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, p.CannyLow, p.CannyHigh)

	hierarchy := gocv.NewMat()
	defer hierarchy.Close()
	traced := gocv.FindContoursWithParams(edges, &hierarchy, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer traced.Close()

	contours := make([]Contour, traced.Size())
	for i := 0; i < traced.Size(); i++ {
		contours[i] = Contour{
			Points: traced.At(i).ToPoints(),
			Parent: -1,
		}
		// Hierarchy is 1xN of [next, previous, first child, parent]
		if !hierarchy.Empty() && i < hierarchy.Cols() {
			contours[i].Parent = int(hierarchy.GetVeciAt(0, i)[3])
		}
	}
	return contours, nil
}

func toGray(src gocv.Mat, dst *gocv.Mat) error {
	switch src.Channels() {
	case 1:
		src.CopyTo(dst)
	case 3:
		gocv.CvtColor(src, dst, gocv.ColorBGRToGray)
	case 4:
		gocv.CvtColor(src, dst, gocv.ColorBGRAToGray)
	default:
		return fmt.Errorf("grayscale conversion: %w: %d", ErrUnsupportedChannels, src.Channels())
	}
	return nil
}

// LargestOutline returns the index of the largest contour whose area exceeds
// MaxSlotArea, or -1. Top-level contours win over nested ones so the outer
// edge of the grid frame is outlined rather than its inner edge. It is only
// used for annotation.
func LargestOutline(contours []Contour, p Params) int {
	best, bestTop := -1, -1
	bestArea, bestTopArea := p.MaxSlotArea, p.MaxSlotArea
	for i, c := range contours {
		a := c.Area()
		if a > bestArea {
			best, bestArea = i, a
		}
		if c.Parent < 0 && a > bestTopArea {
			bestTop, bestTopArea = i, a
		}
	}
	if bestTop >= 0 {
		return bestTop
	}
	return best
}
