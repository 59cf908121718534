package grid

import (
	"image"
	"strconv"

	"grid-inspector/pkg/colorutil"

	"gocv.io/x/gocv"
)

// Annotate draws the detection onto img in place: the grid frame outline in
// red and each slot's label at its centroid in black.
func Annotate(img *gocv.Mat, contours []Contour, d Detection) {
	if d.Outline >= 0 && d.Outline < len(contours) {
		outline := gocv.NewPointsVectorFromPoints([][]image.Point{contours[d.Outline].Points})
		gocv.DrawContours(img, outline, 0, colorutil.Red, 2)
		outline.Close()
	}

	for _, s := range d.Slots {
		gocv.PutText(img, strconv.Itoa(s.Label), s.Centroid.ToImagePoint(),
			gocv.FontHersheyComplex, 1.0, colorutil.Black, 1)
	}
}
