package grid

import (
	"image"

	"grid-inspector/pkg/colorutil"
)

// ColorsPresent scans every pixel of box, clipped to the raster, and returns
// the names of the palette entries matched by at least one pixel. The box is
// an approximation of the slot: pixels outside the contour but inside its
// bounding rectangle count too. An empty box reports nothing.
func ColorsPresent(r Raster, box image.Rectangle, palette []PaletteEntry, threshold float64) []string {
	box = box.Intersect(image.Rect(0, 0, r.Cols(), r.Rows()))
	if box.Empty() {
		return nil
	}

	var present []string
	for _, entry := range palette {
		if containsColor(r, box, entry.Color, threshold) {
			present = append(present, entry.Name)
		}
	}
	return present
}

// containsColor scans row-major and stops at the first match.
func containsColor(r Raster, box image.Rectangle, ref colorutil.Sample, threshold float64) bool {
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if colorutil.Similar(r.At(y, x), ref, threshold) {
				return true
			}
		}
	}
	return false
}

// ClassifySlots runs the color test on each detected slot.
func ClassifySlots(r Raster, slots []Slot, p Params) []SlotReport {
	reports := make([]SlotReport, len(slots))
	for i, s := range slots {
		reports[i] = SlotReport{
			Label:    s.Label,
			Centroid: s.Centroid,
			Bounds:   s.Bounds,
			Colors:   ColorsPresent(r, s.Bounds, p.Palette, p.ColorThreshold),
		}
	}
	return reports
}
