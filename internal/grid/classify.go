package grid

import (
	"fmt"

	"gocv.io/x/gocv"
)

// ClassifyGrid detects the grid slots in img, tests each slot for palette
// colors and annotates img in place. The returned Result references img.
//
// Colors are sampled before annotation so the overlay cannot produce matches.
// When the slot count is not exactly ExpectedSlots the result is not
// detected and carries no slots; that is not an error.
func ClassifyGrid(img *gocv.Mat, p Params) (*Result, error) {
	if img == nil || img.Empty() {
		return nil, ErrEmptyImage
	}

	contours, err := ExtractContours(*img, p)
	if err != nil {
		return nil, fmt.Errorf("failed to extract contours: %w", err)
	}

	d := Detect(contours, p)
	result := &Result{
		Detected:  d.Detected,
		SlotCount: d.SlotCount,
		Stats:     d.Stats,
		Image:     img,
	}

	if d.Detected {
		raster, err := NewMatRaster(*img)
		if err != nil {
			return nil, fmt.Errorf("failed to read pixels: %w", err)
		}
		result.Slots = ClassifySlots(raster, d.Slots, p)
	}

	Annotate(img, contours, d)
	return result, nil
}
