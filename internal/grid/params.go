package grid

import "grid-inspector/pkg/colorutil"

// Ordering selects how clustered slots are numbered.
type Ordering int

const (
	// OrderReading numbers slots row by row, top to bottom, left to right,
	// using slot centroids. Independent of contour discovery order.
	OrderReading Ordering = iota
	// OrderTracerReversed numbers slots in reverse contour discovery order.
	// OpenCV reports contours bottom-right first, so this is reading order
	// only for an upright, evenly spaced grid.
	OrderTracerReversed
)

func (o Ordering) String() string {
	switch o {
	case OrderReading:
		return "Reading"
	case OrderTracerReversed:
		return "TracerReversed"
	default:
		return "Unknown"
	}
}

// PaletteEntry is a named reference color checked for presence in each slot.
type PaletteEntry struct {
	Name  string
	Color colorutil.Sample
}

// DefaultPalette returns the pure primaries in BGR channel order.
func DefaultPalette() []PaletteEntry {
	return []PaletteEntry{
		{Name: "Red", Color: colorutil.Sample{B: 0, G: 0, R: 255}},
		{Name: "Green", Color: colorutil.Sample{B: 0, G: 255, R: 0}},
		{Name: "Blue", Color: colorutil.Sample{B: 255, G: 0, R: 0}},
	}
}

// Params holds the fixed thresholds of the grid pipeline.
type Params struct {
	// Canny edge detector hysteresis thresholds
	CannyLow  float32
	CannyHigh float32

	// Contours with area at or above this are the grid frame or noise, not slots
	MaxSlotArea float64

	// Contours whose centroids are closer than this are fragments of one slot
	MergeDistance float64

	// Euclidean BGR distance below which a pixel matches a palette color
	ColorThreshold float64

	// Grid shape: a detection succeeds only with exactly ExpectedSlots slots
	ExpectedSlots int
	GridColumns   int

	Palette []PaletteEntry
	Order   Ordering
}

// DefaultParams returns the parameters for a 3x3 grid.
func DefaultParams() Params {
	return Params{
		CannyLow:       50,
		CannyHigh:      150,
		MaxSlotArea:    10000,
		MergeDistance:  20,
		ColorThreshold: 50,
		ExpectedSlots:  9,
		GridColumns:    3,
		Palette:        DefaultPalette(),
		Order:          OrderReading,
	}
}

// WithPalette returns a copy of params checking the given palette instead.
func (p Params) WithPalette(palette []PaletteEntry) Params {
	p.Palette = append([]PaletteEntry(nil), palette...)
	return p
}

// WithOrdering returns a copy of params using the given slot numbering.
func (p Params) WithOrdering(o Ordering) Params {
	p.Order = o
	return p
}
