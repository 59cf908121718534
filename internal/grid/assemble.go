package grid

import (
	"sort"
)

// Assemble gates the clustered representatives on the expected slot count
// and numbers them. Representatives are reversed first; OrderReading then
// re-sorts them into rows by centroid.
func Assemble(contours []Contour, reps []int, p Params) Detection {
	d := Detection{SlotCount: len(reps), Outline: -1}
	if len(reps) != p.ExpectedSlots {
		return d
	}

	slots := make([]Slot, 0, len(reps))
	for i := len(reps) - 1; i >= 0; i-- {
		c := contours[reps[i]]
		centroid, _ := c.Centroid()
		slots = append(slots, Slot{
			Contour:  reps[i],
			Centroid: centroid,
			Bounds:   c.Bounds(),
		})
	}

	if p.Order == OrderReading {
		sortReadingOrder(slots, p.GridColumns)
	}

	for i := range slots {
		slots[i].Label = i + 1
	}
	d.Detected = true
	d.Slots = slots
	return d
}

// sortReadingOrder sorts slots into rows of cols slots each, top to bottom,
// and each row left to right. Grids are assumed upright.
func sortReadingOrder(slots []Slot, cols int) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Centroid.Y < slots[j].Centroid.Y
	})
	if cols <= 0 {
		return
	}
	for start := 0; start < len(slots); start += cols {
		end := min(start+cols, len(slots))
		row := slots[start:end]
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].Centroid.X < row[j].Centroid.X
		})
	}
}

// Detect runs clustering and assembly on traced contours without touching
// any image.
func Detect(contours []Contour, p Params) Detection {
	cr := Cluster(contours, p)
	d := Assemble(contours, cr.Representatives, p)
	d.Stats = cr.Stats
	d.Outline = LargestOutline(contours, p)
	return d
}
