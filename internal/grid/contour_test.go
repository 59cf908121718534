package grid

import (
	"image"
	"testing"
)

func TestContourAreaAndBounds(t *testing.T) {
	tests := []struct {
		name   string
		c      Contour
		area   float64
		bounds image.Rectangle
	}{
		{"square", squareAt(100, 100, 60), 3600, image.Rect(70, 70, 131, 131)},
		{"reversed winding", Contour{Points: []image.Point{
			{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 50, Y: 30}, {X: 10, Y: 30},
		}}, 800, image.Rect(10, 10, 51, 31)},
		{"open segment", Contour{Points: []image.Point{{X: 5, Y: 5}, {X: 25, Y: 5}}}, 0, image.Rect(5, 5, 26, 6)},
		{"empty", Contour{}, 0, image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Area(); got != tt.area {
				t.Errorf("Area() = %v, want %v", got, tt.area)
			}
			got := tt.c.Bounds()
			if got != tt.bounds {
				t.Errorf("Bounds() = %v, want %v", got, tt.bounds)
			}
			for _, p := range tt.c.Points {
				if !p.In(got) {
					t.Errorf("point %v outside bounds %v", p, got)
				}
			}
		})
	}
}

func TestContourCentroidMatchesArea(t *testing.T) {
	c := squareAt(200, 150, 40)
	centroid, ok := c.Centroid()
	if !ok || centroid.X != 200 || centroid.Y != 150 {
		t.Errorf("Centroid() = %+v, %v", centroid, ok)
	}

	line := Contour{Points: []image.Point{{X: 0, Y: 0}, {X: 9, Y: 0}, {X: 19, Y: 0}}}
	if _, ok := line.Centroid(); ok || line.Area() != 0 {
		t.Errorf("collinear contour should be degenerate, area %v", line.Area())
	}
}
