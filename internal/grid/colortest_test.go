package grid

import (
	"image"
	"image/color"
	"image/draw"
	"reflect"
	"testing"

	"grid-inspector/pkg/colorutil"
)

// rgbaRaster reads an in-memory RGBA image so the color test can run
// without building Mats.
type rgbaRaster struct {
	img *image.RGBA
}

func (r rgbaRaster) Rows() int { return r.img.Bounds().Dy() }
func (r rgbaRaster) Cols() int { return r.img.Bounds().Dx() }

func (r rgbaRaster) At(row, col int) colorutil.Sample {
	c := r.img.RGBAAt(col, row)
	return colorutil.Sample{B: c.B, G: c.G, R: c.R}
}

func filledRaster(w, h int, c color.Color) (*image.RGBA, Raster) {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img, rgbaRaster{img: img}
}

func TestColorsPresentPureRed(t *testing.T) {
	_, r := filledRaster(100, 100, colorutil.Red)
	got := ColorsPresent(r, image.Rect(10, 10, 50, 50), DefaultPalette(), 50)
	if want := []string{"Red"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ColorsPresent = %v, want %v", got, want)
	}
}

func TestColorsPresentMixed(t *testing.T) {
	img, r := filledRaster(100, 100, colorutil.White)
	draw.Draw(img, image.Rect(10, 10, 30, 50), &image.Uniform{C: colorutil.Green}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(30, 10, 50, 50), &image.Uniform{C: colorutil.Blue}, image.Point{}, draw.Src)

	got := ColorsPresent(r, image.Rect(10, 10, 50, 50), DefaultPalette(), 50)
	if want := []string{"Green", "Blue"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ColorsPresent = %v, want %v", got, want)
	}
}

func TestColorsPresentScansWholeBox(t *testing.T) {
	img, r := filledRaster(100, 100, colorutil.White)
	// A single near-red pixel in the far corner of the box
	img.Set(49, 49, color.RGBA{R: 230, G: 20, B: 10, A: 255})

	got := ColorsPresent(r, image.Rect(10, 10, 50, 50), DefaultPalette(), 50)
	if want := []string{"Red"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ColorsPresent = %v, want %v", got, want)
	}

	// Just outside the box is ignored
	got = ColorsPresent(r, image.Rect(10, 10, 49, 49), DefaultPalette(), 50)
	if len(got) != 0 {
		t.Errorf("ColorsPresent outside box = %v, want none", got)
	}
}

func TestColorsPresentEmptyBox(t *testing.T) {
	_, r := filledRaster(20, 20, colorutil.Red)
	tests := []struct {
		name string
		box  image.Rectangle
	}{
		{"zero", image.Rectangle{}},
		{"zero width", image.Rect(5, 5, 5, 15)},
		{"zero height", image.Rect(5, 5, 15, 5)},
		{"outside raster", image.Rect(40, 40, 60, 60)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorsPresent(r, tt.box, DefaultPalette(), 50); len(got) != 0 {
				t.Errorf("ColorsPresent = %v, want none", got)
			}
		})
	}
}

func TestColorsPresentClipsToRaster(t *testing.T) {
	_, r := filledRaster(20, 20, colorutil.Blue)
	got := ColorsPresent(r, image.Rect(-10, -10, 100, 100), DefaultPalette(), 50)
	if want := []string{"Blue"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ColorsPresent = %v, want %v", got, want)
	}
}

func TestClassifySlots(t *testing.T) {
	img, r := filledRaster(400, 400, colorutil.White)
	contours := gridContours(3, 3)
	d := Detect(contours, DefaultParams())
	if !d.Detected {
		t.Fatal("Detected = false")
	}

	// Slot 1 red, slot 5 red+green, slot 9 blue
	fill := func(label int, c color.Color, half bool) {
		b := d.Slots[label-1].Bounds
		if half {
			b.Min.X = (b.Min.X + b.Max.X) / 2
		}
		draw.Draw(img, b, &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
	fill(1, colorutil.Red, false)
	fill(5, colorutil.Red, false)
	fill(5, colorutil.Green, true)
	fill(9, colorutil.Blue, false)

	reports := ClassifySlots(r, d.Slots, DefaultParams())
	want := map[int][]string{1: {"Red"}, 5: {"Red", "Green"}, 9: {"Blue"}}
	for _, rep := range reports {
		if !reflect.DeepEqual(rep.Colors, want[rep.Label]) {
			t.Errorf("slot %d colors = %v, want %v", rep.Label, rep.Colors, want[rep.Label])
		}
	}
	if !reports[4].Has("Green") || reports[4].Has("Blue") {
		t.Errorf("Has mismatch for slot 5: %v", reports[4].Colors)
	}
}

func TestWithPaletteCopies(t *testing.T) {
	palette := []PaletteEntry{{Name: "White", Color: colorutil.Sample{B: 255, G: 255, R: 255}}}
	p := DefaultParams().WithPalette(palette)
	palette[0].Name = "changed"
	if p.Palette[0].Name != "White" {
		t.Errorf("WithPalette aliases its argument")
	}
	if len(DefaultParams().Palette) != 3 {
		t.Errorf("default palette modified")
	}
}
