package grid

import (
	"errors"
	"image"
	"testing"

	"grid-inspector/pkg/colorutil"

	"gocv.io/x/gocv"
)

func TestMatRasterSnapshot(t *testing.T) {
	m := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 20, 30, gocv.MatTypeCV8UC3)
	defer m.Close()
	gocv.Rectangle(&m, image.Rect(5, 4, 9, 8), colorutil.Red, -1)

	r, err := NewMatRaster(m)
	if err != nil {
		t.Fatalf("NewMatRaster: %v", err)
	}
	if r.Rows() != 20 || r.Cols() != 30 {
		t.Fatalf("raster is %dx%d, want 20x30", r.Rows(), r.Cols())
	}
	if got := r.At(6, 7); got != (colorutil.Sample{R: 255}) {
		t.Errorf("At(6,7) = %+v, want red", got)
	}

	// Drawing after the snapshot is not visible through it
	gocv.Rectangle(&m, image.Rect(0, 0, 30, 20), colorutil.Blue, -1)
	if got := r.At(6, 7); got != (colorutil.Sample{R: 255}) {
		t.Errorf("snapshot changed after drawing: %+v", got)
	}
}

func TestMatRasterRegionView(t *testing.T) {
	m := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0), 40, 60, gocv.MatTypeCV8UC3)
	defer m.Close()
	gocv.Rectangle(&m, image.Rect(25, 15, 27, 17), colorutil.Green, -1)

	roi := m.Region(image.Rect(20, 10, 40, 30))
	defer roi.Close()
	if roi.IsContinuous() {
		t.Fatal("expected a non-continuous region view")
	}

	r, err := NewMatRaster(roi)
	if err != nil {
		t.Fatalf("NewMatRaster: %v", err)
	}
	if r.Rows() != 20 || r.Cols() != 20 {
		t.Fatalf("raster is %dx%d, want 20x20", r.Rows(), r.Cols())
	}
	if got := r.At(5, 5); got != (colorutil.Sample{G: 255}) {
		t.Errorf("At(5,5) = %+v, want green", got)
	}
	if got := r.At(19, 19); got != (colorutil.Sample{B: 255, G: 255, R: 255}) {
		t.Errorf("At(19,19) = %+v, want white", got)
	}
	if got := ColorsPresent(r, image.Rect(0, 0, 20, 20), DefaultPalette(), 50); len(got) != 1 || got[0] != "Green" {
		t.Errorf("ColorsPresent on region = %v, want [Green]", got)
	}
}

func TestMatRasterRejectsGray(t *testing.T) {
	m := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8U)
	defer m.Close()
	if _, err := NewMatRaster(m); !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("err = %v, want ErrUnsupportedChannels", err)
	}
}
