package grid

import (
	"fmt"

	"grid-inspector/pkg/colorutil"

	"gocv.io/x/gocv"
)

// Raster gives read access to pixels by (row, col).
type Raster interface {
	Rows() int
	Cols() int
	At(row, col int) colorutil.Sample
}

// MatRaster is a read-only snapshot of a BGR or BGRA gocv.Mat.
type MatRaster struct {
	data     []byte
	rows     int
	cols     int
	channels int
}

// NewMatRaster copies the pixel data of m. Later drawing on m does not
// affect the snapshot. Region views are compacted before copying.
func NewMatRaster(m gocv.Mat) (*MatRaster, error) {
	if m.Empty() {
		return nil, ErrEmptyImage
	}
	ch := m.Channels()
	if ch != 3 && ch != 4 {
		return nil, fmt.Errorf("raster: %w: %d", ErrUnsupportedChannels, ch)
	}
	if m.Type() != gocv.MatTypeCV8UC3 && m.Type() != gocv.MatTypeCV8UC4 {
		return nil, fmt.Errorf("raster: unsupported mat type %v", m.Type())
	}

	src := m
	if !m.IsContinuous() {
		src = m.Clone()
		defer src.Close()
	}
	return &MatRaster{
		data:     src.ToBytes(),
		rows:     m.Rows(),
		cols:     m.Cols(),
		channels: ch,
	}, nil
}

func (r *MatRaster) Rows() int { return r.rows }
func (r *MatRaster) Cols() int { return r.cols }

func (r *MatRaster) At(row, col int) colorutil.Sample {
	i := (row*r.cols + col) * r.channels
	return colorutil.Sample{B: r.data[i], G: r.data[i+1], R: r.data[i+2]}
}
