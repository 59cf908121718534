package capture

import (
	"context"

	"gocv.io/x/gocv"
)

// FrameFunc processes one frame. It may draw on img before it is shown.
type FrameFunc func(img *gocv.Mat) error

// Run reads frames from src, passes each to fn and shows the result until
// Escape is pressed, ctx is cancelled, or reading or processing fails.
// Cancellation is only checked between frames. Run closes src on return.
func Run(ctx context.Context, src Source, display Display, fn FrameFunc) (err error) {
	defer func() {
		if cerr := src.Close(); err == nil {
			err = cerr
		}
	}()

	img := gocv.NewMat()
	defer img.Close()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := src.Read(&img); err != nil {
			return err
		}
		if err := fn(&img); err != nil {
			return err
		}
		display.Show(img)
		if display.WaitKey(1) == KeyEscape {
			return nil
		}
	}
}
