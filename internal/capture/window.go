package capture

import "gocv.io/x/gocv"

// KeyEscape is the key code that ends the camera loop.
const KeyEscape = 27

// Display shows frames and reports key presses.
type Display interface {
	Show(img gocv.Mat)
	WaitKey(delayMs int) int
	Close() error
}

// Window is an OpenCV HighGUI window.
type Window struct {
	w *gocv.Window
}

// NewWindow opens a named window.
func NewWindow(title string) *Window {
	return &Window{w: gocv.NewWindow(title)}
}

// Show displays img.
func (w *Window) Show(img gocv.Mat) {
	w.w.IMShow(img)
}

// WaitKey waits up to delayMs milliseconds (0 means forever) for a key
// press and returns its code, or -1.
func (w *Window) WaitKey(delayMs int) int {
	return w.w.WaitKey(delayMs)
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.w.Close()
}
