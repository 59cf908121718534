// Package capture wraps a live camera and a display window for the
// frame-by-frame inspection loop.
package capture

import (
	"errors"
	"fmt"
	"log"

	"gocv.io/x/gocv"
)

var (
	// ErrCameraUnavailable is returned when the capture device cannot be opened.
	ErrCameraUnavailable = errors.New("unable to access webcam")
	// ErrFrameEmpty is returned when the device delivers no frame.
	ErrFrameEmpty = errors.New("unable to capture frame")
)

// Source produces frames into a caller-owned Mat.
type Source interface {
	Read(dst *gocv.Mat) error
	Close() error
}

// Camera is an open video capture device.
type Camera struct {
	device int
	vc     *gocv.VideoCapture
}

// OpenCamera opens the capture device with the given index. The returned
// Camera must be closed.
func OpenCamera(device int) (*Camera, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("camera %d: %w: %v", device, ErrCameraUnavailable, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("camera %d: %w", device, ErrCameraUnavailable)
	}
	log.Printf("Camera: opened device %d (%.0fx%.0f)", device,
		vc.Get(gocv.VideoCaptureFrameWidth), vc.Get(gocv.VideoCaptureFrameHeight))
	return &Camera{device: device, vc: vc}, nil
}

// Read grabs the next frame into dst.
func (c *Camera) Read(dst *gocv.Mat) error {
	if ok := c.vc.Read(dst); !ok || dst.Empty() {
		return fmt.Errorf("camera %d: %w", c.device, ErrFrameEmpty)
	}
	return nil
}

// Close releases the device.
func (c *Camera) Close() error {
	log.Printf("Camera: releasing device %d", c.device)
	return c.vc.Close()
}
