// Package image loads single frames from image and video files as gocv Mats.
package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrUnreadable is returned when a file exists but no decoder can read it.
	ErrUnreadable = errors.New("unable to read the image file")
	// ErrUnsupportedFormat is returned for extensions no decoder is registered for.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// SupportedFormats returns the file extensions Load accepts.
func SupportedFormats() []string {
	return []string{".tiff", ".tif", ".png", ".jpg", ".jpeg", ".bmp", ".webp"}
}

// IsSupportedFormat reports whether the extension of path is one Load accepts.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

// Load reads an image file into a non-empty 3-channel BGR Mat. OpenCV's
// decoders are tried first; formats it was built without fall back to the
// Go decoders. The caller owns the returned Mat.
func Load(path string) (gocv.Mat, error) {
	if !IsSupportedFormat(path) {
		return gocv.Mat{}, fmt.Errorf("%s: %w (want one of %s)", path, ErrUnsupportedFormat,
			strings.Join(SupportedFormats(), ", "))
	}
	if _, err := os.Stat(path); err != nil {
		return gocv.Mat{}, fmt.Errorf("image file not found: %w", err)
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if !mat.Empty() {
		return mat, nil
	}
	mat.Close()

	img, err := decodeFile(path)
	if err != nil {
		return gocv.Mat{}, err
	}
	mat = FromImage(img)
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("%s: %w", path, ErrUnreadable)
	}
	return mat, nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrUnreadable, err)
	}
	return img, nil
}

// FromImage converts a Go image.Image to a BGR OpenCV Mat.
func FromImage(srcImg image.Image) gocv.Mat {
	bounds := srcImg.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := srcImg.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// Convert from 16-bit to 8-bit and BGR order for OpenCV
			mat.SetUCharAt(y, x*3+0, uint8(b>>8))
			mat.SetUCharAt(y, x*3+1, uint8(g>>8))
			mat.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}

	return mat
}
