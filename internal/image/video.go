package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"gocv.io/x/gocv"
)

// ErrNoFrame is returned when the requested frame lies past the end of the video.
var ErrNoFrame = errors.New("no frame at requested index")

// VideoFrame extracts the frame at index (0-based) from a video file using
// ffmpeg and decodes it into a BGR Mat. The caller owns the returned Mat.
func VideoFrame(ctx context.Context, path string, index int) (gocv.Mat, error) {
	if index < 0 {
		return gocv.Mat{}, fmt.Errorf("invalid frame index %d", index)
	}

	var out, stderr bytes.Buffer
	cmd := ffmpeg.Input(path).
		Filter("select", ffmpeg.Args{fmt.Sprintf("gte(n,%d)", index)}).
		Output("pipe:1", ffmpeg.KwArgs{
			"vframes": 1,
			"format":  "image2pipe",
			"vcodec":  "png",
		}).
		WithOutput(&out).
		WithErrorOutput(&stderr)
	cmd.Context = ctx

	if err := cmd.Run(); err != nil {
		return gocv.Mat{}, fmt.Errorf("ffmpeg: %w: %s", err, lastLine(stderr.String()))
	}
	if out.Len() == 0 {
		return gocv.Mat{}, fmt.Errorf("%s frame %d: %w", path, index, ErrNoFrame)
	}

	mat, err := gocv.IMDecode(out.Bytes(), gocv.IMReadColor)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to decode frame: %w", err)
	}
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("%s frame %d: %w", path, index, ErrNoFrame)
	}
	return mat, nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
