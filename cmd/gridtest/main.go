// Command gridtest runs grid slot detection on an image or video frame and outputs results.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"grid-inspector/internal/grid"
	gridimage "grid-inspector/internal/image"
	"grid-inspector/internal/version"

	"gocv.io/x/gocv"
)

func main() {
	formats := strings.Join(gridimage.SupportedFormats(), ", ")
	imagePath := flag.String("image", "", "Path to grid image ("+formats+")")
	videoPath := flag.String("video", "", "Path to a video file, instead of -image")
	frame := flag.Int("frame", 0, "Frame index to inspect with -video")
	outPath := flag.String("out", "", "Write the annotated image to this path")
	order := flag.String("order", "reading", "Slot numbering: reading or tracer")
	flag.Parse()

	if *imagePath == "" && *videoPath == "" {
		fmt.Println("Usage: gridtest -image <path> | -video <path> [-frame N] [-out annotated.png] [-order reading|tracer]")
		os.Exit(1)
	}
	if *imagePath != "" && !gridimage.IsSupportedFormat(*imagePath) {
		fmt.Fprintf(os.Stderr, "Unsupported image format %q (supported: %s)\n", *imagePath, formats)
		os.Exit(1)
	}

	fmt.Printf("gridtest %s\n", version.String())

	// Load image
	var img gocv.Mat
	var err error
	if *imagePath != "" {
		img, err = gridimage.Load(*imagePath)
	} else {
		img, err = gridimage.VideoFrame(context.Background(), *videoPath, *frame)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}
	defer img.Close()

	fmt.Printf("Loaded image: %dx%d pixels, %d channels\n", img.Cols(), img.Rows(), img.Channels())

	params := grid.DefaultParams()
	switch *order {
	case "reading":
	case "tracer":
		params = params.WithOrdering(grid.OrderTracerReversed)
	default:
		fmt.Fprintf(os.Stderr, "Unknown order %q\n", *order)
		os.Exit(1)
	}

	fmt.Printf("\nDetection parameters:\n")
	fmt.Printf("  Canny: %.0f/%.0f\n", params.CannyLow, params.CannyHigh)
	fmt.Printf("  Max slot area: %.0f px\n", params.MaxSlotArea)
	fmt.Printf("  Merge distance: %.0f px\n", params.MergeDistance)
	fmt.Printf("  Color threshold: %.0f\n", params.ColorThreshold)
	fmt.Printf("  Slots: %d in %d columns, %s order\n", params.ExpectedSlots, params.GridColumns, params.Order)

	// Run detection
	fmt.Printf("\nDetecting grid...\n")
	result, err := grid.ClassifyGrid(&img, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Detection failed: %v\n", err)
		os.Exit(1)
	}

	st := result.Stats
	fmt.Printf("Contours: %d traced, %d oversize, %d degenerate, %d merged -> %d slots\n",
		st.Contours, st.Oversize, st.Degenerate, st.Merged, result.SlotCount)

	if result.Detected {
		fmt.Printf("\n%-6s %10s %10s %20s  %s\n", "Slot", "X", "Y", "Bounds", "Colors")
		fmt.Println(strings.Repeat("-", 72))
		for _, s := range result.Slots {
			colors := "-"
			if len(s.Colors) > 0 {
				colors = strings.Join(s.Colors, ", ")
			}
			fmt.Printf("%-6d %10.1f %10.1f %20s  %s\n", s.Label, s.Centroid.X, s.Centroid.Y, s.Bounds, colors)
		}
		fmt.Println()
	}
	for _, line := range result.Lines() {
		fmt.Println(line)
	}

	if *outPath != "" {
		if ok := gocv.IMWrite(*outPath, *result.Image); !ok {
			fmt.Fprintf(os.Stderr, "Failed to write %s\n", *outPath)
			os.Exit(1)
		}
		fmt.Printf("Annotated image written to %s\n", *outPath)
	}
}
