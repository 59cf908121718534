// Package main provides the interactive entry point for the grid inspector.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"grid-inspector/internal/capture"
	"grid-inspector/internal/grid"
	gridimage "grid-inspector/internal/image"
	"grid-inspector/internal/version"

	"gocv.io/x/gocv"
)

const appTitle = "Grid Inspector"

func main() {
	imagePath := flag.String("image", "", "Path to an image file (skips the menu)")
	videoPath := flag.String("video", "", "Path to a video file (skips the menu)")
	frame := flag.Int("frame", 0, "Frame index to inspect with -video")
	camera := flag.Int("camera", -1, "Camera device index (skips the menu)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", appTitle, version.String())
		return
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case *imagePath != "":
		err = processImage(*imagePath)
	case *videoPath != "":
		err = processVideo(ctx, *videoPath, *frame)
	case *camera >= 0:
		err = processWebcam(ctx, *camera)
	default:
		err = runMenu(ctx, bufio.NewReader(os.Stdin), os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runMenu asks for the input source and dispatches to it.
func runMenu(ctx context.Context, in *bufio.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Choose an option:")
	fmt.Fprintln(out, "1. Use an image")
	fmt.Fprintln(out, "2. Use a webcam")
	fmt.Fprintln(out, "3. Use a video file")
	choice := prompt(in, out, "Enter your choice (1, 2 or 3): ")

	switch choice {
	case "1":
		return processImage(prompt(in, out, "Enter the path to the image file: "))
	case "2":
		return processWebcam(ctx, 0)
	case "3":
		path := prompt(in, out, "Enter the path to the video file: ")
		index, err := strconv.Atoi(prompt(in, out, "Enter the frame number: "))
		if err != nil {
			return fmt.Errorf("invalid frame number: %w", err)
		}
		return processVideo(ctx, path, index)
	default:
		fmt.Fprintln(out, "Invalid choice. Exiting...")
		return nil
	}
}

func prompt(in *bufio.Reader, out io.Writer, question string) string {
	fmt.Fprint(out, question)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func processImage(path string) error {
	img, err := gridimage.Load(path)
	if err != nil {
		return err
	}
	defer img.Close()

	return classifyAndShow(&img, "Detected Grid")
}

func processVideo(ctx context.Context, path string, index int) error {
	img, err := gridimage.VideoFrame(ctx, path, index)
	if err != nil {
		return fmt.Errorf("failed to read video frame: %w", err)
	}
	defer img.Close()

	return classifyAndShow(&img, fmt.Sprintf("Detected Grid (frame %d)", index))
}

func classifyAndShow(img *gocv.Mat, title string) error {
	result, err := grid.ClassifyGrid(img, grid.DefaultParams())
	if err != nil {
		return fmt.Errorf("grid classification failed: %w", err)
	}
	if !result.Detected {
		st := result.Stats
		log.Printf("Grid: %d candidate slots (%d contours, %d merged, %d oversize, %d degenerate)",
			result.SlotCount, st.Contours, st.Merged, st.Oversize, st.Degenerate)
	}
	for _, line := range result.Lines() {
		fmt.Println(line)
	}

	win := capture.NewWindow(title)
	defer win.Close()
	win.Show(*result.Image)
	win.WaitKey(0)
	return nil
}

func processWebcam(ctx context.Context, device int) error {
	cam, err := capture.OpenCamera(device)
	if err != nil {
		return err
	}

	win := capture.NewWindow("Captured Image")
	defer win.Close()

	params := grid.DefaultParams()
	var last string
	return capture.Run(ctx, cam, win, func(img *gocv.Mat) error {
		result, err := grid.ClassifyGrid(img, params)
		if err != nil {
			return err
		}
		if s := result.Summary(); s != last {
			fmt.Println(s)
			last = s
		}
		return nil
	})
}
