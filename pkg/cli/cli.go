package cli

import (
	"bufio"
	"fmt"
	"image"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Fepozopo/swtdetect/pkg/detect"
)

func usage() {
	fmt.Println("Commands available:")
	fmt.Println("  d  - run stroke-width text detection on the current image")
	fmt.Println("  o  - open another image")
	fmt.Println("  s  - save the last annotated image")
	fmt.Println("  u  - check for updates")
	fmt.Println("  h  - show this help message")
	fmt.Println("  q  - quit")
}

// Run is swtdetect's entrypoint: load the image named on the command
// line (if any), then drive a small interactive command loop that
// dispatches to pkg/detect.Detect.
func Run() {
	cfg := LoadConfig()
	log := NewLogger(cfg)

	var inputImagePath string
	if len(os.Args) >= 2 {
		inputImagePath = os.Args[1]
	}

	var cur image.Image
	var lastAnnotated image.Image
	if inputImagePath != "" {
		img, err := LoadImage(inputImagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", inputImagePath, err)
			os.Exit(1)
		}
		cur = img
		if info, ierr := GetImageInfoImage(cur); ierr == nil {
			fmt.Println(info)
		}
		if PreviewSupported() {
			_ = PreviewImage(cur)
		}
	}

	fmt.Println("Stroke Width Transform text detector")
	usage()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		r, _, err := reader.ReadRune()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
			continue
		}

		switch r {
		case 'd':
			if cur == nil {
				fmt.Println("No image loaded. Press 'o' to open one first, or pass a path as the first argument.")
				continue
			}
			result, err := runDetect(cur, cfg, log)
			if err != nil {
				fmt.Fprintf(os.Stderr, "detection failed: %v\n", err)
				continue
			}
			fmt.Printf("Found %d text line(s)\n", len(result.Boxes))
			for i, box := range result.Boxes {
				fmt.Printf("  [%d] (%d,%d)-(%d,%d)\n", i, box[0].Row, box[0].Col, box[2].Row, box[2].Col)
			}
			if result.AnnotatedImage != nil {
				lastAnnotated = result.AnnotatedImage
				if PreviewSupported() {
					_ = PreviewImage(lastAnnotated)
				}
			}
			if result.Timings != nil {
				for stage, d := range result.Timings {
					fmt.Printf("  %s: %s\n", stage, d)
				}
			}

		case 'o':
			path, perr := PromptLine("Image path: ")
			if perr != nil || path == "" {
				fmt.Println("cancelled")
				continue
			}
			img, err := LoadImage(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", path, err)
				continue
			}
			cur = img
			lastAnnotated = nil
			inputImagePath = path
			if PreviewSupported() {
				_ = PreviewImage(cur)
			}

		case 's':
			if lastAnnotated == nil {
				fmt.Println("Nothing to save yet; run 'd' first.")
				continue
			}
			path, perr := PromptLine("Save path: ")
			if perr != nil || path == "" {
				fmt.Println("cancelled")
				continue
			}
			if err := SaveImage(path, lastAnnotated); err != nil {
				fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
				continue
			}
			fmt.Printf("Saved %s\n", path)

		case 'u':
			if err := CheckForUpdates(log); err != nil {
				fmt.Fprintf(os.Stderr, "update check failed: %v\n", err)
			}

		case 'h':
			usage()

		case 'q':
			return

		case '\n':
			// ignore bare newlines between commands

		default:
			fmt.Printf("unknown command: %q (press 'h' for help)\n", string(r))
		}
	}
}

func runDetect(img image.Image, cfg Config, log *logrus.Logger) (detect.Result, error) {
	return detect.Detect(img, detect.Options{
		EmitImage:    true,
		ReportTiming: cfg.ReportTiming,
		AngleMode:    cfg.AngleMode(),
		Log:          log,
	})
}
