// Package detect orchestrates the stroke-width text-detection pipeline:
// grayscale conversion, edge/gradient extraction, and the two polarity
// passes of pkg/swt, run concurrently and merged into one result.
package detect

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Fepozopo/swtdetect/pkg/swt"
	"github.com/Fepozopo/swtdetect/pkg/vision"
)

// Options controls what Detect computes beyond the bounding boxes
// themselves.
type Options struct {
	// EmitDiagnostics also returns the intermediate rasters (per-polarity
	// stroke-width grids, labeled-component grids, and a rendered
	// component-label image for visual inspection).
	EmitDiagnostics bool
	// EmitImage draws the final chain boxes onto a copy of the source
	// image via pkg/vision.DrawRectangle.
	EmitImage bool
	// ReportTiming records a time.Duration for each pipeline stage.
	ReportTiming bool
	// Polarities selects which polarity passes to run. Empty means both.
	Polarities []swt.Polarity
	// AngleMode is forwarded to the ray caster; the zero value
	// (AngleSentinel) matches the original pipeline's behavior.
	AngleMode swt.AngleMode
	// Log receives structured progress/diagnostic entries. A nil Log
	// falls back to logrus.StandardLogger().
	Log *logrus.Logger
}

// PolarityResult is one polarity pass's output.
type PolarityResult struct {
	Polarity       swt.Polarity
	Chains         []*swt.Chain
	Components     []*swt.Component
	StrokeWidth    *swt.Grid[float64]
	Labels         *swt.Grid[int]
	ComponentImage image.Image
}

// Result is the outcome of a full Detect call.
type Result struct {
	Boxes          [][4]swt.Point
	Passes         []PolarityResult
	AnnotatedImage image.Image
	Timings        map[string]time.Duration
}

var defaultPolarities = []swt.Polarity{swt.Light, swt.Dark}

// Detect runs the full pipeline over a decoded image and returns the
// chained text-line bounding boxes, one PolarityResult per polarity
// pass, and (depending on Options) diagnostics, a rendered preview
// image, and stage timings.
func Detect(img image.Image, opts Options) (Result, error) {
	if img == nil {
		return Result{}, fmt.Errorf("detect: source image is nil")
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	polarities := opts.Polarities
	if len(polarities) == 0 {
		polarities = defaultPolarities
	}

	timings := make(map[string]time.Duration)
	record := func(stage string, start time.Time) {
		if opts.ReportTiming {
			timings[stage] = time.Since(start)
		}
	}

	start := time.Now()
	gray, err := vision.ToGray(img)
	if err != nil {
		return Result{}, fmt.Errorf("detect: grayscale conversion: %w", err)
	}
	record("grayscale", start)
	log.WithFields(logrus.Fields{"rows": gray.Rows, "cols": gray.Cols}).Debug("converted to grayscale")

	start = time.Now()
	edges, err := vision.Canny(gray)
	if err != nil {
		return Result{}, fmt.Errorf("detect: edge detection: %w", err)
	}
	record("edges", start)

	start = time.Now()
	gx, gy, err := vision.Gradients(gray)
	if err != nil {
		return Result{}, fmt.Errorf("detect: gradient computation: %w", err)
	}
	record("gradients", start)

	passResults := make([]PolarityResult, len(polarities))
	passErrs := make([]error, len(polarities))
	var wg sync.WaitGroup
	var mu sync.Mutex
	for i, dir := range polarities {
		wg.Add(1)
		go func(i int, dir swt.Polarity) {
			defer wg.Done()
			// pkg/swt reads the gradient in (row, col) order, so the
			// vertical derivative goes first.
			res, err := swt.RunPass(gray, edges, gy, gx, dir, opts.AngleMode, opts.ReportTiming)
			if opts.ReportTiming {
				for _, stage := range []string{swt.StageStrokeWidth, swt.StageComponents, swt.StageFilter, swt.StageChains} {
					mu.Lock()
					timings[fmt.Sprintf("%s[%d]", stage, dir)] = res.Timings[stage]
					mu.Unlock()
				}
			}
			if err != nil {
				passErrs[i] = fmt.Errorf("detect: polarity %d pass: %w", dir, err)
				return
			}
			pr := PolarityResult{
				Polarity:    dir,
				Chains:      res.Chains,
				Components:  res.Filtered,
				StrokeWidth: res.StrokeWidth,
				Labels:      res.Labels,
			}
			if opts.EmitDiagnostics {
				pr.ComponentImage = vision.LabelsToImage(res.Labels)
			}
			passResults[i] = pr
		}(i, dir)
	}
	wg.Wait()

	for _, err := range passErrs {
		if err != nil {
			return Result{}, err
		}
	}

	result := Result{Passes: passResults}
	for _, pr := range result.Passes {
		for _, ch := range pr.Chains {
			result.Boxes = append(result.Boxes, ch.BoundingBox())
		}
	}

	if !opts.EmitDiagnostics {
		for i := range result.Passes {
			result.Passes[i].StrokeWidth = nil
			result.Passes[i].Labels = nil
		}
	}

	if opts.EmitImage {
		annotated, err := annotate(img, result.Boxes)
		if err != nil {
			return Result{}, fmt.Errorf("detect: annotate result image: %w", err)
		}
		result.AnnotatedImage = annotated
	}

	if opts.ReportTiming {
		result.Timings = timings
	}

	log.WithField("boxes", len(result.Boxes)).Info("detection complete")
	return result, nil
}

// annotate draws every chain bounding box onto a copy of img.
func annotate(img image.Image, boxes [][4]swt.Point) (image.Image, error) {
	out := img
	boxColor := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	for i, corners := range boxes {
		topLeft := image.Pt(corners[0].Col, corners[0].Row)
		bottomRight := image.Pt(corners[2].Col, corners[2].Row)
		annotated, err := vision.DrawRectangle(out, topLeft, bottomRight, boxColor, fmt.Sprintf("%d", i))
		if err != nil {
			return nil, err
		}
		out = annotated
	}
	return out, nil
}
