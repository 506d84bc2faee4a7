package swt

import (
	"fmt"
	"time"
)

// Stage-name keys under which RunPass records its internal timings, when
// asked to. Callers that re-key these per polarity (pkg/detect does) should
// treat these as the canonical stage names.
const (
	StageStrokeWidth = "swt"
	StageComponents  = "components"
	StageFilter      = "filter"
	StageChains      = "chains"
)

// PassResult holds every intermediate artifact of a single polarity
// pass, in dependency order: the stroke-width raster, the labeled
// component image, every component discovered (post area-filter), the
// letter candidates surviving Filter, and the final chains.
type PassResult struct {
	StrokeWidth *Grid[float64]
	Labels      *Grid[int]
	Components  []*Component
	Filtered    []*Component
	Chains      []*Chain
	// Timings holds a duration for each of StageStrokeWidth,
	// StageComponents, StageFilter, and StageChains when RunPass is
	// called with reportTiming; nil otherwise.
	Timings map[string]time.Duration
}

// RunPass executes the full per-polarity pipeline: stroke-width stage,
// connected-components stage, component filter stage, and chaining
// stage, in that dependency order. edges, gx, gy, and gray must share
// identical dimensions. When reportTiming is true, PassResult.Timings
// holds the wall-clock duration of each of the four stages.
func RunPass(gray *Grid[uint8], edges, gx, gy *Grid[float64], dir Polarity, mode AngleMode, reportTiming bool) (PassResult, error) {
	if err := validateDims(gray, edges, gx, gy); err != nil {
		return PassResult{}, err
	}

	var timings map[string]time.Duration
	if reportTiming {
		timings = make(map[string]time.Duration, 4)
	}
	record := func(stage string, start time.Time) {
		if reportTiming {
			timings[stage] = time.Since(start)
		}
	}

	start := time.Now()
	strokeWidth := Pass(edges, gx, gy, dir, mode)
	record(StageStrokeWidth, start)

	start = time.Now()
	labels, components := Label(strokeWidth, gray)
	record(StageComponents, start)

	start = time.Now()
	filtered := Filter(components)
	record(StageFilter, start)

	start = time.Now()
	chains := Chains(filtered)
	record(StageChains, start)

	return PassResult{
		StrokeWidth: strokeWidth,
		Labels:      labels,
		Components:  components,
		Filtered:    filtered,
		Chains:      chains,
		Timings:     timings,
	}, nil
}

func validateDims(gray *Grid[uint8], edges, gx, gy *Grid[float64]) error {
	if gray.Rows == 0 || gray.Cols == 0 {
		return fmt.Errorf("swt: empty image")
	}
	if !SameDims(gray, edges) {
		return fmt.Errorf("swt: edge map dimensions %dx%d do not match image %dx%d", edges.Rows, edges.Cols, gray.Rows, gray.Cols)
	}
	if !SameDims(gray, gx) || !SameDims(gray, gy) {
		return fmt.Errorf("swt: gradient dimensions do not match image %dx%d", gray.Rows, gray.Cols)
	}
	return nil
}
