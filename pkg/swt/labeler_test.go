package swt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabelStrokeWidthRatioInvariant(t *testing.T) {
	s := NewGrid[float64](3, 3)
	gray := NewGrid[uint8](3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			s.Set(r, c, 2.0)
		}
	}
	// One pixel with a wildly different width should not join the rest.
	s.Set(2, 2, 100.0)

	_, components := Label(s, gray)
	require.Len(t, components, 1)
	main := components[0]
	require.Equal(t, 8, main.Area()) // all but (2,2)

	for _, p := range main.Pixels {
		require.NotEqual(t, Point{Row: 2, Col: 2}, p)
	}
}

func TestLabelDiscardsSmallAreaWithoutReusingLabel(t *testing.T) {
	s := NewGrid[float64](5, 5)
	gray := NewGrid[uint8](5, 5)
	// A 2-pixel blob (area 2 <= minComponentArea) in the corner, a large
	// blob filling the rest.
	s.Set(0, 0, 1.0)
	s.Set(0, 1, 1.0)
	for r := 2; r < 5; r++ {
		for c := 0; c < 5; c++ {
			s.Set(r, c, 3.0)
		}
	}

	labels, components := Label(s, gray)
	require.Len(t, components, 1)
	// The large blob was discovered second; its label must not be 1
	// even though the first (small, discarded) component never made it
	// into the output list.
	require.Equal(t, 2, components[0].Label)
	require.Equal(t, 2, labels.At(2, 0))
}

func TestLabelAllLabelsDistinct(t *testing.T) {
	s := NewGrid[float64](5, 4)
	gray := NewGrid[uint8](5, 4)
	// Two well-separated 3x2 blobs, each above the area cutoff.
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			s.Set(r, c, 2.0)
		}
	}
	for r := 3; r < 5; r++ {
		for c := 0; c < 3; c++ {
			s.Set(r, c, 5.0)
		}
	}

	_, components := Label(s, gray)
	require.Len(t, components, 2)
	seen := map[int]bool{}
	for _, c := range components {
		require.False(t, seen[c.Label])
		seen[c.Label] = true
	}
}

func TestPositiveStrokeWidthLiesOnAcceptedRay(t *testing.T) {
	gx, gy, edges := straightRaySetup(6)
	s := Pass(edges, gx, gy, Light, AngleSentinel)
	ray, ok := CastRay(gx, gy, edges, 0, 0, Light, ThetaMax, AngleSentinel)
	require.True(t, ok)
	onRay := map[Point]bool{}
	for _, p := range ray.Points {
		onRay[p] = true
	}
	for c := 0; c < 6; c++ {
		if s.At(0, c) > 0 {
			require.True(t, onRay[Point{Row: 0, Col: c}])
		}
	}
}
