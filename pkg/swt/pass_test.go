package swt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPassAllZeroImageYieldsZeroRaster(t *testing.T) {
	edges := NewGrid[float64](32, 32)
	gx := NewGrid[float64](32, 32)
	gy := NewGrid[float64](32, 32)

	s := Pass(edges, gx, gy, Dark, AngleSentinel)
	for i, v := range s.Data {
		require.Zero(t, v, "index %d", i)
	}
}

func TestPassPositiveAlongAcceptedRay(t *testing.T) {
	gx, gy, edges := straightRaySetup(6)
	s := Pass(edges, gx, gy, Light, AngleSentinel)
	for c := 0; c < 6; c++ {
		require.Greater(t, s.At(0, c), 0.0, "col %d", c)
	}
}

func TestMedianAdjustmentSuppressesOutlier(t *testing.T) {
	// A ray whose per-pixel minima are [2,2,2,2,10] must be fully
	// normalized to [2,2,2,2,2] once the median-adjustment pass runs.
	got := medianOf([]float64{2, 2, 2, 2, 10})
	require.Equal(t, 2.0, got)

	s := NewGrid[float64](1, 5)
	widths := []float64{2, 2, 2, 2, 10}
	ray := Ray{}
	for i, w := range widths {
		s.Set(0, i, w)
		ray.Points = append(ray.Points, Point{Row: 0, Col: i})
	}

	m := rayMedian(ray, s)
	require.Equal(t, 2.0, m)
	for _, p := range ray.Points {
		if s.At(p.Row, p.Col) > m {
			s.Set(p.Row, p.Col, m)
		}
	}
	for i, expect := range []float64{2, 2, 2, 2, 2} {
		require.Equal(t, expect, s.At(0, i))
	}
}
