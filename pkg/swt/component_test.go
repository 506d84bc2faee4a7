package swt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComponentInvariants(t *testing.T) {
	c := newComponent(1)
	pts := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {2, 2}}
	sw := []float64{2, 3, 2.5, 3, 2}
	gray := []float64{10, 12, 11, 9, 13}
	for i, p := range pts {
		c.add(p, sw[i], gray[i])
	}
	c.close()

	require.Equal(t, len(pts), c.Area())
	require.Equal(t, len(c.Pixels), len(c.StrokeWidths))
	require.Equal(t, len(c.Pixels), len(c.GrayValues))

	for _, p := range c.Pixels {
		require.GreaterOrEqual(t, p.Row, c.Box.RowMin)
		require.LessOrEqual(t, p.Row, c.Box.RowMax)
		require.GreaterOrEqual(t, p.Col, c.Box.ColMin)
		require.LessOrEqual(t, p.Col, c.Box.ColMax)
	}
}

func TestComponentStatsOrderIndependent(t *testing.T) {
	pts := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {2, 2}, {3, 1}}
	sw := []float64{2, 3, 2.5, 3, 2, 4}
	gray := []float64{10, 12, 11, 9, 13, 8}

	forward := newComponent(1)
	for i, p := range pts {
		forward.add(p, sw[i], gray[i])
	}
	forward.close()

	order := rand.New(rand.NewSource(7)).Perm(len(pts))
	shuffled := newComponent(2)
	for _, i := range order {
		shuffled.add(pts[i], sw[i], gray[i])
	}
	shuffled.close()

	require.InDelta(t, forward.MeanStrokeWidth(), shuffled.MeanStrokeWidth(), 1e-12)
	require.InDelta(t, forward.MedianStrokeWidth(), shuffled.MedianStrokeWidth(), 1e-12)
	require.InDelta(t, forward.VarianceStrokeWidth(), shuffled.VarianceStrokeWidth(), 1e-12)
	require.InDelta(t, forward.MeanGray(), shuffled.MeanGray(), 1e-12)
}

func TestComponentVarianceFormula(t *testing.T) {
	// Population variance of [2,2,2,2,10]: mean=3.6,
	// sum((x-mean)^2) = 4*(1.6^2) + (6.4^2) = 10.24 + 40.96 = 51.2,
	// variance = 51.2 / 5 = 10.24.
	c := newComponent(1)
	for i, w := range []float64{2, 2, 2, 2, 10} {
		c.add(Point{Row: 0, Col: i}, w, 0)
	}
	c.close()
	require.InDelta(t, 3.6, c.MeanStrokeWidth(), 1e-9)
	require.InDelta(t, 10.24, c.VarianceStrokeWidth(), 1e-9)
}
