package swt

import (
	"math"
)

// ThetaMax is the angular tolerance used when casting rays during the
// stroke-width pass.
const ThetaMax = math.Pi / 2

// Pass runs the stroke-width transform: for every edge pixel, cast a
// ray with the given polarity, assign its width to every pixel it
// covers via a running minimum, then replace +Inf sentinels with zero
// and run the median-adjustment pass over the accepted rays.
//
// edges, gx, gy must share identical dimensions. The per-pixel ray
// casts in this loop are independent except for their shared
// min-reduction into S, so a caller could parallelize it by row-band;
// this implementation runs it sequentially since the pipeline's two
// polarity passes already run concurrently (see pkg/detect) and a
// single image rarely justifies a second layer of fan-out.
func Pass(edges, gx, gy *Grid[float64], dir Polarity, mode AngleMode) *Grid[float64] {
	rows, cols := edges.Rows, edges.Cols
	s := NewGrid[float64](rows, cols)
	for i := range s.Data {
		s.Data[i] = math.Inf(1)
	}

	var rays []Ray
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if edges.At(r, c) <= 0 {
				continue
			}
			ray, ok := CastRay(gx, gy, edges, r, c, dir, ThetaMax, mode)
			if !ok {
				continue
			}
			rays = append(rays, ray)
			width := ray.Width()
			for _, p := range ray.Points {
				if width < s.At(p.Row, p.Col) {
					s.Set(p.Row, p.Col, width)
				}
			}
		}
	}

	for i, v := range s.Data {
		if math.IsInf(v, 1) {
			s.Data[i] = 0
		}
	}

	for _, ray := range rays {
		m := rayMedian(ray, s)
		for _, p := range ray.Points {
			if s.At(p.Row, p.Col) > m {
				s.Set(p.Row, p.Col, m)
			}
		}
	}

	return s
}

// rayMedian returns the median of s sampled at every point of ray, after
// the min-assignment pass.
func rayMedian(ray Ray, s *Grid[float64]) float64 {
	values := make([]float64, len(ray.Points))
	for i, p := range ray.Points {
		values[i] = s.At(p.Row, p.Col)
	}
	return medianOf(values)
}
