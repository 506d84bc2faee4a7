package swt

import "math"

// Polarity selects the gradient direction used when casting a ray.
// Light casts toward the gradient as-is (light text on dark
// background); Dark flips it (dark text on light background).
type Polarity int

const (
	Dark  Polarity = -1
	Light Polarity = 1
)

// Ray is an ordered sequence of pixel coordinates starting at an edge
// pixel and ending at a matching opposing edge pixel. Length >= 2 on a
// successful cast.
type Ray struct {
	Points []Point
}

// Width returns the Euclidean distance between the ray's first and last
// coordinates, used as the stroke-width sample for every pixel the ray
// covers.
func (r Ray) Width() float64 {
	if len(r.Points) < 2 {
		return 0
	}
	first, last := r.Points[0], r.Points[len(r.Points)-1]
	return Vec2{Row: float64(last.Row - first.Row), Col: float64(last.Col - first.Col)}.Magnitude()
}

// CastRay casts a single stroke-width ray from a seed edge pixel along
// its local gradient direction until it either hits an opposing edge
// within the angle tolerance or runs off the image.
// gx, gy give the gradient's row-direction and column-direction
// components at each pixel (the vector is read in (row, col) order); edges is
// nonzero on edge pixels; (row,col) is the seed, assumed to already be
// an edge pixel; dir selects polarity; maxAngleDiff is theta_max in
// radians. It returns (ray, true) on success or (Ray{}, false) if no
// ray could be cast.
func CastRay(gx, gy *Grid[float64], edges *Grid[float64], row, col int, dir Polarity, maxAngleDiff float64, mode AngleMode) (Ray, bool) {
	d := float64(dir)
	g := Vec2{Row: gx.At(row, col) * d, Col: gy.At(row, col) * d}
	if g.IsZero() {
		return Ray{}, false
	}
	n := g.Normalized()

	points := []Point{{Row: row, Col: col}}
	for i := 1; ; i++ {
		rowStep := int(math.Floor(float64(row) + 0.5 + n.Row*float64(i)))
		colStep := int(math.Floor(float64(col) + 0.5 + n.Col*float64(i)))
		if !edges.InBounds(rowStep, colStep) {
			return Ray{}, false
		}
		if edges.At(rowStep, colStep) > 0 {
			gOpp := Vec2{Row: gx.At(rowStep, colStep) * d, Col: gy.At(rowStep, colStep) * d}
			if gOpp.IsZero() {
				return Ray{}, false
			}
			theta := AngleBetween(n, gOpp.Scale(-1), mode)
			if theta < maxAngleDiff {
				points = append(points, Point{Row: rowStep, Col: colStep})
				return Ray{Points: points}, true
			}
			return Ray{}, false
		}
		points = append(points, Point{Row: rowStep, Col: colStep})
	}
}
