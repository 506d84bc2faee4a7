package swt

// strokeWidthRatioMax bounds how much two adjacent pixels' stroke
// widths may differ and still belong to the same component: neither
// may be more than this many times the other.
const strokeWidthRatioMax = 3.0

// minComponentArea is the retention threshold: components with area <=
// 5 are discarded, though their label is never reused.
const minComponentArea = 5

// neighbors8 lists the 8-connected relative offsets. Order does not
// affect semantics since the ratio test is symmetric.
var neighbors8 = [8]Point{
	{Row: -1, Col: 1},
	{Row: 0, Col: 1},
	{Row: 1, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: -1},
	{Row: 0, Col: -1},
	{Row: -1, Col: -1},
	{Row: -1, Col: 0},
}

// Label runs the constrained 8-connected flood fill over the
// stroke-width raster s, using gray for the per-pixel gray sample
// recorded on each component. It returns the labeled grid (0
// means unlabeled) and the list of retained components (area >
// minComponentArea), with labels assigned in discovery order starting
// at 1 and never reused even for discarded components.
//
// s is read-only; a separate visited bitmap tracks consumption instead
// of zeroing s in place, so a caller that also needs the pre-labeling S
// (e.g. for diagnostics) can still read it afterward.
func Label(s *Grid[float64], gray *Grid[uint8]) (*Grid[int], []*Component) {
	rows, cols := s.Rows, s.Cols
	labels := NewGrid[int](rows, cols)
	visited := make([]bool, rows*cols)

	idx := func(r, c int) int { return r*cols + c }

	var components []*Component
	label := 1

	type stackEntry struct {
		p  Point
		sw float64
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if s.At(r, c) <= 0 || visited[idx(r, c)] {
				continue
			}

			comp := newComponent(label)
			var stack []stackEntry
			stack = append(stack, stackEntry{p: Point{Row: r, Col: c}, sw: s.At(r, c)})
			visited[idx(r, c)] = true

			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]

				labels.Set(top.p.Row, top.p.Col, label)
				comp.add(top.p, top.sw, float64(gray.At(top.p.Row, top.p.Col)))

				for _, d := range neighbors8 {
					nr, nc := top.p.Row+d.Row, top.p.Col+d.Col
					if !s.InBounds(nr, nc) {
						continue
					}
					if visited[idx(nr, nc)] {
						continue
					}
					adj := s.At(nr, nc)
					if adj <= 0 {
						continue
					}
					if top.sw/adj >= strokeWidthRatioMax || adj/top.sw >= strokeWidthRatioMax {
						continue
					}
					visited[idx(nr, nc)] = true
					stack = append(stack, stackEntry{p: Point{Row: nr, Col: nc}, sw: adj})
				}
			}

			comp.close()
			if comp.Area() > minComponentArea {
				components = append(components, comp)
			}
			label++
		}
	}

	return labels, components
}
