package swt

// Grid is a row-major H x W array. All grids that participate in one
// pipeline invocation must share identical Rows/Cols.
type Grid[T any] struct {
	Rows, Cols int
	Data       []T
}

// NewGrid allocates a zero-valued rows x cols grid.
func NewGrid[T any](rows, cols int) *Grid[T] {
	return &Grid[T]{Rows: rows, Cols: cols, Data: make([]T, rows*cols)}
}

// InBounds reports whether (r,c) is a valid coordinate in g.
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.Rows && c >= 0 && c < g.Cols
}

func (g *Grid[T]) index(r, c int) int {
	return r*g.Cols + c
}

// At returns the value at (r,c). Callers must check InBounds first:
// At does no bounds check of its own, so an out-of-range column reads
// another row's pixel and an index past the data panics.
func (g *Grid[T]) At(r, c int) T {
	return g.Data[g.index(r, c)]
}

// Set assigns the value at (r,c).
func (g *Grid[T]) Set(r, c int, v T) {
	g.Data[g.index(r, c)] = v
}

// SameDims reports whether a and b share identical dimensions.
func SameDims[A, B any](a *Grid[A], b *Grid[B]) bool {
	return a.Rows == b.Rows && a.Cols == b.Cols
}

// Point is an integer (row, col) pixel coordinate.
type Point struct {
	Row, Col int
}

// BoundingBox is an axis-aligned box in (row, col) space, inclusive on
// both ends (row_min <= r <= row_max, col_min <= c <= col_max).
type BoundingBox struct {
	RowMin, RowMax, ColMin, ColMax int
}

// Height returns RowMax - RowMin.
func (b BoundingBox) Height() int { return b.RowMax - b.RowMin }

// Width returns ColMax - ColMin.
func (b BoundingBox) Width() int { return b.ColMax - b.ColMin }

// Union returns the componentwise min/max of b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	u := b
	if o.RowMin < u.RowMin {
		u.RowMin = o.RowMin
	}
	if o.RowMax > u.RowMax {
		u.RowMax = o.RowMax
	}
	if o.ColMin < u.ColMin {
		u.ColMin = o.ColMin
	}
	if o.ColMax > u.ColMax {
		u.ColMax = o.ColMax
	}
	return u
}

// Contains reports whether o's box lies entirely within b's box
// (b.RowMin <= o.RowMin, b.RowMax >= o.RowMax, b.ColMin <= o.ColMin,
// b.ColMax >= o.ColMax). The comparison is fully symmetric across rows
// and columns; see DESIGN.md for a note on a row/column mixup this
// deliberately avoids.
func (b BoundingBox) Contains(o BoundingBox) bool {
	return b.RowMin <= o.RowMin && b.RowMax >= o.RowMax &&
		b.ColMin <= o.ColMin && b.ColMax >= o.ColMax
}

// Corners returns the box's four corners clockwise starting at the
// top-left: top-left, top-right, bottom-right, bottom-left.
func (b BoundingBox) Corners() [4]Point {
	return [4]Point{
		{Row: b.RowMin, Col: b.ColMin},
		{Row: b.RowMin, Col: b.ColMax},
		{Row: b.RowMax, Col: b.ColMax},
		{Row: b.RowMax, Col: b.ColMin},
	}
}
