package swt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func componentWithBox(label int, box BoundingBox, strokeWidths []float64) *Component {
	c := newComponent(label)
	for i := box.RowMin; i <= box.RowMax; i++ {
		for j := box.ColMin; j <= box.ColMax; j++ {
			sw := 1.0
			if len(strokeWidths) > 0 {
				sw = strokeWidths[(i*1000+j)%len(strokeWidths)]
			}
			c.add(Point{Row: i, Col: j}, sw, 0)
		}
	}
	c.close()
	return c
}

func TestFilterByHeightBound(t *testing.T) {
	tooShort := componentWithBox(1, BoundingBox{RowMin: 0, RowMax: 5, ColMin: 0, ColMax: 1}, nil)
	okHeight := componentWithBox(2, BoundingBox{RowMin: 0, RowMax: 20, ColMin: 0, ColMax: 3}, nil)
	tooTall := componentWithBox(3, BoundingBox{RowMin: 0, RowMax: 400, ColMin: 0, ColMax: 3}, nil)

	out := filterByHeight([]*Component{tooShort, okHeight, tooTall})
	require.Len(t, out, 1)
	require.Equal(t, 2, out[0].Label)
}

func TestFilterByAspectRatioDiscardsZeroWidth(t *testing.T) {
	zeroWidth := componentWithBox(1, BoundingBox{RowMin: 0, RowMax: 10, ColMin: 3, ColMax: 3}, nil)
	out := filterByAspectRatio([]*Component{zeroWidth})
	require.Empty(t, out)
}

func TestFilterByAspectRatioBounds(t *testing.T) {
	tooNarrow := componentWithBox(1, BoundingBox{RowMin: 0, RowMax: 40, ColMin: 0, ColMax: 3}, nil) // 40/3 > 10
	ok := componentWithBox(2, BoundingBox{RowMin: 0, RowMax: 20, ColMin: 0, ColMax: 3}, nil)        // 20/3 < 10
	out := filterByAspectRatio([]*Component{tooNarrow, ok})
	require.Len(t, out, 1)
	require.Equal(t, 2, out[0].Label)
}

func TestFilterByStrokeWidthVariance(t *testing.T) {
	uniform := componentWithBox(1, BoundingBox{RowMin: 0, RowMax: 9, ColMin: 0, ColMax: 9}, []float64{3})
	noisy := componentWithBox(2, BoundingBox{RowMin: 0, RowMax: 9, ColMin: 0, ColMax: 9}, []float64{1, 50})

	out := filterByStrokeWidthVariance([]*Component{uniform, noisy})
	require.Len(t, out, 1)
	require.Equal(t, 1, out[0].Label)
}

func TestFilterByContainmentCap(t *testing.T) {
	outer := componentWithBox(1, BoundingBox{RowMin: 0, RowMax: 50, ColMin: 0, ColMax: 50}, nil)
	var all []*Component
	all = append(all, outer)
	// Four small, mutually non-overlapping boxes, each wholly inside
	// outer's box but not inside one another.
	offsets := []int{1, 5, 10, 15}
	for i, off := range offsets {
		inner := componentWithBox(i+2, BoundingBox{RowMin: off, RowMax: off + 1, ColMin: off, ColMax: off + 1}, nil)
		all = append(all, inner)
	}

	out := filterByContainment(all)
	// outer contains all 4 inners (> maxEmbeddedComponents=3) and is
	// dropped; inners contain nothing and survive.
	for _, c := range out {
		require.NotEqual(t, 1, c.Label)
	}
	require.Len(t, out, 4)
}

func TestFilterIdempotent(t *testing.T) {
	components := []*Component{
		componentWithBox(1, BoundingBox{RowMin: 0, RowMax: 20, ColMin: 0, ColMax: 3}, []float64{2}),
		componentWithBox(2, BoundingBox{RowMin: 0, RowMax: 5, ColMin: 0, ColMax: 3}, nil),
	}
	once := Filter(components)
	twice := Filter(once)
	require.ElementsMatch(t, labelsOf(once), labelsOf(twice))
}

func TestFilterPermutationInvariant(t *testing.T) {
	a := componentWithBox(1, BoundingBox{RowMin: 0, RowMax: 20, ColMin: 0, ColMax: 3}, []float64{2})
	b := componentWithBox(2, BoundingBox{RowMin: 0, RowMax: 25, ColMin: 0, ColMax: 4}, []float64{2})

	forward := Filter([]*Component{a, b})
	backward := Filter([]*Component{b, a})
	require.ElementsMatch(t, labelsOf(forward), labelsOf(backward))
}

func labelsOf(components []*Component) []int {
	out := make([]int, len(components))
	for i, c := range components {
		out[i] = c.Label
	}
	return out
}
