package swt

// Component is a connected region of same-stroke pixels, grown by the
// labeler (labeler.go) and closed once its region-growing stack empties.
// Its derived statistics are computed eagerly in close and must not be
// read before then.
type Component struct {
	Label int

	Pixels       []Point
	StrokeWidths []float64
	GrayValues   []float64

	Box BoundingBox

	closed bool

	meanStrokeWidth float64
	medianStrokeW   float64
	varianceStrokeW float64
	meanGray        float64
	varianceGray    float64
	centroidRow     float64
	centroidCol     float64
}

// newComponent starts an empty component awaiting its seed pixel via
// add; the bounding box is initialized to an empty state and widened by
// the first add call.
func newComponent(label int) *Component {
	return &Component{Label: label, Box: BoundingBox{RowMin: 1 << 30, ColMin: 1 << 30, RowMax: -(1 << 30), ColMax: -(1 << 30)}}
}

// add appends a pixel to the still-growing component and widens its
// bounding box. Must not be called after close.
func (c *Component) add(p Point, strokeWidth, gray float64) {
	c.Pixels = append(c.Pixels, p)
	c.StrokeWidths = append(c.StrokeWidths, strokeWidth)
	c.GrayValues = append(c.GrayValues, gray)

	if p.Row < c.Box.RowMin {
		c.Box.RowMin = p.Row
	}
	if p.Row > c.Box.RowMax {
		c.Box.RowMax = p.Row
	}
	if p.Col < c.Box.ColMin {
		c.Box.ColMin = p.Col
	}
	if p.Col > c.Box.ColMax {
		c.Box.ColMax = p.Col
	}
}

// Area is the number of pixels in the component, equal to len(Pixels).
func (c *Component) Area() int { return len(c.Pixels) }

// close computes every derived statistic once, from the final populated
// slices, and marks the component read-only. Order of insertion does
// not affect the result, since mean/median/variance are all
// order-independent reductions.
func (c *Component) close() {
	if c.closed {
		return
	}
	c.meanStrokeWidth, c.varianceStrokeW = meanAndVariance(c.StrokeWidths)
	c.medianStrokeW = medianOf(c.StrokeWidths)
	c.meanGray, c.varianceGray = meanAndVariance(c.GrayValues)

	var rowSum, colSum float64
	for _, p := range c.Pixels {
		rowSum += float64(p.Row)
		colSum += float64(p.Col)
	}
	n := float64(len(c.Pixels))
	c.centroidRow = rowSum / n
	c.centroidCol = colSum / n

	c.closed = true
}

// MeanStrokeWidth returns the mean stroke width. Only valid after close.
func (c *Component) MeanStrokeWidth() float64 { return c.meanStrokeWidth }

// MedianStrokeWidth returns the median stroke width. Only valid after
// close.
func (c *Component) MedianStrokeWidth() float64 { return c.medianStrokeW }

// VarianceStrokeWidth returns the population variance of stroke width.
// Only valid after close.
func (c *Component) VarianceStrokeWidth() float64 { return c.varianceStrokeW }

// MeanGray returns the mean grayscale sample. Only valid after close.
func (c *Component) MeanGray() float64 { return c.meanGray }

// VarianceGray returns the population variance of the grayscale
// samples. Only valid after close.
func (c *Component) VarianceGray() float64 { return c.varianceGray }

// Centroid returns the average (row, col) of the component's pixels.
// Only valid after close.
func (c *Component) Centroid() (row, col float64) { return c.centroidRow, c.centroidCol }
