package swt

// Component-filter thresholds.
const (
	heightLowerBound       = 10
	heightUpperBound       = 300
	aspectRatioUpperBound  = 10.0
	aspectRatioLowerBound  = 1.0 / aspectRatioUpperBound
	strokeWidthVarianceMax = 0.05
	maxEmbeddedComponents  = 3
)

// Filter applies four ordered predicates -- height bound, aspect ratio,
// stroke-width-variance-per-area, and containment cap -- cheapest
// first, and returns the surviving
// sublist. Running Filter twice over its own output is idempotent:
// every predicate here is a pure function of a component's own
// (already-closed) fields plus, for the containment cap, the rest of
// the current candidate set.
func Filter(components []*Component) []*Component {
	out := filterByHeight(components)
	out = filterByAspectRatio(out)
	out = filterByStrokeWidthVariance(out)
	out = filterByContainment(out)
	return out
}

func filterByHeight(components []*Component) []*Component {
	var out []*Component
	for _, c := range components {
		h := c.Box.Height()
		if h >= heightLowerBound && h <= heightUpperBound {
			out = append(out, c)
		}
	}
	return out
}

func filterByAspectRatio(components []*Component) []*Component {
	var out []*Component
	for _, c := range components {
		w := c.Box.Width()
		if w == 0 {
			continue
		}
		ratio := float64(c.Box.Height()) / float64(w)
		if ratio >= aspectRatioLowerBound && ratio <= aspectRatioUpperBound {
			out = append(out, c)
		}
	}
	return out
}

func filterByStrokeWidthVariance(components []*Component) []*Component {
	var out []*Component
	for _, c := range components {
		if c.VarianceStrokeWidth()/float64(c.Area()) < strokeWidthVarianceMax {
			out = append(out, c)
		}
	}
	return out
}

// filterByContainment discards a component if more than
// maxEmbeddedComponents other components in the set are wholly
// contained within its bounding box. This is the symmetric, intended
// form of the containment test; see BoundingBox.Contains and DESIGN.md
// for the source's row_max/col_max typo this does not reproduce.
func filterByContainment(components []*Component) []*Component {
	var out []*Component
	for i, outer := range components {
		embedded := 0
		for j, inner := range components {
			if i == j {
				continue
			}
			if outer.Box.Contains(inner.Box) {
				embedded++
			}
		}
		if embedded <= maxEmbeddedComponents {
			out = append(out, outer)
		}
	}
	return out
}
