package swt

// Chain-level thresholds.
const (
	maxDistanceMultiplier = 3.0
	heightMaxRatio        = 2.0
	strokeWidthMaxRatio   = 2.0
	maxAverageGrayDiff    = 10.0
	minChainSize          = 3
)

// Chain is a set of >= 2 components judged to be co-linear letters,
// with an aggregate bounding box equal to the componentwise min/max of
// its members' boxes.
type Chain struct {
	Members []*Component
	Box     BoundingBox
}

// BoundingBox returns the chain's four corners clockwise from
// top-left.
func (ch Chain) BoundingBox() [4]Point {
	return ch.Box.Corners()
}

// Chains runs the full letter-chaining stage over a filtered component
// list: pair construction, the three pairwise filters, union-find
// aggregation, and the final size-at-least-3 filter.
func Chains(components []*Component) []*Chain {
	uf := newUnionFind(len(components))

	for i := 0; i < len(components); i++ {
		for j := i + 1; j < len(components); j++ {
			a, b := components[i], components[j]
			if !isNear(a, b) {
				continue
			}
			if !pairPasses(a, b) {
				continue
			}
			uf.union(i, j)
		}
	}

	groups := make(map[int][]*Component)
	for i, c := range components {
		root := uf.find(i)
		groups[root] = append(groups[root], c)
	}

	var chains []*Chain
	for _, members := range groups {
		if len(members) < minChainSize {
			continue
		}
		box := members[0].Box
		for _, m := range members[1:] {
			box = box.Union(m.Box)
		}
		chains = append(chains, &Chain{Members: members, Box: box})
	}
	return chains
}

// isNear implements the pair-construction distance test: vertical
// overlap is required, and the Euclidean distance
// between one component's right-bottom corner and the other's
// left-bottom corner must not exceed 3x the wider component's width.
func isNear(a, b *Component) bool {
	if a.Box.RowMin >= b.Box.RowMax || b.Box.RowMin >= a.Box.RowMax {
		return false
	}
	dRow := float64(b.Box.RowMax - a.Box.RowMax)
	dCol := float64(b.Box.ColMin - a.Box.ColMax)
	dist := Vec2{Row: dRow, Col: dCol}.Magnitude()

	widthA := float64(a.Box.Width())
	widthB := float64(b.Box.Width())
	widest := widthA
	if widthB > widest {
		widest = widthB
	}
	return dist <= widest*maxDistanceMultiplier
}

// pairPasses applies three pairwise filters: height compatibility,
// gray similarity, and stroke-width compatibility. All three must pass
// for the pair to chain.
func pairPasses(a, b *Component) bool {
	heightA := float64(a.Box.Height())
	heightB := float64(b.Box.Height())
	if !ratioWithin(heightA, heightB, heightMaxRatio) {
		return false
	}

	if abs(a.MeanGray()-b.MeanGray()) >= maxAverageGrayDiff {
		return false
	}

	if !ratioWithin(a.MedianStrokeWidth(), b.MedianStrokeWidth(), strokeWidthMaxRatio) {
		return false
	}

	return true
}

// ratioWithin reports whether max(x,y)/min(x,y) <= limit. A naive
// "x/y <= limit OR y/x <= limit" phrasing is trivially true for any
// positive x,y, since one of the two ratios is always <= 1; this uses
// the max/min <= limit form that actually bounds the pair (e.g. heights
// 20 and 50 give 50/20 = 2.5, correctly rejected at limit 2).
func ratioWithin(x, y, limit float64) bool {
	if x == 0 || y == 0 {
		return false
	}
	if x < y {
		x, y = y, x
	}
	return x/y <= limit
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// unionFind is a standard union-find with path compression and union by
// rank, used here in place of a quadratic object-identity scan for
// merging chain candidates.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent, rank: make([]int, n)}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}
