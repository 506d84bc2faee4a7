package swt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngleBetweenParallel(t *testing.T) {
	v := Vec2{Row: 1, Col: 0}
	got := AngleBetween(v, v, AngleSentinel)
	require.InDelta(t, 0, got, 1e-9)
}

func TestAngleBetweenAntiparallel(t *testing.T) {
	v := Vec2{Row: 1, Col: 0}
	got := AngleBetween(v, Vec2{Row: -1, Col: 0}, AngleSentinel)
	require.InDelta(t, math.Pi, got, 1e-9)
}

func TestAngleBetweenOverflowSentinel(t *testing.T) {
	// u and v are exactly parallel (v = 3*u), so the true cosine is
	// exactly 1. But Dot and the two magnitudes are computed
	// independently: the dot product (1e8*3e8 + 1*3) rounds up to the
	// next representable value above 3e16, while the magnitude product
	// (Hypot(1e8,1) * Hypot(3e8,3)) rounds down to exactly 3e16 -- their
	// ratio lands just over 1. This is a genuine rounding artifact from
	// separate sqrt/multiply paths, not a same-magnitude literal nudge
	// that would vanish at parse time. AngleSentinel must still return
	// pi/2, not NaN.
	u := Vec2{Row: 1e8, Col: 1}
	v := Vec2{Row: 3e8, Col: 3}
	got := AngleBetween(u, v, AngleSentinel)
	require.False(t, math.IsNaN(got))
	require.InDelta(t, math.Pi/2, got, 1e-9)
}

func TestAngleBetweenStrictOverflow(t *testing.T) {
	// Same construction as above but antiparallel (v = -3*u), which
	// pushes the computed cosine just under -1 instead of just over 1.
	u := Vec2{Row: 1e8, Col: 1}
	v := Vec2{Row: -3e8, Col: -3}
	got := AngleBetween(u, v, AngleStrict)
	require.InDelta(t, math.Pi, got, 1e-9)
}

func TestVec2Normalized(t *testing.T) {
	v := Vec2{Row: 3, Col: 4}
	n := v.Normalized()
	require.InDelta(t, 1.0, n.Magnitude(), 1e-9)
}

func TestVec2NormalizedZero(t *testing.T) {
	v := Vec2{}
	n := v.Normalized()
	require.True(t, n.IsZero())
}
